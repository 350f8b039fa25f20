package fieldtypes

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Input is the request input a Request validates and later rewrites.
type Input interface {
	// All returns every current input value.
	All() Values
	// Replace swaps the input values for values.
	Replace(values Values)
}

// MapInput is an in-memory Input.
type MapInput struct {
	values Values
}

func NewMapInput(values Values) *MapInput {
	return &MapInput{values: values.Clone()}
}

func (mi *MapInput) All() Values {
	return mi.values.Clone()
}

func (mi *MapInput) Replace(values Values) {
	mi.values = values.Clone()
}

// NewJSONInput builds a MapInput from the top-level members of a JSON
// object. Nested objects and arrays keep their decoded form
// (map[string]any and []any).
func NewJSONInput(data []byte) (*MapInput, error) {
	values, err := jsonObjectValues(data)
	if err != nil {
		return nil, err
	}
	return &MapInput{values: values}, nil
}

func jsonObjectValues(data []byte) (Values, error) {
	values := make(Values)
	if len(data) == 0 {
		return values, nil
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("error parsing JSON input: invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("error parsing JSON input: expected an object, got %s", doc.Type)
	}

	doc.ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = value.Value()
		return true
	})
	return values, nil
}
