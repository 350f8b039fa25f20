package fieldtypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidDeclaration = errors.New("declaration must set exactly one of field_type or field")
)

// Definition is a RuleDefiner read from YAML. Declarations are applied in
// file order, so they drive the field order the same way hand-written
// DefineRules calls do.
//
//	name: signup
//	declarations:
//	  - field_type: email
//	    inputs: [address]
//	  - field: confirm
//	    rules: [required]
//	field_order: [confirm, address] # optional, replaces the computed order
type Definition struct {
	Name         string        `yaml:"name"`
	Declarations []Declaration `yaml:"declarations"`
	FieldOrder   []string      `yaml:"field_order,omitempty"`
}

// Declaration is either a field type assignment (FieldType and Inputs) or a
// manual rule (Field and Rules).
type Declaration struct {
	FieldType string   `yaml:"field_type,omitempty"`
	Inputs    []string `yaml:"inputs,omitempty"`
	Field     string   `yaml:"field,omitempty"`
	Rules     []string `yaml:"rules,omitempty"`
}

func LoadDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return &def, nil
		}
		return nil, fmt.Errorf("error decoding definition: %w", err)
	}

	for i, d := range def.Declarations {
		if (d.FieldType == "") == (d.Field == "") {
			return nil, fmt.Errorf("declaration %d: %w", i, ErrInvalidDeclaration)
		}
	}
	return &def, nil
}

func LoadDefinitionFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}
	return LoadDefinition(bytes.NewReader(data))
}

// DefineRules implements RuleDefiner.
func (d *Definition) DefineRules(r *Request) error {
	for _, decl := range d.Declarations {
		if decl.FieldType != "" {
			if err := r.SetInputsFor(decl.FieldType, decl.Inputs...); err != nil {
				return err
			}
			continue
		}
		r.SetRules(decl.Field, decl.Rules...)
	}

	if len(d.FieldOrder) > 0 {
		r.SetFieldOrder(d.FieldOrder...)
	}
	return nil
}
