package fieldtypes

///////////////////////////////////////////////////////////////////////////////
// FieldType Interface
///////////////////////////////////////////////////////////////////////////////

// FieldType is a reusable plugin that owns rule generation and
// post-validation input transformation for one or more request fields.
//
// Field types are stateful: the input fields they handle are assigned per
// request through SetInputFields, so a fresh instance is built for every
// FieldTypes registry (see Constructor).
type FieldType interface {
	// Identifier returns the key the field type is registered under.
	Identifier() string
	// SetInputFields assigns the request input fields this instance handles.
	SetInputFields(names []string)
	// Rules returns the rule tokens for each assigned input field.
	Rules() RuleMap
	// ModifyInputAfterValidation receives every validated request value and
	// returns the values to store back on the request.
	ModifyInputAfterValidation(values Values) Values
}

// Constructor builds a new FieldType instance.
type Constructor func() FieldType

///////////////////////////////////////////////////////////////////////////////
// BaseFieldType
///////////////////////////////////////////////////////////////////////////////

// BaseFieldType is a base implementation of the bookkeeping part of
// FieldType. Embed it and implement Rules and ModifyInputAfterValidation.
//
// Example Implementation:
//
//	type SlugFieldType struct {
//	    fieldtypes.BaseFieldType
//	}
//
//	func NewSlugFieldType() fieldtypes.FieldType {
//	    return &SlugFieldType{BaseFieldType: fieldtypes.NewBaseFieldType("slug")}
//	}
//
//	func (s *SlugFieldType) Rules() fieldtypes.RuleMap {
//	    return s.RulesForInputs("required", "alphanum")
//	}
//
//	func (s *SlugFieldType) ModifyInputAfterValidation(values fieldtypes.Values) fieldtypes.Values {
//	    return s.MapInputs(values, func(v any) any { return strings.ToLower(fmt.Sprint(v)) })
//	}
type BaseFieldType struct {
	identifier  string
	inputFields []string
}

func NewBaseFieldType(identifier string) BaseFieldType {
	return BaseFieldType{identifier: identifier}
}

func (b *BaseFieldType) Identifier() string {
	return b.identifier
}

func (b *BaseFieldType) SetInputFields(names []string) {
	b.inputFields = append([]string(nil), names...)
}

// InputFields returns the fields assigned by the last SetInputFields call.
func (b *BaseFieldType) InputFields() []string {
	return append([]string(nil), b.inputFields...)
}

// RulesForInputs gives every assigned input field the same rule tokens.
func (b *BaseFieldType) RulesForInputs(rules ...string) RuleMap {
	rm := make(RuleMap, len(b.inputFields))
	for _, field := range b.inputFields {
		rm[field] = append([]string(nil), rules...)
	}
	return rm
}

// MapInputs applies fn to each assigned input field present in values.
// Fields missing from values are left missing.
func (b *BaseFieldType) MapInputs(values Values, fn func(any) any) Values {
	for _, field := range b.inputFields {
		if v, ok := values[field]; ok {
			values[field] = fn(v)
		}
	}
	return values
}
