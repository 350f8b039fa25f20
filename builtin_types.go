package fieldtypes

import (
	"strings"

	"github.com/google/uuid"
)

var (
	_builtinConstructors []Constructor = nil
)

func init() {
	_builtinConstructors = []Constructor{
		NewEmailFieldType,
		NewUUIDFieldType,
		NewCheckboxFieldType,
		NewTrimFieldType,
	}
}

// BuiltinConstructors returns the constructors of the builtin field types,
// in the order FieldTypesOpts.IncludeBuiltins registers them.
func BuiltinConstructors() []Constructor {
	return append([]Constructor(nil), _builtinConstructors...)
}

///////////////////////////////////////////////////////////////////////////////
// email
///////////////////////////////////////////////////////////////////////////////

// EmailFieldType requires a valid email address and stores it trimmed and
// lower-cased.
type EmailFieldType struct {
	BaseFieldType
}

func NewEmailFieldType() FieldType {
	return &EmailFieldType{BaseFieldType: NewBaseFieldType(EmailFieldTypeIdentifier)}
}

func (e *EmailFieldType) Rules() RuleMap {
	return e.RulesForInputs(RequiredRule, EmailRule)
}

func (e *EmailFieldType) ModifyInputAfterValidation(values Values) Values {
	return e.MapInputs(values, func(v any) any {
		s, ok := stringValue(v)
		if !ok {
			return v
		}
		return strings.ToLower(strings.TrimSpace(s))
	})
}

///////////////////////////////////////////////////////////////////////////////
// uuid
///////////////////////////////////////////////////////////////////////////////

// UUIDFieldType requires a UUID and stores it in canonical form.
type UUIDFieldType struct {
	BaseFieldType
}

func NewUUIDFieldType() FieldType {
	return &UUIDFieldType{BaseFieldType: NewBaseFieldType(UUIDFieldTypeIdentifier)}
}

func (u *UUIDFieldType) Rules() RuleMap {
	return u.RulesForInputs(RequiredRule, UUIDRule)
}

func (u *UUIDFieldType) ModifyInputAfterValidation(values Values) Values {
	return u.MapInputs(values, func(v any) any {
		s, ok := stringValue(v)
		if !ok {
			return v
		}
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return v
		}
		return id.String()
	})
}

///////////////////////////////////////////////////////////////////////////////
// checkbox
///////////////////////////////////////////////////////////////////////////////

// CheckboxFieldType accepts the usual checkbox submissions and stores a
// bool for every assigned field. Unchecked boxes are usually not submitted
// at all, so a missing field becomes false.
type CheckboxFieldType struct {
	BaseFieldType
}

func NewCheckboxFieldType() FieldType {
	return &CheckboxFieldType{BaseFieldType: NewBaseFieldType(CheckboxFieldTypeIdentifier)}
}

func (c *CheckboxFieldType) Rules() RuleMap {
	return c.RulesForInputs(OmitEmptyRule, CheckboxRule)
}

func (c *CheckboxFieldType) ModifyInputAfterValidation(values Values) Values {
	if values == nil {
		values = make(Values)
	}
	for _, field := range c.InputFields() {
		checked, _ := checkboxValue(values[field])
		values[field] = checked
	}
	return values
}

///////////////////////////////////////////////////////////////////////////////
// trim
///////////////////////////////////////////////////////////////////////////////

// TrimFieldType adds no rules. It trims surrounding whitespace from string
// values after validation.
type TrimFieldType struct {
	BaseFieldType
}

func NewTrimFieldType() FieldType {
	return &TrimFieldType{BaseFieldType: NewBaseFieldType(TrimFieldTypeIdentifier)}
}

func (t *TrimFieldType) Rules() RuleMap {
	return RuleMap{}
}

func (t *TrimFieldType) ModifyInputAfterValidation(values Values) Values {
	return t.MapInputs(values, func(v any) any {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	})
}
