package fieldtypes

import (
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// FieldTypes Registry
///////////////////////////////////////////////////////////////////////////////

// FieldTypes is the registry of field types for one request.
//
// It stores field types by identifier, assigns input fields to them,
// aggregates their rules and threads validated input values through their
// post-validation transformations.
//
// Field types are kept in registration order. Both Rules and
// ModifyInputAfterValidation walk them in that order.
//
// A FieldTypes instance is not safe for concurrent use. It is meant to be
// built once per request and discarded with it.
type FieldTypes struct {
	m      map[string]FieldType // identifier -> field type
	order  []string             // identifiers in registration order
	opts   FieldTypesOpts
	logger *zap.Logger
}

type FieldTypesOpts struct {
	// Constructors are registered, in order, after any builtins.
	Constructors []Constructor
	// IncludeBuiltins registers the builtin catalog (see BuiltinConstructors) first.
	IncludeBuiltins bool
	// AllowOverwrite lets a registration replace an existing identifier
	// instead of failing. The replacement keeps the original position.
	AllowOverwrite bool
	Logger         *zap.Logger
}

func NewFieldTypes(opts FieldTypesOpts) (*FieldTypes, error) {
	reg := &FieldTypes{
		m:      make(map[string]FieldType),
		opts:   opts,
		logger: opts.Logger,
	}
	if reg.logger == nil {
		reg.logger = zap.NewNop()
	}

	if opts.IncludeBuiltins {
		for _, ctor := range BuiltinConstructors() {
			if err := reg.Register(ctor); err != nil {
				return nil, err
			}
		}
	}

	for _, ctor := range opts.Constructors {
		if err := reg.Register(ctor); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register instantiates a field type and stores it under its identifier.
func (reg *FieldTypes) Register(ctor Constructor) error {
	if ctor == nil {
		return &ConfigurationError{Err: ErrNilConstructor}
	}
	return reg.add(ctor())
}

// RegisterValue registers a value that is only known as any, such as one
// resolved from a dependency container. It fails with a ConfigurationError
// when v does not implement FieldType.
func (reg *FieldTypes) RegisterValue(v any) error {
	ft, ok := v.(FieldType)
	if !ok {
		return &ConfigurationError{Err: ErrInvalidFieldType}
	}
	return reg.add(ft)
}

func (reg *FieldTypes) add(ft FieldType) error {
	if ft == nil {
		return &ConfigurationError{Err: ErrNilFieldType}
	}

	id := ft.Identifier()
	if id == "" {
		return &ConfigurationError{Err: ErrEmptyIdentifier}
	}

	if _, exists := reg.m[id]; exists {
		if !reg.opts.AllowOverwrite {
			return &ConfigurationError{Identifier: id, Err: ErrDuplicateIdentifier}
		}
		reg.logger.Warn("overwriting registered field type", zap.String("identifier", id))
		reg.m[id] = ft
		return nil
	}

	reg.m[id] = ft
	reg.order = append(reg.order, id)
	reg.logger.Debug("registered field type", zap.String("identifier", id))
	return nil
}

// Get returns the field type registered under identifier.
func (reg *FieldTypes) Get(identifier string) (FieldType, error) {
	ft, exists := reg.m[identifier]
	if !exists {
		return nil, &NotFoundError{Identifier: identifier}
	}
	return ft, nil
}

func (reg *FieldTypes) Has(identifier string) bool {
	_, exists := reg.m[identifier]
	return exists
}

// Identifiers returns the registered identifiers in registration order.
func (reg *FieldTypes) Identifiers() []string {
	return append([]string(nil), reg.order...)
}

func (reg *FieldTypes) Len() int {
	return len(reg.order)
}

// SetInputsFor assigns fieldNames to the field type registered under
// identifier. The names are returned so callers can track field ordering.
func (reg *FieldTypes) SetInputsFor(identifier string, fieldNames []string) ([]string, error) {
	ft, err := reg.Get(identifier)
	if err != nil {
		return nil, err
	}

	names := append([]string(nil), fieldNames...)
	ft.SetInputFields(names)
	reg.logger.Debug("assigned input fields",
		zap.String("identifier", identifier),
		zap.Strings("fields", names),
	)
	return append([]string(nil), names...), nil
}

// Rules merges the rules of every registered field type. When two field
// types declare rules for the same field, the later one's tokens are
// appended after the earlier one's.
func (reg *FieldTypes) Rules() RuleMap {
	rules := make(RuleMap)
	reg.each(func(ft FieldType) {
		rules.Merge(ft.Rules())
	})
	return rules
}

// ModifyInputAfterValidation folds values through every field type's
// ModifyInputAfterValidation in registration order. Each field type
// receives the previous one's output. A nil result is passed on as an
// empty Values.
func (reg *FieldTypes) ModifyInputAfterValidation(values Values) Values {
	if values == nil {
		values = make(Values)
	}
	reg.each(func(ft FieldType) {
		values = ft.ModifyInputAfterValidation(values)
		if values == nil {
			values = make(Values)
		}
	})
	return values
}

func (reg *FieldTypes) each(fn func(FieldType)) {
	for _, id := range reg.order {
		fn(reg.m[id])
	}
}
