package fieldtypes

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// ValidationError is a single field failure reported by an Engine.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors is the collection of field failures of one validation
// run, in rule order.
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(ve))
	for _, err := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the failing field names in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

///////////////////////////////////////////////////////////////////////////////
// Engine
///////////////////////////////////////////////////////////////////////////////

// Engine executes a compiled rule set against request values. It decides
// pass or fail; this package only supplies the rules.
type Engine interface {
	Validate(ctx context.Context, values Values, rules []CompiledRule) error
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, values Values, rules []CompiledRule) error

func (f EngineFunc) Validate(ctx context.Context, values Values, rules []CompiledRule) error {
	return f(ctx, values, rules)
}

// PlaygroundEngine validates each field with go-playground/validator.
//
// A field's rule tokens are joined into a validator tag ("required,email")
// and checked against the field's value with VarCtx. Fields missing from the
// values are checked as nil, so "required" fails and "omitempty" skips.
// Fields are checked in rule order.
type PlaygroundEngine struct {
	validate *validator.Validate
	opts     PlaygroundEngineOpts
}

// UnsupportedTypeMessage is reported for a value whose type a rule cannot
// check, such as a bool against min or max.
const UnsupportedTypeMessage = "has an unsupported type"

type PlaygroundEngineOpts struct {
	// StopOnFirstFailure stops at the first failing field.
	StopOnFirstFailure bool
}

func NewPlaygroundEngine(opts PlaygroundEngineOpts) *PlaygroundEngine {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(CheckboxRule, validateCheckbox)

	return &PlaygroundEngine{validate: v, opts: opts}
}

// RegisterValidation adds a custom rule token to the engine.
func (pe *PlaygroundEngine) RegisterValidation(tag string, fn validator.Func) error {
	return pe.validate.RegisterValidation(tag, fn)
}

// Validator returns the underlying go-playground validator.
func (pe *PlaygroundEngine) Validator() *validator.Validate {
	return pe.validate
}

func (pe *PlaygroundEngine) Validate(ctx context.Context, values Values, rules []CompiledRule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if len(rule.Tokens) == 0 {
			continue
		}
		tag := strings.Join(rule.Tokens, EngineTagDelimiter)

		value := values[rule.Field]
		panicked, err := pe.varCtx(ctx, value, tag)
		if panicked {
			errs = append(errs, ValidationError{
				Field:   rule.Field,
				Tag:     pe.unsupportedToken(ctx, value, rule.Tokens),
				Message: UnsupportedTypeMessage,
			})
			if pe.opts.StopOnFirstFailure {
				break
			}
			continue
		}
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate %s: %w", rule.Field, err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   rule.Field,
				Tag:     fe.Tag(),
				Message: errorMessage(fe),
			})
		}

		if pe.opts.StopOnFirstFailure {
			break
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// varCtx runs VarCtx and reports a panic instead of propagating it. The
// baked-in validators panic when a value's kind does not fit the rule, e.g.
// min=3 against a bool.
func (pe *PlaygroundEngine) varCtx(ctx context.Context, value any, tag string) (panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicked, err = true, nil
		}
	}()
	return false, pe.validate.VarCtx(ctx, value, tag)
}

// unsupportedToken returns the first token that cannot handle value, or
// the whole tag when no single token panics on its own.
func (pe *PlaygroundEngine) unsupportedToken(ctx context.Context, value any, tokens []string) string {
	for _, token := range tokens {
		if panicked, _ := pe.varCtx(ctx, value, token); panicked {
			return token
		}
	}
	return strings.Join(tokens, EngineTagDelimiter)
}

// errorMessage returns a human-readable message for a validator failure
func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case RequiredRule:
		return "is required"
	case EmailRule:
		return "must be a valid email address"
	case UUIDRule:
		return "must be a valid UUID"
	case CheckboxRule:
		return "must be a checkbox value"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

func validateCheckbox(fl validator.FieldLevel) bool {
	_, ok := checkboxValue(fl.Field().Interface())
	return ok
}
