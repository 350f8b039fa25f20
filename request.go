package fieldtypes

import (
	"context"

	"go.uber.org/zap"
)

// RuleDefiner declares the rules of a request. Every request type must
// provide one; DefineRules is where it calls SetInputsFor, SetRules and
// SetFieldOrder on r.
type RuleDefiner interface {
	DefineRules(r *Request) error
}

// RuleDefinerFunc adapts a function to RuleDefiner.
type RuleDefinerFunc func(r *Request) error

func (f RuleDefinerFunc) DefineRules(r *Request) error {
	return f(r)
}

// Request wires a FieldTypes registry into one request's validation
// lifecycle:
//
//  1. DefineRules runs the RuleDefiner, which declares fields through
//     field types (SetInputsFor) and directly (SetRules).
//  2. Rules merges both sources into one ordered rule set.
//  3. The Engine validates the input against that rule set.
//  4. Only on success, the input is replaced by the registry's
//     ModifyInputAfterValidation result.
//
// Application request types usually embed *Request and implement
// RuleDefiner themselves:
//
//	type SignupRequest struct {
//	    *fieldtypes.Request
//	}
//
//	func (s *SignupRequest) DefineRules(r *fieldtypes.Request) error {
//	    if err := r.SetInputsFor("email", "address"); err != nil {
//	        return err
//	    }
//	    r.SetRules("confirm", "required")
//	    return nil
//	}
type Request struct {
	definer    RuleDefiner
	fields     *FieldTypes
	input      Input
	rules      RuleMap  // manually declared rules
	fieldOrder []string // declaration order, append-only unless DedupeFieldOrder
	defined    bool
	validated  bool
	opts       RequestOpts
	logger     *zap.Logger
}

type RequestOpts struct {
	// Engine validates the compiled rules. Defaults to a PlaygroundEngine.
	Engine Engine
	// RuleDelimiter joins rule tokens in CompiledRule.Rule. Defaults to
	// DefaultRuleDelimiter.
	RuleDelimiter string
	// DedupeFieldOrder ignores field names already present in the field
	// order instead of appending them again.
	DedupeFieldOrder bool
	Logger           *zap.Logger
}

func NewRequest(definer RuleDefiner, fields *FieldTypes, input Input, opts RequestOpts) (*Request, error) {
	if definer == nil {
		return nil, &ConfigurationError{Err: ErrNoRuleDefiner}
	}
	if fields == nil {
		return nil, &ConfigurationError{Err: ErrNoFieldTypes}
	}
	if input == nil {
		input = NewMapInput(nil)
	}
	if opts.Engine == nil {
		opts.Engine = NewPlaygroundEngine(PlaygroundEngineOpts{})
	}
	if opts.RuleDelimiter == "" {
		opts.RuleDelimiter = DefaultRuleDelimiter
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Request{
		definer: definer,
		fields:  fields,
		input:   input,
		rules:   make(RuleMap),
		opts:    opts,
		logger:  logger,
	}, nil
}

// Fields returns the request's FieldTypes registry.
func (r *Request) Fields() *FieldTypes {
	return r.fields
}

func (r *Request) Input() Input {
	return r.input
}

// SetInputsFor assigns fieldNames to the field type registered under
// identifier and adds them to the field order. It fails with a
// NotFoundError for an unknown identifier.
func (r *Request) SetInputsFor(identifier string, fieldNames ...string) error {
	names, err := r.fields.SetInputsFor(identifier, fieldNames)
	if err != nil {
		return err
	}
	for _, name := range names {
		r.addFieldToOrder(name)
	}
	return nil
}

// SetRules declares rule tokens for a field directly, replacing any rules
// previously set this way for the same field.
func (r *Request) SetRules(field string, rules ...string) {
	r.rules[field] = append([]string(nil), rules...)
	r.addFieldToOrder(field)
}

// SetFieldOrder replaces the accumulated field order.
func (r *Request) SetFieldOrder(order ...string) {
	r.fieldOrder = append([]string(nil), order...)
}

// FieldOrder returns the field order as accumulated. Unless
// DedupeFieldOrder is set, a field declared twice appears twice.
func (r *Request) FieldOrder() []string {
	return append([]string(nil), r.fieldOrder...)
}

func (r *Request) addFieldToOrder(field string) {
	if r.opts.DedupeFieldOrder {
		for _, existing := range r.fieldOrder {
			if existing == field {
				return
			}
		}
	}
	r.fieldOrder = append(r.fieldOrder, field)
}

// DefineRules runs the RuleDefiner. It only runs once per request. When
// the RuleDefiner fails, the field order and manual rules are restored to
// their state before the call so a retry starts clean.
func (r *Request) DefineRules() error {
	if r.defined {
		return nil
	}

	fieldOrder := append([]string(nil), r.fieldOrder...)
	rules := make(RuleMap, len(r.rules))
	for field, tokens := range r.rules {
		rules[field] = tokens
	}

	if err := r.definer.DefineRules(r); err != nil {
		// a failed hook leaves no partial declarations behind
		r.fieldOrder = fieldOrder
		r.rules = rules
		return err
	}
	r.defined = true
	return nil
}

// Rules returns the field type rules unioned with the manually set rules,
// one entry per field.
//
// Fields come in the order of their first appearance in the field order.
// Fields in the field order without any rules are skipped. Fields with
// rules that never entered the field order follow, sorted by name. When a
// field has both field type rules and manual rules, the field type rules
// are used.
func (r *Request) Rules() []CompiledRule {
	all := r.fields.Rules().Union(r.rules)

	compiled := make([]CompiledRule, 0, len(all))
	seen := make(map[string]bool, len(all))

	for _, field := range r.fieldOrder {
		if seen[field] {
			continue
		}
		tokens, ok := all[field]
		if !ok {
			continue
		}
		seen[field] = true
		compiled = append(compiled, compileRule(field, tokens, r.opts.RuleDelimiter))
	}

	for _, field := range all.Fields() {
		if seen[field] {
			continue
		}
		compiled = append(compiled, compileRule(field, all[field], r.opts.RuleDelimiter))
	}

	return compiled
}

// Validate defines the rules, validates the input with the Engine and, on
// success, replaces the input with the field types' transformed values.
// On failure the input is left untouched and the Engine's error is
// returned as is.
func (r *Request) Validate(ctx context.Context) error {
	if err := r.DefineRules(); err != nil {
		return err
	}

	rules := r.Rules()
	r.logger.Debug("validating request",
		zap.Int("fields", len(rules)),
		zap.Strings("field_order", r.fieldOrder),
	)

	if err := r.opts.Engine.Validate(ctx, r.input.All(), rules); err != nil {
		r.logger.Debug("request validation failed", zap.Error(err))
		return err
	}

	r.runAfterValidate()
	return nil
}

func (r *Request) runAfterValidate() {
	r.input.Replace(r.fields.ModifyInputAfterValidation(r.input.All()))
	r.validated = true
}

// Validated returns the input values after a successful Validate, or nil
// when the request has not been validated.
func (r *Request) Validated() Values {
	if !r.validated {
		return nil
	}
	return r.input.All()
}
