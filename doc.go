// Package fieldtypes composes request validation rules and input
// normalization out of reusable field type plugins, instead of a flat rule
// list per request type.
//
// A field type (see [FieldType]) owns the rules and the post-validation
// transformation for the input fields it is assigned. Field types are
// registered by identifier on a [FieldTypes] registry, which is built once
// per request since field types keep the per-request field assignment.
//
// A [Request] wires the registry into the request lifecycle:
//   - DefineRules: a [RuleDefiner] assigns input fields to field types with
//     SetInputsFor and declares manual rules with SetRules.
//   - Rules: field type rules and manual rules are merged into one rule set,
//     presented in the order fields were declared (or as set by
//     SetFieldOrder). Each field's tokens are joined with "|".
//   - Validate: an [Engine] checks the input against the rule set and, only
//     on success, the input is replaced by the result of folding it through
//     every field type's ModifyInputAfterValidation.
//
// The package does not decide pass or fail itself. The default Engine,
// [PlaygroundEngine], delegates to go-playground/validator, so rule tokens
// are validator tags such as "required", "email" or "min=3". Request input
// is read through the [Input] interface; [MapInput], [NewJSONInput] and
// [HTTPInput] cover the common sources.
//
// Builtin field types are available with FieldTypesOpts.IncludeBuiltins:
//   - email: required valid address, trimmed and lower-cased afterwards
//   - uuid: required UUID, rewritten in canonical form afterwards
//   - checkbox: optional checkbox value, converted to bool afterwards
//   - trim: no rules, trims string values afterwards
//
// Rules can also be declared in YAML with [Definition], which is what the
// fieldtypes command line tool in cmd/fieldtypes uses.
//
// Wiring mistakes are reported eagerly, at declaration time: an unknown
// identifier yields a [NotFoundError], an invalid or duplicate registration
// a [ConfigurationError].
package fieldtypes

/**
NOTES:
- Duplicate identifiers are rejected unless FieldTypesOpts.AllowOverwrite is
  set, in which case the new field type takes the old one's position.
- The field order is append-only: declaring a field twice records it twice.
  Rules only presents the first position. RequestOpts.DedupeFieldOrder drops
  the repeats when they are recorded.
- A field with both field type rules and manual rules uses the field type
  rules. Two field types declaring the same field have their tokens
  concatenated in registration order.
*/
