package fieldtypes

import (
	"sort"
	"strings"
)

// Values holds request input values keyed by input field name.
type Values map[string]any

// Clone returns a shallow copy of v. A nil Values clones to an empty one.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

func (v Values) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// RuleMap maps an input field name to its ordered rule tokens.
type RuleMap map[string][]string

// Fields returns the field names of rm sorted by name.
func (rm RuleMap) Fields() []string {
	fields := make([]string, 0, len(rm))
	for field := range rm {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Merge appends the tokens of other onto rm. Fields present in both keep
// rm's tokens first.
func (rm RuleMap) Merge(other RuleMap) RuleMap {
	for field, rules := range other {
		rm[field] = append(rm[field], rules...)
	}
	return rm
}

// Union adds the fields of other that rm does not have yet. Fields present
// in both keep rm's tokens.
func (rm RuleMap) Union(other RuleMap) RuleMap {
	for field, rules := range other {
		if _, exists := rm[field]; !exists {
			rm[field] = append([]string(nil), rules...)
		}
	}
	return rm
}

// CompiledRule is the final rule set entry for one input field.
type CompiledRule struct {
	Field  string
	Rule   string   // Tokens joined by the request's rule delimiter
	Tokens []string // individual rule tokens, in declaration order
}

func compileRule(field string, tokens []string, delimiter string) CompiledRule {
	return CompiledRule{
		Field:  field,
		Rule:   strings.Join(tokens, delimiter),
		Tokens: append([]string(nil), tokens...),
	}
}

// RuleStrings returns the field → rule string mapping of rules. The
// mapping loses ordering; use the slice itself when order matters.
func RuleStrings(rules []CompiledRule) map[string]string {
	out := make(map[string]string, len(rules))
	for _, r := range rules {
		out[r.Field] = r.Rule
	}
	return out
}
