package fieldtypes

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compiled(field string, tokens ...string) CompiledRule {
	return compileRule(field, tokens, DefaultRuleDelimiter)
}

func TestPlaygroundEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})

		err := engine.Validate(ctx, Values{"address": "bob@example.com", "name": "bob"}, []CompiledRule{
			compiled("address", "required", "email"),
			compiled("name", "required", "min=2"),
		})
		assert.NoError(t, err)
	})

	t.Run("CollectsFailuresInRuleOrder", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})

		err := engine.Validate(ctx, Values{"address": "not-an-email"}, []CompiledRule{
			compiled("name", "required"),
			compiled("address", "required", "email"),
		})
		require.Error(t, err)

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"name", "address"}, verrs.Fields())
		assert.Equal(t, ValidationError{Field: "name", Tag: "required", Message: "is required"}, verrs[0])
		assert.Equal(t, ValidationError{Field: "address", Tag: "email", Message: "must be a valid email address"}, verrs[1])
		assert.Equal(t, "validation failed: name: is required; address: must be a valid email address", err.Error())
	})

	t.Run("StopOnFirstFailure", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{StopOnFirstFailure: true})

		err := engine.Validate(ctx, Values{}, []CompiledRule{
			compiled("first", "required"),
			compiled("second", "required"),
		})

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"first"}, verrs.Fields())
	})

	t.Run("OmitEmptySkipsMissingFields", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})

		err := engine.Validate(ctx, Values{}, []CompiledRule{
			compiled("newsletter", "omitempty", "checkbox"),
		})
		assert.NoError(t, err)
	})

	t.Run("EmptyTokensAreSkipped", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})

		err := engine.Validate(ctx, Values{}, []CompiledRule{compiled("anything")})
		assert.NoError(t, err)
	})

	t.Run("CheckboxRule", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})
		rules := []CompiledRule{compiled("terms", "checkbox")}

		tests := []struct {
			name  string
			value any
			valid bool
		}{
			{"on", "on", true},
			{"yes", "yes", true},
			{"one", "1", true},
			{"false string", "false", true},
			{"bool", true, true},
			{"json number", float64(1), true},
			{"other string", "maybe", false},
			{"other number", float64(2), false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := engine.Validate(ctx, Values{"terms": tt.value}, rules)
				if tt.valid {
					assert.NoError(t, err)
				} else {
					assert.Error(t, err)
				}
			})
		}
	})

	t.Run("LengthAndRangeMessages", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})

		err := engine.Validate(ctx, Values{"name": "bo", "age": float64(2), "bio": "toolong"}, []CompiledRule{
			compiled("name", "min=3"),
			compiled("age", "min=3"),
			compiled("bio", "max=3"),
		})

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, ValidationErrors{
			{Field: "name", Tag: "min", Message: "must be at least 3 characters"},
			{Field: "age", Tag: "min", Message: "must be at least 3"},
			{Field: "bio", Tag: "max", Message: "must be at most 3 characters"},
		}, verrs)
	})

	t.Run("MismatchedValueTypes", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})
		values := Values{"age": true, "count": true, "name": "bob"}
		rules := []CompiledRule{
			compiled("age", "min=3"),
			compiled("count", "required", "max=5"),
			compiled("name", "required", "min=2"),
		}

		var err error
		require.NotPanics(t, func() {
			err = engine.Validate(ctx, values, rules)
		})

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, ValidationErrors{
			{Field: "age", Tag: "min=3", Message: UnsupportedTypeMessage},
			{Field: "count", Tag: "max=5", Message: UnsupportedTypeMessage},
		}, verrs)
	})

	t.Run("MismatchedValueTypes_StopOnFirstFailure", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{StopOnFirstFailure: true})

		var err error
		require.NotPanics(t, func() {
			err = engine.Validate(ctx, Values{"age": true}, []CompiledRule{
				compiled("age", "min=3"),
				compiled("missing", "required"),
			})
		})

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"age"}, verrs.Fields())
	})

	t.Run("RegisterValidation", func(t *testing.T) {
		engine := NewPlaygroundEngine(PlaygroundEngineOpts{})
		err := engine.RegisterValidation("even", func(fl validator.FieldLevel) bool {
			return fl.Field().Int()%2 == 0
		})
		require.NoError(t, err)
		assert.NotNil(t, engine.Validator())

		assert.NoError(t, engine.Validate(ctx, Values{"n": 4}, []CompiledRule{compiled("n", "even")}))

		err = engine.Validate(ctx, Values{"n": 3}, []CompiledRule{compiled("n", "even")})
		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "failed validation: even", verrs[0].Message)
	})
}

func TestEngineFunc(t *testing.T) {
	called := false
	var engine Engine = EngineFunc(func(ctx context.Context, values Values, rules []CompiledRule) error {
		called = true
		return nil
	})

	require.NoError(t, engine.Validate(context.Background(), nil, nil))
	assert.True(t, called)
}

func TestValidationErrors(t *testing.T) {
	t.Run("EmptyMessage", func(t *testing.T) {
		var verrs ValidationErrors
		assert.Equal(t, "validation failed", verrs.Error())
		assert.False(t, verrs.Has("x"))
	})

	t.Run("FieldsDeduplicated", func(t *testing.T) {
		verrs := ValidationErrors{
			{Field: "password", Message: "too short"},
			{Field: "email", Message: "is required"},
			{Field: "password", Message: "missing digit"},
		}
		assert.Equal(t, []string{"password", "email"}, verrs.Fields())
	})
}
