package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docschema/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Present("name", true),
			validator.MinNum("age", 30, 0),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil for no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failing rule in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Present("name", false),
			validator.MinNum("age", -1, 0),
			validator.ValidEmail("email", "nope"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"name", "age", "email"}, errs.Fields())
	})

	t.Run("error message lists field messages", func(t *testing.T) {
		err := validator.Apply(validator.Present("name", false))
		assert.Equal(t, "validation failed: name: field is required", err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "age", Message: "must be at least 0", TranslationKey: "validation.min"},
		{Field: "email", Message: "field is required", TranslationKey: "validation.required"},
		{Field: "age", Message: "must be an integer", TranslationKey: "validation.type"},
	}

	t.Run("has reports fields with errors", func(t *testing.T) {
		assert.True(t, errs.Has("age"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get returns messages for a field", func(t *testing.T) {
		assert.Equal(t, []string{"must be at least 0", "must be an integer"}, errs.Get("age"))
		assert.Nil(t, errs.Get("name"))
	})

	t.Run("keys returns translation keys", func(t *testing.T) {
		assert.Equal(t, []string{"validation.min", "validation.type"}, errs.Keys("age"))
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"age", "email"}, errs.Fields())
	})

	t.Run("details groups messages by field", func(t *testing.T) {
		assert.Equal(t, map[string][]string{
			"age":   {"must be at least 0", "must be an integer"},
			"email": {"field is required"},
		}, errs.Details())
	})

	t.Run("empty set has no details and no error", func(t *testing.T) {
		var empty validator.ValidationErrors
		assert.True(t, empty.IsEmpty())
		assert.Nil(t, empty.Details())
		assert.NoError(t, empty.Err())
		assert.Equal(t, "validation failed", empty.Error())
	})

	t.Run("check appends only failures", func(t *testing.T) {
		var collected validator.ValidationErrors
		collected.Check(
			validator.Present("name", true),
			validator.Present("address", false),
		)
		require.Len(t, collected, 1)
		assert.Equal(t, "address", collected[0].Field)
		assert.Error(t, collected.Err())
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	t.Run("skips the rule when condition is false", func(t *testing.T) {
		rule := validator.When(false, validator.MinNum("age", -5, 0))
		assert.True(t, rule.Check())
		assert.Equal(t, "age", rule.Error.Field)
	})

	t.Run("evaluates the rule when condition is true", func(t *testing.T) {
		assert.False(t, validator.When(true, validator.MinNum("age", -5, 0)).Check())
		assert.True(t, validator.When(true, validator.MinNum("age", 5, 0)).Check())
	})
}

func TestErrorDetection(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Present("name", false))
	wrapped := fmt.Errorf("create user: %w", err)

	t.Run("detects wrapped validation errors", func(t *testing.T) {
		assert.True(t, validator.IsValidationError(wrapped))
		assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})

	t.Run("ignores other errors", func(t *testing.T) {
		other := errors.New("boom")
		assert.False(t, validator.IsValidationError(other))
		assert.False(t, validator.IsValidationError(nil))
		assert.False(t, errors.Is(other, validator.ErrValidationFailed))
		assert.Nil(t, validator.ExtractValidationErrors(other))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}
