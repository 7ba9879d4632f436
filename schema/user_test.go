package schema_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docschema/pkg/validator"
	"github.com/dmitrymomot/docschema/schema"
)

func validUserRaw() schema.Raw {
	return schema.Raw{
		"name":      "Jane Doe",
		"email":     "jane@example.com",
		"address":   "1 Main St",
		"age":       float64(34),
		"is_active": false,
	}
}

func TestValidateUser(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete record", func(t *testing.T) {
		user, err := schema.ValidateUser(validUserRaw())
		require.NoError(t, err)

		require.NotNil(t, user.Age)
		assert.Equal(t, schema.User{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Address:  "1 Main St",
			Age:      user.Age,
			IsActive: false,
		}, user)
		assert.Equal(t, 34, *user.Age)
	})

	t.Run("applies defaults for omitted fields", func(t *testing.T) {
		raw := validUserRaw()
		delete(raw, "age")
		delete(raw, "is_active")

		user, err := schema.ValidateUser(raw)
		require.NoError(t, err)
		assert.Nil(t, user.Age)
		assert.True(t, user.IsActive)
	})

	t.Run("treats null like an omitted optional field", func(t *testing.T) {
		raw := validUserRaw()
		raw["age"] = nil

		user, err := schema.ValidateUser(raw)
		require.NoError(t, err)
		assert.Nil(t, user.Age)
	})

	t.Run("rejects null is_active instead of applying the default", func(t *testing.T) {
		raw := validUserRaw()
		raw["is_active"] = nil

		user, err := schema.ValidateUser(raw)
		require.Error(t, err)
		assert.Equal(t, schema.User{}, user)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"validation.type"}, errs.Keys("is_active"))
		assert.Equal(t, []string{"must be a boolean"}, errs.Get("is_active"))
	})

	t.Run("accepts an empty name", func(t *testing.T) {
		raw := validUserRaw()
		raw["name"] = ""

		user, err := schema.ValidateUser(raw)
		require.NoError(t, err)
		assert.Equal(t, "", user.Name)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		raw := validUserRaw()
		raw["role"] = "admin"

		_, err := schema.ValidateUser(raw)
		assert.NoError(t, err)
	})

	for _, field := range []string{"name", "email", "address"} {
		t.Run("reports missing "+field, func(t *testing.T) {
			raw := validUserRaw()
			delete(raw, field)

			user, err := schema.ValidateUser(raw)
			require.Error(t, err)
			assert.Equal(t, schema.User{}, user)

			errs := validator.ExtractValidationErrors(err)
			assert.Equal(t, []string{"validation.required"}, errs.Keys(field))
		})

		t.Run("reports null "+field+" as missing", func(t *testing.T) {
			raw := validUserRaw()
			raw[field] = nil

			_, err := schema.ValidateUser(raw)
			errs := validator.ExtractValidationErrors(err)
			assert.Equal(t, []string{"validation.required"}, errs.Keys(field))
		})
	}

	t.Run("rejects age outside 0 to 120", func(t *testing.T) {
		for _, age := range []float64{-1, 121} {
			raw := validUserRaw()
			raw["age"] = age

			_, err := schema.ValidateUser(raw)
			require.Error(t, err, "age %v", age)
			assert.True(t, validator.ExtractValidationErrors(err).Has("age"))
		}
	})

	t.Run("reports the bound that was crossed", func(t *testing.T) {
		raw := validUserRaw()
		raw["age"] = -1
		_, err := schema.ValidateUser(raw)
		assert.Equal(t, []string{"validation.min"}, validator.ExtractValidationErrors(err).Keys("age"))

		raw["age"] = 121
		_, err = schema.ValidateUser(raw)
		assert.Equal(t, []string{"validation.max"}, validator.ExtractValidationErrors(err).Keys("age"))
	})

	t.Run("accepts age within 0 to 120", func(t *testing.T) {
		for _, age := range []int{0, 1, 60, 119, 120} {
			raw := validUserRaw()
			raw["age"] = age

			user, err := schema.ValidateUser(raw)
			require.NoError(t, err, "age %d", age)
			require.NotNil(t, user.Age)
			assert.Equal(t, age, *user.Age)
		}
	})

	t.Run("rejects a fractional age as wrong type", func(t *testing.T) {
		raw := validUserRaw()
		raw["age"] = 30.5

		_, err := schema.ValidateUser(raw)
		assert.Equal(t, []string{"validation.type"}, validator.ExtractValidationErrors(err).Keys("age"))
	})

	t.Run("reports huge whole ages as out of range", func(t *testing.T) {
		tests := map[string]struct {
			age any
			key string
		}{
			"beyond int64 as json number": {age: json.Number("99999999999999999999"), key: "validation.max"},
			"exponent json number":        {age: json.Number("1e20"), key: "validation.max"},
			"beyond float64 json number":  {age: json.Number("1e400"), key: "validation.max"},
			"large float":                 {age: float64(1e20), key: "validation.max"},
			"max uint64":                  {age: uint64(math.MaxUint64), key: "validation.max"},
			"large negative json number":  {age: json.Number("-99999999999999999999"), key: "validation.min"},
			"large negative float":        {age: float64(-1e20), key: "validation.min"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				raw := validUserRaw()
				raw["age"] = tt.age

				_, err := schema.ValidateUser(raw)
				require.Error(t, err)
				assert.Equal(t, []string{tt.key}, validator.ExtractValidationErrors(err).Keys("age"))
			})
		}
	})

	t.Run("keeps a fractional json number a type violation", func(t *testing.T) {
		raw := validUserRaw()
		raw["age"] = json.Number("15.5")

		_, err := schema.ValidateUser(raw)
		assert.Equal(t, []string{"validation.type"}, validator.ExtractValidationErrors(err).Keys("age"))
	})

	t.Run("stores the bare address of a display name email", func(t *testing.T) {
		raw := validUserRaw()
		raw["email"] = "Jane Doe <jane@example.com>"

		user, err := schema.ValidateUser(raw)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		raw := validUserRaw()
		raw["email"] = "not-an-email"

		_, err := schema.ValidateUser(raw)
		require.Error(t, err)
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"validation.email"}, errs.Keys("email"))
		assert.Equal(t, []string{"must be a valid email address"}, errs.Get("email"))
	})

	t.Run("collects every violation at once", func(t *testing.T) {
		raw := schema.Raw{
			"email":     "not-an-email",
			"address":   42,
			"age":       float64(200),
			"is_active": "yes",
		}

		_, err := schema.ValidateUser(raw)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.ElementsMatch(t, []string{"name", "email", "address", "age", "is_active"}, errs.Fields())
		assert.Equal(t, []string{"validation.required"}, errs.Keys("name"))
		assert.Equal(t, []string{"validation.type"}, errs.Keys("address"))
		assert.Equal(t, []string{"validation.max"}, errs.Keys("age"))
		assert.Equal(t, []string{"validation.type"}, errs.Keys("is_active"))
	})
}
