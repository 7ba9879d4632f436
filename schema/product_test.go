package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docschema/pkg/validator"
	"github.com/dmitrymomot/docschema/schema"
)

func validProductRaw() schema.Raw {
	return schema.Raw{
		"title":       "Desk lamp",
		"description": "Warm white, dimmable",
		"price":       49.9,
		"category":    "lighting",
		"in_stock":    false,
	}
}

func TestValidateProduct(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete record", func(t *testing.T) {
		product, err := schema.ValidateProduct(validProductRaw())
		require.NoError(t, err)

		require.NotNil(t, product.Description)
		assert.Equal(t, "Desk lamp", product.Title)
		assert.Equal(t, "Warm white, dimmable", *product.Description)
		assert.Equal(t, 49.9, product.Price)
		assert.Equal(t, "lighting", product.Category)
		assert.False(t, product.InStock)
	})

	t.Run("applies defaults for omitted fields", func(t *testing.T) {
		raw := validProductRaw()
		delete(raw, "description")
		delete(raw, "in_stock")

		product, err := schema.ValidateProduct(raw)
		require.NoError(t, err)
		assert.Nil(t, product.Description)
		assert.True(t, product.InStock)
	})

	t.Run("accepts a zero price", func(t *testing.T) {
		raw := validProductRaw()
		raw["price"] = float64(0)

		product, err := schema.ValidateProduct(raw)
		require.NoError(t, err)
		assert.Zero(t, product.Price)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		raw := validProductRaw()
		raw["price"] = -0.01

		_, err := schema.ValidateProduct(raw)
		require.Error(t, err)
		assert.Equal(t, []string{"validation.min"}, validator.ExtractValidationErrors(err).Keys("price"))
	})

	t.Run("accepts integer and json.Number prices", func(t *testing.T) {
		raw := validProductRaw()
		raw["price"] = 10
		product, err := schema.ValidateProduct(raw)
		require.NoError(t, err)
		assert.Equal(t, 10.0, product.Price)

		raw["price"] = json.Number("12.5")
		product, err = schema.ValidateProduct(raw)
		require.NoError(t, err)
		assert.Equal(t, 12.5, product.Price)
	})

	t.Run("rejects a price given as text", func(t *testing.T) {
		raw := validProductRaw()
		raw["price"] = "10"

		_, err := schema.ValidateProduct(raw)
		assert.Equal(t, []string{"validation.type"}, validator.ExtractValidationErrors(err).Keys("price"))
	})

	for _, field := range []string{"title", "price", "category"} {
		t.Run("reports missing "+field, func(t *testing.T) {
			raw := validProductRaw()
			delete(raw, field)

			_, err := schema.ValidateProduct(raw)
			require.Error(t, err)
			assert.Equal(t, []string{"validation.required"}, validator.ExtractValidationErrors(err).Keys(field))
		})
	}

	t.Run("rejects a non-string description", func(t *testing.T) {
		raw := validProductRaw()
		raw["description"] = []any{"a"}

		_, err := schema.ValidateProduct(raw)
		assert.Equal(t, []string{"validation.type"}, validator.ExtractValidationErrors(err).Keys("description"))
	})

	t.Run("rejects null in_stock instead of applying the default", func(t *testing.T) {
		raw := validProductRaw()
		raw["in_stock"] = nil

		_, err := schema.ValidateProduct(raw)
		require.Error(t, err)
		assert.Equal(t, []string{"validation.type"}, validator.ExtractValidationErrors(err).Keys("in_stock"))
	})
}
