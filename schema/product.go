package schema

import "github.com/dmitrymomot/docschema/pkg/validator"

// Product is a record of the "product" collection.
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description *string `json:"description" bson:"description"`
	// Price in dollars, never negative.
	Price    float64 `json:"price" bson:"price"`
	Category string  `json:"category" bson:"category"`
	// Whether the product is in stock. Defaults to true.
	InStock bool `json:"in_stock" bson:"in_stock"`
}

func (Product) Model() Model { return productModel }

// ValidateProduct builds a Product from raw input. Price must not be negative
// and in_stock defaults to true.
func ValidateProduct(raw Raw) (Product, error) {
	f := newFields(raw)

	title, _ := f.requiredString("title")
	description := f.optionalString("description")
	price, priceOK := f.requiredNumber("price")
	category, _ := f.requiredString("category")
	inStock := f.boolOr("in_stock", true)

	f.errs.Check(validator.When(priceOK, validator.MinNum("price", price, 0)))
	if err := f.errs.Err(); err != nil {
		return Product{}, err
	}

	return Product{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		InStock:     inStock,
	}, nil
}
