package schema

import "github.com/dmitrymomot/docschema/pkg/validator"

// User is a record of the "user" collection.
type User struct {
	// Full name.
	Name string `json:"name" bson:"name"`
	// Email address.
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
	// Age in years, 0 to 120 inclusive. Nil when not provided.
	Age      *int `json:"age" bson:"age"`
	IsActive bool `json:"is_active" bson:"is_active"`
}

func (User) Model() Model { return userModel }

// ValidateUser builds a User from raw input. is_active defaults to true.
func ValidateUser(raw Raw) (User, error) {
	f := newFields(raw)

	name, _ := f.requiredString("name")
	email, emailOK := f.requiredEmail("email")
	address, _ := f.requiredString("address")
	age := f.optionalInt("age")
	isActive := f.boolOr("is_active", true)

	var ageValue int
	if age != nil {
		ageValue = *age
	}
	f.errs.Check(
		validator.When(emailOK, validator.ValidEmail("email", email)),
		validator.When(age != nil, validator.MinNum("age", ageValue, 0)),
		validator.When(age != nil, validator.MaxNum("age", ageValue, 120)),
	)
	if err := f.errs.Err(); err != nil {
		return User{}, err
	}

	return User{
		Name:     name,
		Email:    email,
		Address:  address,
		Age:      age,
		IsActive: isActive,
	}, nil
}
