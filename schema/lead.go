package schema

import "github.com/dmitrymomot/docschema/pkg/validator"

// Lead is a landing page contact request, stored in the "lead" collection.
type Lead struct {
	Company  string `json:"company" bson:"company"`
	FullName string `json:"full_name" bson:"full_name"`
	// Business email.
	Email string  `json:"email" bson:"email"`
	Phone *string `json:"phone" bson:"phone"`
	// Company size segment, e.g. "1-10", "11-50", "51-200", "200+".
	Employees *string `json:"employees" bson:"employees"`
	// Plan selected at submission time.
	Plan    *string `json:"plan" bson:"plan"`
	Message *string `json:"message" bson:"message"`
	// UTM or other attribution tag.
	Source *string `json:"source" bson:"source"`
}

func (Lead) Model() Model { return leadModel }

const leadMinNameLen = 2

// ValidateLead builds a Lead from raw input. Company and contact name need at
// least two characters.
func ValidateLead(raw Raw) (Lead, error) {
	f := newFields(raw)

	company, companyOK := f.requiredString("company")
	fullName, fullNameOK := f.requiredString("full_name")
	email, emailOK := f.requiredEmail("email")
	lead := Lead{
		Phone:     f.optionalString("phone"),
		Employees: f.optionalString("employees"),
		Plan:      f.optionalString("plan"),
		Message:   f.optionalString("message"),
		Source:    f.optionalString("source"),
	}

	f.errs.Check(
		validator.When(companyOK, validator.MinLenString("company", company, leadMinNameLen)),
		validator.When(fullNameOK, validator.MinLenString("full_name", fullName, leadMinNameLen)),
		validator.When(emailOK, validator.ValidEmail("email", email)),
	)
	if err := f.errs.Err(); err != nil {
		return Lead{}, err
	}

	lead.Company = company
	lead.FullName = fullName
	lead.Email = email
	return lead, nil
}
