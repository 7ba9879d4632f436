// Package validator provides small, composable validation rules for record
// fields: presence, type, string length, numeric bounds and email format.
//
// Every exported helper returns a Rule that pairs a boolean Check with the
// ValidationError reported when the check fails. Rules are evaluated with
// Apply, or accumulated into a ValidationErrors value with its Check method,
// so that every violation in a record is reported at once instead of stopping
// at the first failure.
//
// # Usage
//
//	var errs validator.ValidationErrors
//	errs.Check(
//	    validator.Present("email", ok),
//	    validator.When(ok, validator.ValidEmail("email", email)),
//	    validator.When(hasAge, validator.MinNum("age", age, 0)),
//	)
//	if err := errs.Err(); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Use ExtractValidationErrors to inspect the field-level entries;
// each carries a TranslationKey (validation.required, validation.type,
// validation.min, validation.max, validation.min_length, validation.email)
// that callers can map to localized messages.
//
// The package holds no state and every rule is safe for concurrent use.
package validator
