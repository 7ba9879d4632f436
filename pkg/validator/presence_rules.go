package validator

// Present validates that a field was supplied with a non-null value.
func Present(field string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: requiredError(field),
	}
}

// TypeMatch validates that a supplied value had the expected type.
// expected is a human-readable type name such as "string" or "integer".
func TypeMatch(field string, ok bool, expected string) Rule {
	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be " + article(expected) + " " + expected,
			TranslationKey: "validation.type",
			TranslationValues: map[string]any{
				"field": field,
				"type":  expected,
			},
		},
	}
}

func requiredError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "field is required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

func article(noun string) string {
	if noun == "" {
		return "a"
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
