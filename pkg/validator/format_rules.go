package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates that a string is a bare email address (local@domain.tld).
// Display-name forms such as "Jane <jane@example.com>" are rejected; reduce them
// with sanitizer.EmailAddress first.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Name != "" || addr.Address != value {
				return false
			}

			localPart, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || localPart == "" || strings.Contains(domain, "@") {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
