package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lower-cases s with Unicode-aware, language-neutral case mapping.
func ToLower(s string) string {
	// A Caser keeps state between calls, so one is built per call.
	return cases.Lower(language.Und).String(s)
}
