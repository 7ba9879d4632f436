package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single field violation with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents every violation found in one validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Check evaluates the rules and appends the error of every failing one.
func (ve *ValidationErrors) Check(rules ...Rule) {
	for _, rule := range rules {
		if !rule.Check() {
			ve.Add(rule.Error)
		}
	}
}

// Err returns the collected errors as an error, or nil when nothing failed.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Keys returns the translation keys reported for a field, in report order.
func (ve ValidationErrors) Keys(field string) []string {
	var keys []string
	for _, err := range ve {
		if err.Field == field {
			keys = append(keys, err.TranslationKey)
		}
	}
	return keys
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Details groups messages by field, the shape API error payloads use.
func (ve ValidationErrors) Details() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	details := make(map[string][]string, len(ve))
	for _, err := range ve {
		details[err.Field] = append(details[err.Field], err.Message)
	}
	return details
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	errs.Check(rules...)
	return errs.Err()
}

// When guards a rule with a precondition. The rule passes whenever cond is
// false, which keeps constraints off fields that are absent or failed to decode.
func When(cond bool, rule Rule) Rule {
	check := rule.Check
	return Rule{
		Check: func() bool {
			return !cond || check()
		},
		Error: rule.Error,
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
