package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value through errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Is reports ErrValidationFailed for non-empty error sets, so callers that
// only care about the category do not need errors.As.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && !ve.IsEmpty()
}
