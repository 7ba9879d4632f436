package schema

import "errors"

var (
	// ErrUnknownModel is returned by Validate for record types without a declaration.
	ErrUnknownModel = errors.New("unknown record model")

	// ErrReadCollections is returned when the collections file cannot be read or parsed.
	ErrReadCollections = errors.New("failed to read collections file")

	// ErrInvalidCollection is returned for empty model or collection names in overrides.
	ErrInvalidCollection = errors.New("invalid collection override")

	// ErrEncodeRecord is returned when a record cannot be converted to its raw form.
	ErrEncodeRecord = errors.New("failed to encode record")
)
