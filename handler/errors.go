package handler

import "net/http"

// HTTPError represents an HTTP error with status code and translation key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key, also used as the error code in responses
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
)
