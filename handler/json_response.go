package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/docschema/pkg/validator"
)

// JSONResponse is the standard JSON response structure.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status, detail := errorToDetail(err)
	writeJSON(w, status, JSONResponse{Error: detail})
}

// errorToDetail maps an error to a status code and payload. Validation
// failures list their field messages; unknown errors are reported without
// their text.
func errorToDetail(err error) (int, *ErrorDetail) {
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: errs.Error(),
			Details: errs.Details(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return httpErr.Code, &ErrorDetail{
			Code:    httpErr.Key,
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
