package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/docschema/schema"
)

// MaxBodySize limits request bodies (1 MiB).
const MaxBodySize = 1 << 20

// decodeRaw reads a JSON object body. Numbers are kept as json.Number so that
// integers are not rounded through float64.
func decodeRaw(w http.ResponseWriter, r *http.Request) (schema.Raw, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		switch {
		case isTooLarge(err):
			return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrRequestEntityTooLarge, MaxBodySize)
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("%w: empty body", ErrBadRequest)
		default:
			return nil, fmt.Errorf("%w: malformed JSON: %v", ErrBadRequest, err)
		}
	}
	// Anything but EOF after the first value, including a stray '}', is rejected.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if isTooLarge(err) {
			return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrRequestEntityTooLarge, MaxBodySize)
		}
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrBadRequest)
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrBadRequest)
	}
	return schema.Raw(obj), nil
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}
