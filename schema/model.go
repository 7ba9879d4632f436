package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Model describes one record kind.
type Model struct {
	// Name is the record kind, e.g. "User".
	Name string
	// Collection is the declared storage collection. Empty means derive it from Name.
	Collection string
}

// Record is implemented by every validated record type.
type Record interface {
	Model() Model
}

var (
	userModel    = Model{Name: "User", Collection: "user"}
	productModel = Model{Name: "Product", Collection: "product"}
	leadModel    = Model{Name: "Lead", Collection: "lead"}
)

// Models lists the declared record kinds.
func Models() []Model {
	return []Model{userModel, productModel, leadModel}
}

// Validate validates raw input as the record type T.
func Validate[T Record](raw Raw) (T, error) {
	var zero T
	var (
		rec Record
		err error
	)
	switch any(zero).(type) {
	case User:
		rec, err = ValidateUser(raw)
	case Product:
		rec, err = ValidateProduct(raw)
	case Lead:
		rec, err = ValidateLead(raw)
	default:
		return zero, fmt.Errorf("%w: %T", ErrUnknownModel, zero)
	}
	if err != nil {
		return zero, err
	}
	return rec.(T), nil
}

// Raw is decoded input keyed by field name.
type Raw map[string]any

// ToRaw converts a record to its canonical raw form, the same shape a JSON
// request body decodes to.
func ToRaw(rec Record) (Raw, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Join(ErrEncodeRecord, err)
	}
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrEncodeRecord, err)
	}
	return raw, nil
}
