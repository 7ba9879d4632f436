package schema

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/dmitrymomot/docschema/pkg/sanitizer"
	"github.com/dmitrymomot/docschema/pkg/validator"
)

// fields reads typed values out of a Raw map and records presence and type
// violations as it goes. For required and optional fields a missing key and an
// explicit null are treated alike; defaulted booleans only accept a missing key.
type fields struct {
	raw  Raw
	errs validator.ValidationErrors
}

func newFields(raw Raw) *fields {
	return &fields{raw: raw}
}

func (f *fields) lookup(name string) (any, bool) {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// requiredString returns ok=false when the value is absent or not a string.
func (f *fields) requiredString(name string) (string, bool) {
	v, present := f.lookup(name)
	s, ok := v.(string)
	f.errs.Check(
		validator.Present(name, present),
		validator.When(present, validator.TypeMatch(name, ok, "string")),
	)
	return s, ok
}

// requiredEmail is requiredString with display-name forms reduced to the bare
// address, so "Jane <jane@example.com>" is stored as "jane@example.com".
func (f *fields) requiredEmail(name string) (string, bool) {
	s, ok := f.requiredString(name)
	if !ok {
		return s, false
	}
	return sanitizer.EmailAddress(s), true
}

func (f *fields) optionalString(name string) *string {
	v, present := f.lookup(name)
	if !present {
		return nil
	}
	s, ok := v.(string)
	f.errs.Check(validator.TypeMatch(name, ok, "string"))
	if !ok {
		return nil
	}
	return &s
}

func (f *fields) requiredNumber(name string) (float64, bool) {
	v, present := f.lookup(name)
	n, ok := toFloat(v)
	f.errs.Check(
		validator.Present(name, present),
		validator.When(present, validator.TypeMatch(name, ok, "number")),
	)
	return n, ok
}

func (f *fields) optionalInt(name string) *int {
	v, present := f.lookup(name)
	if !present {
		return nil
	}
	n, ok := toInt(v)
	f.errs.Check(validator.TypeMatch(name, ok, "integer"))
	if !ok {
		return nil
	}
	return &n
}

// boolOr returns def when the key is absent. An explicit null is a type
// violation, not a request for the default.
func (f *fields) boolOr(name string, def bool) bool {
	v, present := f.raw[name]
	if !present {
		return def
	}
	b, ok := v.(bool)
	f.errs.Check(validator.TypeMatch(name, ok, "boolean"))
	if !ok {
		return def
	}
	return b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// toInt accepts integer kinds and integral floats such as 42.0. Whole numbers
// beyond the int range are clamped to it, so range rules report them instead
// of a type violation.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case uint:
		return clampUint64(uint64(n)), true
	case uint64:
		return clampUint64(n), true
	}
	if i, ok := toInt64(v); ok {
		return clampInt64(i), true
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		// ParseFloat reports ±Inf with ErrRange for well-formed huge values.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return clampInt(f), true
}

func clampInt(f float64) int {
	switch {
	case f <= math.MinInt:
		return math.MinInt
	case f >= math.MaxInt:
		return math.MaxInt
	}
	return int(f)
}

func clampInt64(i int64) int {
	switch {
	case i < math.MinInt:
		return math.MinInt
	case i > math.MaxInt:
		return math.MaxInt
	}
	return int(i)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
