package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Model records the record kind, e.g. "Lead".
func Model(name string) slog.Attr {
	return slog.String("model", name)
}

// Collection records the storage collection name.
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// RecordID records the id of a stored document under the key "record_id".
func RecordID(id string) slog.Attr {
	return slog.String("record_id", id)
}

// Fields records the names of fields that failed validation.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
