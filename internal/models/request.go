package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingFieldError reports a required JSON field that is absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// NullFieldError reports an optional JSON field sent as an explicit null.
type NullFieldError struct {
	Field string
}

func (e *NullFieldError) Error() string {
	return fmt.Sprintf("%s must not be null", e.Field)
}

// RequireFields checks that every name is present in raw and not null.
// Empty strings count as present.
func RequireFields(raw map[string]json.RawMessage, names ...string) error {
	for _, name := range names {
		v, ok := raw[name]
		if !ok || IsNull(v) {
			return &MissingFieldError{Field: name}
		}
	}
	return nil
}

// RejectNull fails when any of names is present in raw with a null value.
func RejectNull(raw map[string]json.RawMessage, names ...string) error {
	for _, name := range names {
		if v, ok := raw[name]; ok && IsNull(v) {
			return &NullFieldError{Field: name}
		}
	}
	return nil
}

// IsNull reports whether v is the JSON literal null.
func IsNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
