package models

import "time"

// Document is a schema-less store record as handed to and returned by the
// document store.
type Document map[string]interface{}

// Common document field names.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldWarning   = "_warning"
)

// Collection names.
const (
	CollectionAchievement = "achievement"
	CollectionSession     = "session"
)

// Clone returns a shallow copy of d. A nil document clones to an empty one.
func (d Document) Clone() Document {
	out := make(Document, len(d)+3)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// FormatTimestamp renders t the way every document timestamp leaves the store.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
