package db

import (
	"context"
	"time"

	"github.com/ukydev/study-air/internal/models"
)

// Values that mark documents synthesized without a database.
const (
	LocalID         = "local"
	DegradedWarning = "store-unavailable"
)

// InertStore stands in for the database when no driver could be set up.
// Nothing is persisted.
type InertStore struct {
	now func() time.Time
}

func NewInertStore() *InertStore {
	return &InertStore{now: time.Now}
}

// Create echoes data back as a placeholder document.
func (s *InertStore) Create(_ context.Context, _ string, data models.Document) (models.Document, error) {
	ts := models.FormatTimestamp(s.now())
	doc := data.Clone()
	doc[models.FieldID] = LocalID
	doc[models.FieldCreatedAt] = ts
	doc[models.FieldUpdatedAt] = ts
	doc[models.FieldWarning] = DegradedWarning
	return doc, nil
}

// List always returns an empty result.
func (s *InertStore) List(context.Context, string, models.Document, int) ([]models.Document, error) {
	return []models.Document{}, nil
}

func (s *InertStore) Mode() string { return ModeDegraded }

func (s *InertStore) Close(context.Context) error { return nil }
