package db

import (
	"context"

	"github.com/ukydev/study-air/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultListLimit caps List when the caller passes no positive limit.
const DefaultListLimit = 50

// Store is the document store used by the HTTP handlers. Implementations are
// selected once at startup by Open.
type Store interface {
	// Create persists data in collection and returns the stored document with
	// its public "id".
	Create(ctx context.Context, collection string, data models.Document) (models.Document, error)
	// List returns up to limit documents of collection matching filter, in the
	// store's natural order.
	List(ctx context.Context, collection string, filter models.Document, limit int) ([]models.Document, error)
	// Mode reports ModeLive or ModeDegraded.
	Mode() string
	Close(ctx context.Context) error
}

// Store modes.
const (
	ModeLive     = "live"
	ModeDegraded = "degraded"
)

// DocumentCollection is the subset of *mongo.Collection the store relies on.
type DocumentCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}
