package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/study-air/internal/config"
	"github.com/ukydev/study-air/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNilCollection is returned when a collection handle could not be resolved.
var ErrNilCollection = errors.New("mongo collection is nil")

// Open builds the process-wide document store. It returns an inert store when
// the store is disabled or the MongoDB client cannot be constructed. A failed
// ping is only logged: the client stays usable and operations report their own
// errors once the server is reachable or not.
func Open(ctx context.Context, cfg config.Config) Store {
	if cfg.StoreDisabled {
		log.Warn("Document store disabled by configuration; persistence features will be no-ops")
		return NewInertStore()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.WithError(err).Warn("MongoDB driver unavailable; persistence features will be no-ops")
		return NewInertStore()
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.StorePingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.WithError(err).Warn("MongoDB ping failed")
	} else {
		log.WithField("database", cfg.DatabaseName).Info("Connected to MongoDB")
	}

	return NewMongoStore(client, cfg.DatabaseName)
}

// MongoStore persists documents in a MongoDB database.
type MongoStore struct {
	client     *mongo.Client
	database   *mongo.Database
	collection func(name string) DocumentCollection
	now        func() time.Time
}

// NewMongoStore wraps an already constructed client.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		client:   client,
		database: db,
		collection: func(name string) DocumentCollection {
			return db.Collection(name)
		},
		now: time.Now,
	}
}

// Create inserts data with fresh timestamps, then reads the stored document
// back by its assigned id.
func (s *MongoStore) Create(ctx context.Context, collection string, data models.Document) (models.Document, error) {
	coll := s.collection(collection)
	if coll == nil {
		return nil, ErrNilCollection
	}

	now := s.now().UTC()
	doc := data.Clone()
	doc[models.FieldCreatedAt] = now
	doc[models.FieldUpdatedAt] = now

	res, err := coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	var stored bson.M
	err = coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Document{}, nil
		}
		return nil, fmt.Errorf("read back from %s: %w", collection, err)
	}
	return publicDocument(stored), nil
}

// List runs an unsorted find capped at limit.
func (s *MongoStore) List(ctx context.Context, collection string, filter models.Document, limit int) ([]models.Document, error) {
	coll := s.collection(collection)
	if coll == nil {
		return nil, ErrNilCollection
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if filter == nil {
		filter = models.Document{}
	}

	cursor, err := coll.Find(ctx, bson.M(filter), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("read cursor for %s: %w", collection, err)
	}

	items := make([]models.Document, 0, len(raw))
	for _, m := range raw {
		items = append(items, publicDocument(m))
	}
	return items, nil
}

func (s *MongoStore) Mode() string { return ModeLive }

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// publicDocument renames _id to a string id and renders dates as strings.
func publicDocument(m bson.M) models.Document {
	out := make(models.Document, len(m))
	for k, v := range m {
		if k == "_id" {
			continue
		}
		out[k] = publicValue(v)
	}
	if id, ok := m["_id"]; ok {
		out[models.FieldID] = idString(id)
	}
	return out
}

func publicValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.DateTime:
		return models.FormatTimestamp(val.Time())
	case time.Time:
		return models.FormatTimestamp(val)
	case primitive.ObjectID:
		return val.Hex()
	case primitive.M:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = publicValue(inner)
		}
		return out
	case primitive.D:
		return publicValue(val.Map())
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = publicValue(inner)
		}
		return out
	default:
		return v
	}
}

func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
