package preset

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thangdevalone/meeting-layout-grid/pkg/cache"
)

// DefaultCollection is the mongo collection presets live in.
const DefaultCollection = "presets"

// MongoStore persists presets in a MongoDB collection keyed by name, the
// backend for multi-replica serve deployments. Writes are upserts; transient
// network failures are retried with backoff.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}, nil
}

// Get retrieves a preset by name.
func (s *MongoStore) Get(ctx context.Context, name string) (*Preset, error) {
	var p Preset
	err := cache.RetryWithBackoff(ctx, func() error {
		err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&p)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		if err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Put creates or replaces a preset by upserting on its name.
func (s *MongoStore) Put(ctx context.Context, p *Preset) error {
	if p == nil || p.Name == "" {
		return ErrInvalidName
	}

	created := p.CreatedAt
	if existing, err := s.Get(ctx, p.Name); err == nil {
		created = existing.CreatedAt
	}
	stamp(p, created)

	return cache.RetryWithBackoff(ctx, func() error {
		_, err := s.coll.ReplaceOne(ctx,
			bson.M{"_id": p.Name}, p, options.Replace().SetUpsert(true))
		if err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
}

// List returns all presets sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]Preset, error) {
	cursor, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	var out []Preset
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return out, nil
}

// Delete removes a preset by name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
