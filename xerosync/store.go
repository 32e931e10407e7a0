package xerosync

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
)

var errStoreNotReady = errors.New("mongo connection not ready")

// Store is the mirror persistence surface the engine runs against. The real
// implementation sits on MongoDB; tests use an in-memory fake.
type Store interface {
	// ExistingIDs scans the full collection and returns every remote
	// identifier it currently holds.
	ExistingIDs(ctx context.Context, collection string, field string) (map[string]struct{}, error)

	// InsertMany bulk-inserts the batch and returns how many documents went
	// in. A duplicate-identifier outcome wraps ErrConflict; remaining
	// documents are still attempted.
	InsertMany(ctx context.Context, collection string, docs []interface{}) (int, error)
}

// mongoStore resolves the database on every call: the service starts
// listening before mongo is connected, so capturing the handle at
// construction would freeze a nil.
type mongoStore struct{}

func NewMongoStore() Store {
	return &mongoStore{}
}

func (s *mongoStore) ExistingIDs(ctx context.Context, collection string, field string) (map[string]struct{}, error) {
	db := config.GetMongoDB()
	if db == nil {
		return nil, errStoreNotReady
	}
	values, err := db.Collection(collection).Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids, nil
}

func (s *mongoStore) InsertMany(ctx context.Context, collection string, docs []interface{}) (int, error) {
	db := config.GetMongoDB()
	if db == nil {
		return 0, errStoreNotReady
	}
	res, err := db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return inserted, fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return inserted, err
	}
	return inserted, nil
}

// EnsureMirrorIndexes creates the unique index on each mirror collection's
// remote identifier. The index is what makes overlapping duplicate-insert
// attempts a catchable conflict instead of silent divergence.
func EnsureMirrorIndexes(ctx context.Context, db *mongo.Database) error {
	for _, entity := range Entities() {
		_, err := db.Collection(entity.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: entity.IDField, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("create %s index on %s: %w", entity.IDField, entity.Collection, err)
		}
	}
	return nil
}
