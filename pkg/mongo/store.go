package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/docschema/schema"
)

// Inserter is the part of *mongo.Collection the store writes through.
type Inserter interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

// Store persists validated records into their collections.
type Store struct {
	collection  func(name string) Inserter
	collections *schema.Collections
}

// NewStore writes records into db. A nil collections resolver uses the
// collections declared by each record.
func NewStore(db *mongo.Database, collections *schema.Collections) *Store {
	return NewStoreWith(func(name string) Inserter {
		return db.Collection(name)
	}, collections)
}

// NewStoreWith builds a store on top of any collection lookup.
func NewStoreWith(collection func(name string) Inserter, collections *schema.Collections) *Store {
	return &Store{collection: collection, collections: collections}
}

// Collection returns the collection rec is written to.
func (s *Store) Collection(rec schema.Record) string {
	return s.collections.For(rec)
}

// Insert writes rec into its collection and returns the new document id.
// ObjectIDs are returned in hex form.
func (s *Store) Insert(ctx context.Context, rec schema.Record) (string, error) {
	name := s.Collection(rec)
	res, err := s.collection(name).InsertOne(ctx, rec)
	if err != nil {
		return "", errors.Join(ErrInsertFailed, fmt.Errorf("collection %q: %w", name, err))
	}

	switch id := res.InsertedID.(type) {
	case bson.ObjectID:
		return id.Hex(), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(id), nil
	}
}
