/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package domainstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ixoworld/elysian/pkg/service/project"
	"github.com/ixoworld/elysian/pkg/storage/mongodb"
	"github.com/ixoworld/elysian/pkg/storage/mongodb/internal"
)

const (
	idKey         = "_id"
	projectDIDKey = "projectDid"
)

// Store persists schemaless domain documents in a single collection. Keys are escaped for BSON on the way in
// and restored on the way out.
type Store struct {
	mongoClient *mongodb.Client
	collection  string
}

// New creates a Store for collection.
func New(mongoClient *mongodb.Client, collection string) *Store {
	return &Store{
		mongoClient: mongoClient,
		collection:  collection,
	}
}

func (s *Store) coll() *mongo.Collection {
	return s.mongoClient.Database().Collection(s.collection)
}

// Create inserts obj scoped to projectDID and returns it with the generated _id.
func (s *Store) Create(ctx context.Context, projectDID string,
	obj map[string]interface{}) (map[string]interface{}, error) {
	doc, err := internal.PrepareDataForBSONStorage(obj)
	if err != nil {
		return nil, fmt.Errorf("prepare %s document: %w", s.collection, err)
	}

	doc[projectDIDKey] = projectDID

	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	result, err := s.coll().InsertOne(ctxWithTimeout, doc)
	if err != nil {
		return nil, fmt.Errorf("insert %s document: %w", s.collection, err)
	}

	created := make(map[string]interface{}, len(obj)+2)

	for k, v := range obj {
		created[k] = v
	}

	created[projectDIDKey] = projectDID
	created[idKey] = normalize(result.InsertedID)

	return created, nil
}

// FindOne returns the first document matching filter.
func (s *Store) FindOne(ctx context.Context, filter map[string]interface{}) (map[string]interface{}, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	var doc bson.M

	err := s.coll().FindOne(ctxWithTimeout, bson.M(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, project.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find %s document: %w", s.collection, err)
	}

	return restore(doc), nil
}

// Find returns all documents matching filter in insertion order.
func (s *Store) Find(ctx context.Context, filter map[string]interface{}) ([]map[string]interface{}, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	cursor, err := s.coll().Find(ctxWithTimeout, bson.M(filter), options.Find().SetSort(bson.D{{Key: idKey, Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s documents: %w", s.collection, err)
	}

	defer func() {
		_ = cursor.Close(ctxWithTimeout) //nolint:errcheck
	}()

	var docs []bson.M

	if err = cursor.All(ctxWithTimeout, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", s.collection, err)
	}

	result := make([]map[string]interface{}, 0, len(docs))

	for _, doc := range docs {
		result = append(result, restore(doc))
	}

	return result, nil
}

// UpdateOne sets fields on the first document matching filter.
func (s *Store) UpdateOne(ctx context.Context, filter, set map[string]interface{}) error {
	update, err := internal.PrepareDataForBSONStorage(set)
	if err != nil {
		return fmt.Errorf("prepare %s update: %w", s.collection, err)
	}

	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	result, err := s.coll().UpdateOne(ctxWithTimeout, bson.M(filter), bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("update %s document: %w", s.collection, err)
	}

	if result.MatchedCount == 0 {
		return project.ErrDataNotFound
	}

	return nil
}

// Exists reports whether any document matches filter.
func (s *Store) Exists(ctx context.Context, filter map[string]interface{}) (bool, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	count, err := s.coll().CountDocuments(ctxWithTimeout, bson.M(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s documents: %w", s.collection, err)
	}

	return count > 0, nil
}

func restore(doc bson.M) map[string]interface{} {
	normalized, _ := normalize(doc).(map[string]interface{}) //nolint:errcheck

	return internal.RestoreDataFromBSONStorage(normalized)
}

// normalize converts driver types into plain JSON-friendly values.
func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return normalizeMap(v)
	case map[string]interface{}:
		return normalizeMap(v)
	case bson.D:
		m := make(map[string]interface{}, len(v))

		for _, e := range v {
			m[e.Key] = normalize(e.Value)
		}

		return m
	case bson.A:
		return normalizeArray(v)
	case []interface{}:
		return normalizeArray(v)
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	default:
		return value
	}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))

	for k, v := range m {
		out[k] = normalize(v)
	}

	return out
}

func normalizeArray(a []interface{}) []interface{} {
	out := make([]interface{}, len(a))

	for i, v := range a {
		out[i] = normalize(v)
	}

	return out
}
