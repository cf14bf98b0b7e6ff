/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package capabilitystore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ixoworld/elysian/pkg/capability"
	"github.com/ixoworld/elysian/pkg/storage/mongodb"
)

const (
	collectionName = "capabilities"
	projectDIDKey  = "projectDid"
)

// Store persists project capability sets.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.mongoClient.Database().Collection(collectionName).Indexes().CreateOne(ctxWithTimeout,
		mongo.IndexModel{
			Keys:    bson.D{{Key: projectDIDKey, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	if err != nil {
		return fmt.Errorf("create capabilities index: %w", err)
	}

	return nil
}

// Find returns the capability set of a project.
func (s *Store) Find(ctx context.Context, projectDID string) (*capability.Capabilities, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &capability.Capabilities{}

	err := s.mongoClient.Database().Collection(collectionName).
		FindOne(ctxWithTimeout, bson.M{projectDIDKey: projectDID}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, capability.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find capabilities: %w", err)
	}

	return doc, nil
}

// Create stores the initial capability set of a project.
func (s *Store) Create(ctx context.Context, capabilities *capability.Capabilities) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	if _, err := s.mongoClient.Database().Collection(collectionName).InsertOne(ctxWithTimeout, capabilities); err != nil {
		return fmt.Errorf("insert capabilities: %w", err)
	}

	return nil
}

// AddSigner allows did to invoke capability within the project.
func (s *Store) AddSigner(ctx context.Context, projectDID, did, capabilityName string) error {
	return s.updateAllow(ctx, projectDID, capabilityName, bson.M{"$addToSet": bson.M{"capabilities.$[c].allow": did}})
}

// RemoveSigner revokes did from capability within the project.
func (s *Store) RemoveSigner(ctx context.Context, projectDID, did, capabilityName string) error {
	return s.updateAllow(ctx, projectDID, capabilityName, bson.M{"$pull": bson.M{"capabilities.$[c].allow": did}})
}

func (s *Store) updateAllow(ctx context.Context, projectDID, capabilityName string, update bson.M) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"c.capability": capabilityName}},
	})

	result, err := s.mongoClient.Database().Collection(collectionName).UpdateOne(ctxWithTimeout,
		bson.M{projectDIDKey: projectDID, "capabilities.capability": capabilityName}, update, opts)
	if err != nil {
		return fmt.Errorf("update capability %s: %w", capabilityName, err)
	}

	if result.MatchedCount == 0 {
		return capability.ErrDataNotFound
	}

	return nil
}
