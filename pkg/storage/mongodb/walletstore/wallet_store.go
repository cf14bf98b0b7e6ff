/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ixoworld/elysian/pkg/storage/mongodb"
	"github.com/ixoworld/elysian/pkg/wallet"
)

const (
	collectionName = "wallets"
	didKey         = "did"
)

// Store persists project wallets.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	ctxWithTimeout, cancel := mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := mongoClient.Database().Collection(collectionName).Indexes().CreateOne(ctxWithTimeout,
		mongo.IndexModel{
			Keys:    bson.D{{Key: didKey, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	if err != nil {
		return nil, fmt.Errorf("create wallets index: %w", err)
	}

	return &Store{mongoClient: mongoClient}, nil
}

// Create stores a project wallet.
func (s *Store) Create(ctx context.Context, w *wallet.Wallet) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	if _, err := s.mongoClient.Database().Collection(collectionName).InsertOne(ctxWithTimeout, w); err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}

	return nil
}

// Find returns the wallet of a project DID.
func (s *Store) Find(ctx context.Context, id string) (*wallet.Wallet, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	w := &wallet.Wallet{}

	err := s.mongoClient.Database().Collection(collectionName).FindOne(ctxWithTimeout, bson.M{didKey: id}).Decode(w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, wallet.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find wallet: %w", err)
	}

	return w, nil
}
