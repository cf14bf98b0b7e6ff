/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transactionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ixoworld/elysian/pkg/storage/mongodb"
	"github.com/ixoworld/elysian/pkg/txlog"
)

const (
	collectionName = "transactions"
	hashKey        = "hash"
	blockHashKey   = "blockHash"
	settledAtKey   = "settledAt"
)

// Store persists the transaction log.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	ctxWithTimeout, cancel := mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.collection().Indexes().CreateOne(ctxWithTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: hashKey, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create transactions index: %w", err)
	}

	return s, nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(collectionName)
}

// Create appends a record. txlog.ErrDuplicate is returned if the hash is already logged.
func (s *Store) Create(ctx context.Context, record *txlog.Record) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.collection().InsertOne(ctxWithTimeout, record)
	if mongo.IsDuplicateKeyError(err) {
		return txlog.ErrDuplicate
	}

	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

// UpdateForHash attaches block data to the record, once. A record counts as settled when settledAt is
// set, whatever the block hash.
func (s *Store) UpdateForHash(ctx context.Context, hash, blockHash string, blockHeight int64,
	settledAt time.Time) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	result, err := s.collection().UpdateOne(ctxWithTimeout,
		bson.M{hashKey: hash, settledAtKey: bson.M{"$exists": false}},
		bson.M{"$set": bson.M{
			blockHashKey:  blockHash,
			"blockHeight": blockHeight,
			settledAtKey:  settledAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	if result.MatchedCount > 0 {
		return nil
	}

	count, err := s.collection().CountDocuments(ctxWithTimeout, bson.M{hashKey: hash})
	if err != nil {
		return fmt.Errorf("count transactions: %w", err)
	}

	if count > 0 {
		return txlog.ErrAlreadySettled
	}

	return txlog.ErrDataNotFound
}

// FindByHash returns the record for hash.
func (s *Store) FindByHash(ctx context.Context, hash string) (*txlog.Record, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	record := &txlog.Record{}

	err := s.collection().FindOne(ctxWithTimeout, bson.M{hashKey: hash}).Decode(record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, txlog.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	return record, nil
}
