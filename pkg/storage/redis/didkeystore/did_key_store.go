/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkeystore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/ixoworld/elysian/pkg/did"
	"github.com/ixoworld/elysian/pkg/storage/redis"
)

const keyPrefix = "elysian:did:"

// Store caches resolved DID documents.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates Store.
func New(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns the cached DID document for id. did.ErrCacheMiss is returned when it is not cached.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := s.redisClient.API().Get(ctxWithTimeout, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, did.ErrCacheMiss
		}

		return nil, fmt.Errorf("get did %s: %w", id, err)
	}

	return b, nil
}

// Set caches doc for id with the store TTL.
func (s *Store) Set(ctx context.Context, id string, doc []byte) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	if err := s.redisClient.API().Set(ctxWithTimeout, keyPrefix+id, doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("set did %s: %w", id, err)
	}

	return nil
}
