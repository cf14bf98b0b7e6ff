/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package templatecachestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/ixoworld/elysian/pkg/storage/redis"
	"github.com/ixoworld/elysian/pkg/template"
)

const keyPrefix = "elysian:template:"

// Store is the fast cache in front of the template registry.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates Store. A zero ttl keeps entries until evicted.
func New(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns the cached template for key. template.ErrCacheMiss is returned on a miss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := s.redisClient.API().Get(ctxWithTimeout, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, template.ErrCacheMiss
		}

		return nil, fmt.Errorf("get template %s: %w", key, err)
	}

	return b, nil
}

// Set caches a template under key with the store TTL.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	if err := s.redisClient.API().Set(ctxWithTimeout, keyPrefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("set template %s: %w", key, err)
	}

	return nil
}
