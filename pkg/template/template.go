/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination template_mocks_test.go -self_package mocks -package template_test -source=template.go -mock_names cacheStore=MockCacheStore,Registry=MockRegistry

package template

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
)

var logger = log.New("template-cache")

// ErrCacheMiss is returned by a cache store when the key is not present.
var ErrCacheMiss = errors.New("cache miss")

const keySeparator = "|"

// Registry is the source of truth for template schemas.
type Registry interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Schema is a template schema. Raw holds the exact bytes served by the registry.
type Schema struct {
	Key      string
	Raw      []byte
	Document map[string]interface{}
}

// Cache resolves template schemas through a fast cache backed by a registry.
type Cache struct {
	cache    cacheStore
	registry Registry
}

// New returns a new template cache.
func New(cache cacheStore, registry Registry) *Cache {
	return &Cache{
		cache:    cache,
		registry: registry,
	}
}

// Key returns the cache key of a template.
func Key(templateType, name string) string {
	return templateType + keySeparator + name
}

// Path returns the registry path of a template.
func Path(templateType, name string) string {
	return fmt.Sprintf("/%s/%s.json", templateType, name)
}

// GetSchema returns the schema for the given template type and name. A cache failure is treated as a miss.
func (c *Cache) GetSchema(ctx context.Context, templateType, name string) (*Schema, error) {
	key := Key(templateType, name)

	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		schema, parseErr := parse(key, raw)
		if parseErr == nil {
			logger.Debug("template cache hit", logfields.WithCacheKey(key))

			return schema, nil
		}

		logger.Warn("discarding unparsable cached template", logfields.WithCacheKey(key), log.WithError(parseErr))
	case errors.Is(err, ErrCacheMiss):
		logger.Debug("template cache miss", logfields.WithCacheKey(key))
	default:
		logger.Warn("template cache unavailable", logfields.WithCacheKey(key), log.WithError(err))
	}

	path := Path(templateType, name)

	raw, err = c.registry.Fetch(ctx, path)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.RegistryUnavailable, resterr.TemplateCacheComponent,
			fmt.Errorf("fetch template %s: %w", path, err))
	}

	schema, err := parse(key, raw)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.RegistryUnavailable, resterr.TemplateCacheComponent,
			fmt.Errorf("parse template %s: %w", path, err))
	}

	if err = c.cache.Set(ctx, key, raw); err != nil {
		logger.Warn("failed to populate template cache", logfields.WithCacheKey(key), log.WithError(err))
	}

	return schema, nil
}

func parse(key string, raw []byte) (*Schema, error) {
	var doc map[string]interface{}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return &Schema{
		Key:      key,
		Raw:      raw,
		Document: doc,
	}, nil
}
