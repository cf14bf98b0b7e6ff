/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package msgqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/storage/redis"
)

var logger = log.New("redis-queue")

const (
	// DefaultOutboundKey is the list the blockchain bridge consumes.
	DefaultOutboundKey = "elysian:outbound"
	// DefaultInboundKey is the list the bridge writes responses to.
	DefaultInboundKey = "elysian:inbound"
)

// Queue is a pair of Redis lists. Publish pushes to the head of the outbound list and Poll pops from the tail
// of the inbound list, so both sides see FIFO order.
type Queue struct {
	redisClient *redis.Client
	outboundKey string
	inboundKey  string
}

// Opt configures Queue.
type Opt func(q *Queue)

// WithOutboundKey overrides DefaultOutboundKey.
func WithOutboundKey(key string) Opt {
	return func(q *Queue) {
		q.outboundKey = key
	}
}

// WithInboundKey overrides DefaultInboundKey.
func WithInboundKey(key string) Opt {
	return func(q *Queue) {
		q.inboundKey = key
	}
}

// New creates Queue.
func New(redisClient *redis.Client, opts ...Opt) *Queue {
	q := &Queue{
		redisClient: redisClient,
		outboundKey: DefaultOutboundKey,
		inboundKey:  DefaultInboundKey,
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Publish pushes msg onto the outbound list as JSON.
func (q *Queue) Publish(ctx context.Context, msg *queue.OutboundMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctxWithTimeout, cancel := q.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	if err = q.redisClient.API().LPush(ctxWithTimeout, q.outboundKey, b).Err(); err != nil {
		return fmt.Errorf("%w: lpush %s: %v", queue.ErrUnavailable, q.outboundKey, err) //nolint:errorlint
	}

	logger.Debug("message published", logfields.WithMsgType(msg.MsgType), logfields.WithQueue(q.outboundKey))

	return nil
}

// Ping returns queue.ErrUnavailable if Redis cannot be reached.
func (q *Queue) Ping(ctx context.Context) error {
	if err := q.redisClient.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", queue.ErrUnavailable, err) //nolint:errorlint
	}

	return nil
}

// Poll pops the oldest inbound message. It returns nil when the list is empty. A popped message is
// removed for good, so delivery is at most once.
func (q *Queue) Poll(ctx context.Context) ([]byte, error) {
	ctxWithTimeout, cancel := q.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := q.redisClient.API().RPop(ctxWithTimeout, q.inboundKey).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: rpop %s: %v", queue.ErrUnavailable, q.inboundKey, err) //nolint:errorlint
	}

	return b, nil
}
