/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redisapi "github.com/redis/go-redis/v9"
)

// Redis hands out mutexes shared by every instance connected to the same Redis.
type Redis struct {
	rs   *redsync.Redsync
	opts []redsync.Option
}

// NewRedis creates a distributed locker. opts apply to every mutex it creates.
func NewRedis(client redisapi.UniversalClient, opts ...redsync.Option) *Redis {
	return &Redis{
		rs:   redsync.New(goredis.NewPool(client)),
		opts: opts,
	}
}

// NewMutex returns the mutex for key.
func (r *Redis) NewMutex(key string, opts ...redsync.Option) Lock {
	all := make([]redsync.Option, 0, len(r.opts)+len(opts))
	all = append(all, r.opts...)
	all = append(all, opts...)

	return r.rs.NewMutex(key, all...)
}
