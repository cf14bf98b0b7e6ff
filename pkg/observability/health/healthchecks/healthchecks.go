/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"fmt"

	"github.com/alexliesenfeld/health"
)

// Check names.
const (
	MongoDB = "mongodb"
	Redis   = "redis"
	Queue   = "queue"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Config holds the backends to check. Nil backends are skipped.
type Config struct {
	MongoDB pinger
	Redis   pinger
	Queue   pinger
}

// Get returns a health check per configured backend.
func Get(config *Config) []health.Check {
	var checks []health.Check

	add := func(name string, p pinger) {
		if p == nil {
			return
		}

		checks = append(checks, health.Check{
			Name:               name,
			Check:              ping(name, p),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	add(MongoDB, config.MongoDB)
	add(Redis, config.Redis)
	add(Queue, config.Queue)

	return checks
}

func ping(name string, p pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("failed to ping %s: %w", name, err)
		}

		return nil
	}
}
