/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes records how long each named check took. It is shared by the interceptor that fills it and
// the result writer that reports it.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

// Get returns the recorded state for the check.
func (r *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.states[name]

	return s, ok
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.states[name]
	if !ok {
		r.states[name] = ResponseTimeState{
			LastResponseTime:    elapsed,
			AverageResponseTime: elapsed,
		}

		return
	}

	r.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (prev.AverageResponseTime + elapsed) / 2, //nolint:gomnd
	}
}

func ResponseTimeInterceptor(times *ResponseTimes) health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			now := time.Now()
			result := next(ctx, name, state)

			times.record(name, time.Since(now))

			return result
		}
	}
}
