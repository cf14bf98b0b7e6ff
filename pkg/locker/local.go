/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redsync/redsync/v4"
)

// ErrNotLocked is returned when unlocking a mutex that is not held.
var ErrNotLocked = errors.New("mutex is not locked")

// Lock is a mutex scoped to a key.
type Lock interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
	Unlock() (bool, error)
}

// Local hands out in-process mutexes keyed by name. Entries are dropped once nobody holds or waits on them.
type Local struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

// NewLocal creates an in-process locker.
func NewLocal() *Local {
	return &Local{
		entries: make(map[string]*entry),
	}
}

// NewMutex returns the mutex for key. Options only apply to the Redis locker.
func (l *Local) NewMutex(key string, _ ...redsync.Option) Lock {
	return &localMutex{locker: l, key: key}
}

func (l *Local) acquire(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.entries[key] = e
	}

	e.refs++

	return e
}

func (l *Local) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}

	e.refs--

	if e.refs == 0 {
		delete(l.entries, key)
	}
}

func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

type localMutex struct {
	locker *Local
	key    string

	mu   sync.Mutex
	held *entry
}

// LockContext blocks until the key is free or ctx is done.
func (m *localMutex) LockContext(ctx context.Context) error {
	e := m.locker.acquire(m.key)

	select {
	case e.ch <- struct{}{}:
		m.mu.Lock()
		m.held = e
		m.mu.Unlock()

		return nil
	case <-ctx.Done():
		m.locker.release(m.key)

		return ctx.Err()
	}
}

// UnlockContext unlocks the mutex.
func (m *localMutex) UnlockContext(_ context.Context) (bool, error) {
	return m.Unlock()
}

// Unlock unlocks the mutex.
func (m *localMutex) Unlock() (bool, error) {
	m.mu.Lock()
	e := m.held
	m.held = nil
	m.mu.Unlock()

	if e == nil {
		return false, ErrNotLocked
	}

	<-e.ch

	m.locker.release(m.key)

	return true, nil
}
