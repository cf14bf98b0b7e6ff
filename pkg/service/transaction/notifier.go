/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"context"
	"sync"
)

// Committed is the post-commit notification payload.
type Committed struct {
	ProjectDID string
	TxHash     string
	Capability string
	// Data is the merged domain payload that was written.
	Data map[string]interface{}
}

// Observer is notified after every successful commit.
type Observer interface {
	OnCommit(ctx context.Context, c *Committed)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, c *Committed)

// OnCommit calls f.
func (f ObserverFunc) OnCommit(ctx context.Context, c *Committed) {
	f(ctx, c)
}

// Notifier holds the registered commit observers.
type Notifier struct {
	mutex     sync.RWMutex
	observers []Observer
}

// NewNotifier returns a notifier with the given observers registered.
func NewNotifier(observers ...Observer) *Notifier {
	return &Notifier{observers: observers}
}

// Register adds an observer.
func (n *Notifier) Register(o Observer) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.observers = append(n.observers, o)
}

// Notify invokes every observer in registration order.
func (n *Notifier) Notify(ctx context.Context, c *Committed) {
	n.mutex.RLock()
	observers := make([]Observer, len(n.observers))
	copy(observers, n.observers)
	n.mutex.RUnlock()

	for _, o := range observers {
		o.OnCommit(ctx, c)
	}
}
