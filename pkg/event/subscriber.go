/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/event/spi"
	"github.com/ixoworld/elysian/pkg/lifecycle"
)

type eventHandler func(event *spi.Event) error

type eventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *spi.Event, error)
}

// Subscriber implements an event subscriber.
type Subscriber struct {
	*lifecycle.Lifecycle

	handler   eventHandler
	eventChan <-chan *spi.Event
	done      chan struct{}
}

// NewEventSubscriber returns a new subscriber.
func NewEventSubscriber(sub eventSubscriber, topic string, handler eventHandler) (*Subscriber, error) {
	h := &Subscriber{
		handler: handler,
		done:    make(chan struct{}),
	}

	h.Lifecycle = lifecycle.New("event-subscriber",
		lifecycle.WithStart(h.start),
	)

	logger.Debug("subscribing to topic", log.WithTopic(topic))

	ch, err := sub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	h.eventChan = ch

	return h, nil
}

// Done is closed once the event channel has been closed and drained.
func (h *Subscriber) Done() <-chan struct{} {
	return h.done
}

func (h *Subscriber) start() {
	go h.listen()
}

func (h *Subscriber) listen() {
	defer close(h.done)

	logger.Debug("starting event listener...")

	for e := range h.eventChan {
		h.handleEvent(e)
	}

	logger.Info("event channel closed")
}

func (h *Subscriber) handleEvent(e *spi.Event) {
	logger.Debug("handling subscriber event", log.WithID(e.ID), logfields.WithTxHash(e.TransactionID))

	if err := h.handler(e); err != nil {
		logger.Error("failed to handle event", log.WithID(e.ID), log.WithError(err))
	}
}
