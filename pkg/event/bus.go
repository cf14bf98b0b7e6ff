/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"sync"

	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/event/spi"
	"github.com/ixoworld/elysian/pkg/lifecycle"
)

var logger = log.New("event-bus")

const (
	defaultBufferSize = 250
)

// Bus implements a publisher/subscriber using Go channels. This implementation
// works only on a single node, i.e. handlers are not distributed.
type Bus struct {
	*lifecycle.Lifecycle

	subscribers map[string][]chan *spi.Event
	mutex       sync.RWMutex

	publishChan chan *entry
	doneChan    chan struct{}
}

type entry struct {
	topic    string
	messages []*spi.Event
}

// NewEventBus returns in-memory event bus.
func NewEventBus() *Bus {
	m := &Bus{
		subscribers: make(map[string][]chan *spi.Event),
		publishChan: make(chan *entry, defaultBufferSize),
		doneChan:    make(chan struct{}),
	}

	m.Lifecycle = lifecycle.New("event-bus", lifecycle.WithStop(m.stop))

	go m.processMessages()

	// start the service immediately
	m.Start()

	return m
}

// Close closes all resources.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

func (b *Bus) stop() {
	logger.Info("stopping publisher/subscriber...")

	b.doneChan <- struct{}{}

	logger.Debug("... waiting for publisher to stop...")

	<-b.doneChan

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, msgChans := range b.subscribers {
		for _, msgChan := range msgChans {
			close(msgChan)
		}
	}

	b.subscribers = nil

	logger.Info("... publisher/subscriber stopped.")
}

// Subscribe subscribes to a topic and returns the Go channel over which messages
// are sent. The returned channel will be closed when Close() is called on this struct.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	if b.State() != lifecycle.StateStarted {
		return nil, lifecycle.ErrNotStarted
	}

	logger.Debug("subscribing to topic", log.WithTopic(topic))

	b.mutex.Lock()
	defer b.mutex.Unlock()

	msgChan := make(chan *spi.Event, defaultBufferSize)

	b.subscribers[topic] = append(b.subscribers[topic], msgChan)

	return msgChan, nil
}

// Publish hands the messages to the dispatcher and returns. It blocks only when the
// publish buffer is full.
func (b *Bus) Publish(_ context.Context, topic string, messages ...*spi.Event) error {
	if b.State() != lifecycle.StateStarted {
		return lifecycle.ErrNotStarted
	}

	b.publishChan <- &entry{
		topic:    topic,
		messages: messages,
	}

	return nil
}

func (b *Bus) processMessages() {
	for {
		select {
		case entry := <-b.publishChan:
			b.publish(entry)

		case <-b.doneChan:
			b.doneChan <- struct{}{}

			logger.Debug("... publisher has stopped")

			return
		}
	}
}

func (b *Bus) publish(entry *entry) {
	b.mutex.RLock()
	subscribers := b.subscribers[entry.topic]
	b.mutex.RUnlock()

	if len(subscribers) == 0 {
		logger.Debug("no subscribers for topic", log.WithTopic(entry.topic))

		return
	}

	for _, subscriber := range subscribers {
		for _, m := range entry.messages {
			msg := m.Copy()

			logger.Debug("publishing message", log.WithID(msg.ID), log.WithTopic(entry.topic))

			subscriber <- msg
		}
	}
}
