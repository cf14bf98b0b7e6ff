/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/queue"
)

var logger = log.New("mem-queue")

// Queue is an in-process queue pair for development and tests. Published messages are kept in the outbound
// list; Deliver places responses on the inbound list.
type Queue struct {
	mutex    sync.Mutex
	outbound [][]byte
	inbound  [][]byte
	closed   bool
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Publish appends msg to the outbound list.
func (q *Queue) Publish(ctx context.Context, msg *queue.OutboundMessage) error {
	if err := q.Ping(ctx); err != nil {
		return err
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	q.mutex.Lock()
	q.outbound = append(q.outbound, b)
	q.mutex.Unlock()

	logger.Debug("message published", logfields.WithMsgType(msg.MsgType))

	return nil
}

// Ping returns queue.ErrUnavailable once the queue is closed.
func (q *Queue) Ping(context.Context) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.closed {
		return queue.ErrUnavailable
	}

	return nil
}

// Poll removes the oldest inbound message.
func (q *Queue) Poll(context.Context) ([]byte, error) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.closed {
		return nil, queue.ErrUnavailable
	}

	if len(q.inbound) == 0 {
		return nil, nil
	}

	msg := q.inbound[0]
	q.inbound = q.inbound[1:]

	return msg, nil
}

// Deliver places a raw response message on the inbound list.
func (q *Queue) Deliver(msg []byte) {
	q.mutex.Lock()
	q.inbound = append(q.inbound, msg)
	q.mutex.Unlock()
}

// Published returns the outbound messages published so far.
func (q *Queue) Published() []*queue.OutboundMessage {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	msgs := make([]*queue.OutboundMessage, 0, len(q.outbound))

	for _, b := range q.outbound {
		msg := &queue.OutboundMessage{}
		if err := json.Unmarshal(b, msg); err == nil {
			msgs = append(msgs, msg)
		}
	}

	return msgs
}

// Close makes the queue unavailable.
func (q *Queue) Close() {
	q.mutex.Lock()
	q.closed = true
	q.mutex.Unlock()
}
