/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/event/spi"
	"github.com/ixoworld/elysian/pkg/service/transaction"
)

const source = "/elysian"

type eventPublisher interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

// Publisher builds events from pipeline outcomes and publishes them.
type Publisher struct {
	publisher eventPublisher
}

// NewEventPublisher creates event publisher.
func NewEventPublisher(pub eventPublisher) *Publisher {
	return &Publisher{
		publisher: pub,
	}
}

// Publish publishes raw events to topic.
func (p *Publisher) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	return p.publisher.Publish(ctx, topic, events...)
}

// OnCommit forwards a post-commit notification to the commit topic.
func (p *Publisher) OnCommit(ctx context.Context, c *transaction.Committed) {
	payload, err := json.Marshal(c.Data)
	if err != nil {
		logger.Error("marshal commit payload", log.WithError(err), logfields.WithTxHash(c.TxHash))

		return
	}

	e := spi.NewEventWithPayload(uuid.NewString(), source, spi.TransactionCommitted, payload)
	e.TransactionID = c.TxHash
	e.Subject = c.ProjectDID

	if err = p.publisher.Publish(ctx, spi.CommitEventTopic, e); err != nil {
		logger.Error("publish commit event", log.WithError(err), logfields.WithTxHash(c.TxHash))
	}
}

// PublishSettlement publishes a settled or rejected transaction outcome.
func (p *Publisher) PublishSettlement(ctx context.Context, eventType spi.EventType, txHash string,
	outcome interface{}) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal settlement payload: %w", err)
	}

	e := spi.NewEventWithPayload(uuid.NewString(), source, eventType, payload)
	e.TransactionID = txHash

	return p.publisher.Publish(ctx, spi.SettlementEventTopic, e)
}
