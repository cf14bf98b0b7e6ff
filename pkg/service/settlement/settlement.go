/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination settlement_mocks_test.go -self_package mocks -package settlement_test -source=settlement.go -mock_names subscriber=MockSubscriber,settler=MockSettler,eventPublisher=MockEventPublisher

package settlement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/event/spi"
	"github.com/ixoworld/elysian/pkg/lifecycle"
	"github.com/ixoworld/elysian/pkg/observability/metrics"
	"github.com/ixoworld/elysian/pkg/observability/metrics/noop"
	"github.com/ixoworld/elysian/pkg/txlog"
)

var logger = log.New("settlement")

const (
	// EthMsgType is the bridge notification type. It bypasses the transaction log.
	EthMsgType = "eth"

	defaultInterval = 2 * time.Second
	defaultTimeout  = 30 * time.Second
)

// Outcome is the result of processing one message.
type Outcome int

// Message outcomes.
const (
	Dropped Outcome = iota
	Settled
	Rejected
	AlreadySettled
	Bridged
)

func (o Outcome) String() string {
	switch o {
	case Settled:
		return "settled"
	case Rejected:
		return "rejected"
	case AlreadySettled:
		return "already-settled"
	case Bridged:
		return "bridged"
	default:
		return "dropped"
	}
}

// Handler finalizes domain state once a transaction is confirmed.
type Handler func(ctx context.Context, msg *Message) error

type subscriber interface {
	Poll(ctx context.Context) ([]byte, error)
}

type settler interface {
	Settle(ctx context.Context, hash, blockHash string, blockHeight int64) error
}

type eventPublisher interface {
	PublishSettlement(ctx context.Context, eventType spi.EventType, txHash string, outcome interface{}) error
}

// Config holds the reconciliation loop settings.
type Config struct {
	Queue subscriber
	Log   settler
	// Handlers maps every published msgType to its completion handler.
	Handlers map[string]Handler
	// Routes lists every msgType the commit path publishes. Each must have a handler.
	Routes     []string
	EthHandler Handler
	Events     eventPublisher
	Metrics    metrics.Metrics
	Interval   time.Duration
	Timeout    time.Duration
}

// Loop drains one inbound message per tick and reconciles it.
type Loop struct {
	*lifecycle.Lifecycle

	queue      subscriber
	log        settler
	handlers   map[string]Handler
	ethHandler Handler
	events     eventPublisher
	metrics    metrics.Metrics
	interval   time.Duration
	timeout    time.Duration

	done chan struct{}
	wg   sync.WaitGroup
}

// New returns a new reconciliation loop. An error is returned if a route has no handler.
func New(cfg *Config) (*Loop, error) {
	if err := checkRoutes(cfg.Routes, cfg.Handlers); err != nil {
		return nil, err
	}

	l := &Loop{
		queue:      cfg.Queue,
		log:        cfg.Log,
		handlers:   cfg.Handlers,
		ethHandler: cfg.EthHandler,
		events:     cfg.Events,
		metrics:    cfg.Metrics,
		interval:   cfg.Interval,
		timeout:    cfg.Timeout,
		done:       make(chan struct{}),
	}

	if l.metrics == nil {
		l.metrics = noop.GetMetrics()
	}

	if l.interval <= 0 {
		l.interval = defaultInterval
	}

	if l.timeout <= 0 {
		l.timeout = defaultTimeout
	}

	l.Lifecycle = lifecycle.New("settlement",
		lifecycle.WithStart(l.start),
		lifecycle.WithStop(l.stop),
	)

	return l, nil
}

func checkRoutes(routes []string, handlers map[string]Handler) error {
	var missing []string

	for _, route := range routes {
		if handlers[route] == nil {
			missing = append(missing, route)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("no settlement handler for %v", missing)
	}

	return nil
}

func (l *Loop) start() {
	l.wg.Add(1)

	go l.run()
}

func (l *Loop) stop() {
	close(l.done)

	l.wg.Wait()
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	logger.Info("settlement loop started", log.WithDuration(l.interval))

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
			l.Tick(ctx)
			cancel()
		case <-l.done:
			logger.Info("settlement loop stopped")

			return
		}
	}
}

// Tick dequeues at most one message and processes it. An empty queue is a no-op.
func (l *Loop) Tick(ctx context.Context) {
	raw, err := l.queue.Poll(ctx)
	if err != nil {
		logger.Warn("poll inbound queue", log.WithError(err))

		return
	}

	if raw == nil {
		return
	}

	l.Process(ctx, raw)
}

// Process reconciles a single raw response message.
func (l *Loop) Process(ctx context.Context, raw []byte) Outcome {
	msg, err := ParseMessage(raw)
	if err != nil {
		logger.Error("drop malformed response message", log.WithError(err))

		return Dropped
	}

	start := time.Now()
	defer func() { l.metrics.SettlementTime(msg.MsgType, time.Since(start)) }()

	if msg.MsgType == EthMsgType {
		return l.bridge(ctx, msg)
	}

	if code := msg.ErrorCode(); code >= 1 {
		logger.Warn("blockchain failed the transaction", logfields.WithTxHash(msg.TxHash),
			logfields.WithMsgType(msg.MsgType), logfields.WithErrorCode(code))

		l.metrics.TransactionRejected(msg.MsgType)
		l.publish(ctx, spi.TransactionRejected, msg)

		return Rejected
	}

	handler, ok := l.handlers[msg.MsgType]
	if !ok {
		logger.Error("no settlement handler for message type", logfields.WithMsgType(msg.MsgType),
			logfields.WithTxHash(msg.TxHash))

		return Dropped
	}

	err = l.log.Settle(ctx, msg.TxHash, msg.BlockHash(), msg.BlockHeight())

	switch {
	case errors.Is(err, txlog.ErrAlreadySettled):
		logger.Info("transaction already settled", logfields.WithTxHash(msg.TxHash),
			logfields.WithMsgType(msg.MsgType))

		return AlreadySettled
	case err != nil:
		// The message is consumed either way, so the handler still runs. A replay of this message settles
		// the record and runs the handler again; handlers must only set values.
		logger.Error("transaction log failed to update", logfields.WithTxHash(msg.TxHash), log.WithError(err))
	default:
		logger.Debug("transaction log updated with block information", logfields.WithTxHash(msg.TxHash),
			logfields.WithBlockHash(msg.BlockHash()), logfields.WithBlockHeight(msg.BlockHeight()))
	}

	if err = handler(ctx, msg); err != nil {
		logger.Error("settlement handler failed", logfields.WithTxHash(msg.TxHash),
			logfields.WithMsgType(msg.MsgType), log.WithError(err))
	}

	l.metrics.TransactionSettled(msg.MsgType)
	l.publish(ctx, spi.TransactionSettled, msg)

	return Settled
}

func (l *Loop) bridge(ctx context.Context, msg *Message) Outcome {
	if l.ethHandler == nil {
		logger.Error("no handler for bridge notification", logfields.WithTxHash(msg.TxHash))

		return Dropped
	}

	if err := l.ethHandler(ctx, msg); err != nil {
		logger.Error("bridge notification handler failed", logfields.WithTxHash(msg.TxHash), log.WithError(err))
	}

	return Bridged
}

func (l *Loop) publish(ctx context.Context, eventType spi.EventType, msg *Message) {
	if l.events == nil {
		return
	}

	outcome := map[string]interface{}{
		"msgType": msg.MsgType,
		"data":    msg.Data.Value(),
	}

	if err := l.events.PublishSettlement(ctx, eventType, msg.TxHash, outcome); err != nil {
		logger.Warn("publish settlement event", logfields.WithTxHash(msg.TxHash), log.WithError(err))
	}
}
