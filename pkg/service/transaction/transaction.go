/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination transaction_mocks_test.go -self_package mocks -package transaction_test -source=transaction.go -mock_names CapabilitySet=MockCapabilitySet,DomainModel=MockDomainModel,admitter=MockAdmitter,txLog=MockTxLog,publisher=MockPublisher

package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/locker"
	"github.com/ixoworld/elysian/pkg/observability/metrics"
	"github.com/ixoworld/elysian/pkg/observability/metrics/noop"
	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/request"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
	"github.com/ixoworld/elysian/pkg/service/admission"
	"github.com/ixoworld/elysian/pkg/txlog"
)

var logger = log.New("transaction")

const (
	defaultAsyncTimeout = 30 * time.Second
	commitLockPrefix    = "elysian:commit:"

	fieldTxHash  = "txHash"
	fieldCreator = "_creator"
	fieldCreated = "_created"
	fieldVersion = "version"
)

// CapabilitySet is implemented by every committing operation.
type CapabilitySet interface {
	// UpdateCapabilities applies the capability bookkeeping that follows the commit.
	UpdateCapabilities(ctx context.Context, req *request.Request, capability string) error
	// BuildOutboundMessage builds the message published for settlement.
	BuildOutboundMessage(ctx context.Context, obj map[string]interface{}, req *request.Request,
		capability string) (*queue.OutboundMessage, error)
}

// DomainModel creates the domain object of a commit.
type DomainModel interface {
	Create(ctx context.Context, projectDID string, obj map[string]interface{}) (map[string]interface{}, error)
}

// DuplicateCheck returns true if the logical record of req already exists or is out of date.
type DuplicateCheck func(ctx context.Context, req *request.Request) (bool, error)

// QueryFunc runs a capability gated read for the validated request.
type QueryFunc func(ctx context.Context, req *request.Request) (interface{}, error)

type admitter interface {
	Admit(ctx context.Context, rawArgs []byte, method, defaultProjectDID string) (*admission.Validated, error)
}

type txLog interface {
	Append(ctx context.Context, req *request.Request, capability string) (*txlog.Record, error)
}

type commitLocker interface {
	NewMutex(key string, opts ...redsync.Option) locker.Lock
}

type publisher interface {
	Publish(ctx context.Context, msg *queue.OutboundMessage) error
	Ping(ctx context.Context) error
}

// Config holds the commit path collaborators.
type Config struct {
	Admission admitter
	Log       txLog
	Queue     publisher
	Notifier  *Notifier
	Metrics   metrics.Metrics
	// Locker, when set, serializes commits per project. Without it concurrent commits of the same logical
	// record may both pass the duplicate check.
	Locker commitLocker
	// Async runs the out-of-band commit steps. Defaults to a new goroutine per step.
	Async        func(f func())
	AsyncTimeout time.Duration
}

// Service is the transaction commit path.
type Service struct {
	admission    admitter
	log          txLog
	queue        publisher
	notifier     *Notifier
	metrics      metrics.Metrics
	locker       commitLocker
	async        func(f func())
	asyncTimeout time.Duration
}

// New returns a new transaction service.
func New(cfg *Config) *Service {
	s := &Service{
		admission:    cfg.Admission,
		log:          cfg.Log,
		queue:        cfg.Queue,
		notifier:     cfg.Notifier,
		metrics:      cfg.Metrics,
		locker:       cfg.Locker,
		async:        cfg.Async,
		asyncTimeout: cfg.AsyncTimeout,
	}

	if s.notifier == nil {
		s.notifier = NewNotifier()
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.async == nil {
		s.async = func(f func()) { go f() }
	}

	if s.asyncTimeout == 0 {
		s.asyncTimeout = defaultAsyncTimeout
	}

	return s
}

// Notifier returns the commit notifier.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

// Process admits rawArgs for method and commits it.
func (s *Service) Process(ctx context.Context, rawArgs []byte, method, defaultProjectDID string,
	set CapabilitySet, model DomainModel, duplicate DuplicateCheck) (map[string]interface{}, error) {
	validated, err := s.admission.Admit(ctx, rawArgs, method, defaultProjectDID)
	if err != nil {
		return nil, err
	}

	return s.Commit(ctx, validated, set, model, duplicate)
}

// Query admits rawArgs for method and returns the result of fn.
func (s *Service) Query(ctx context.Context, rawArgs []byte, method, defaultProjectDID string,
	fn QueryFunc) (interface{}, error) {
	validated, err := s.admission.Admit(ctx, rawArgs, method, defaultProjectDID)
	if err != nil {
		return nil, err
	}

	return fn(ctx, validated.Request)
}

// Commit writes the transaction record, then the domain object. Capability bookkeeping and the outbound
// message run out of band; their failures are logged and never undo the domain write.
func (s *Service) Commit(ctx context.Context, v *admission.Validated, set CapabilitySet, model DomainModel,
	duplicate DuplicateCheck) (map[string]interface{}, error) {
	req := v.Request
	capability := v.Capability.Capability

	start := time.Now()
	defer func() { s.metrics.CommitTime(capability, time.Since(start)) }()

	if err := s.queue.Ping(ctx); err != nil {
		return nil, resterr.NewCustomError(resterr.QueueUnavailable, resterr.QueueComponent,
			fmt.Errorf("mq currently unavailable: %w", err))
	}

	unlock, err := s.lock(ctx, req.ProjectDID)
	if err != nil {
		return nil, err
	}

	defer unlock()

	if duplicate != nil {
		found, err := duplicate(ctx, req)
		if err != nil {
			return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.DomainStoreComponent,
				fmt.Errorf("duplicate check: %w", err))
		}

		if found {
			return nil, resterr.NewCustomError(resterr.Conflict, resterr.CommitComponent,
				fmt.Errorf("record out of date/already exists or state exception"))
		}
	}

	record, err := s.log.Append(ctx, req, capability)
	if errors.Is(err, txlog.ErrDuplicate) {
		return nil, resterr.NewCustomError(resterr.Conflict, resterr.TransactionLogComponent, err)
	}

	if err != nil {
		return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.TransactionLogComponent, err)
	}

	obj := merge(req, record.Hash, duplicate == nil)

	s.async(func() {
		actx, cancel := context.WithTimeout(context.Background(), s.asyncTimeout)
		defer cancel()

		if e := set.UpdateCapabilities(actx, req, capability); e != nil {
			logger.Warn("capability update failed", logfields.WithTxHash(record.Hash),
				logfields.WithCapability(capability), log.WithError(e))
		}
	})

	created, err := model.Create(ctx, req.ProjectDID, obj)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.DomainStoreComponent,
			fmt.Errorf("commit %s: %w", capability, err))
	}

	s.async(func() {
		actx, cancel := context.WithTimeout(context.Background(), s.asyncTimeout)
		defer cancel()

		s.publish(actx, set, obj, req, capability, record.Hash)
	})

	s.notifier.Notify(ctx, &Committed{
		ProjectDID: req.ProjectDID,
		TxHash:     record.Hash,
		Capability: capability,
		Data:       obj,
	})

	logger.Info("transaction committed", logfields.WithTxHash(record.Hash), logfields.WithCapability(capability),
		logfields.WithProjectDID(req.ProjectDID))

	return created, nil
}

func (s *Service) lock(ctx context.Context, projectDID string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	mu := s.locker.NewMutex(commitLockPrefix + projectDID)

	if err := mu.LockContext(ctx); err != nil {
		return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.CommitComponent,
			fmt.Errorf("acquire commit lock: %w", err))
	}

	return func() {
		if _, err := mu.Unlock(); err != nil {
			logger.Warn("release commit lock", logfields.WithProjectDID(projectDID), log.WithError(err))
		}
	}, nil
}

func (s *Service) publish(ctx context.Context, set CapabilitySet, obj map[string]interface{}, req *request.Request,
	capability, txHash string) {
	msg, err := set.BuildOutboundMessage(ctx, obj, req, capability)
	if err != nil {
		logger.Error("build outbound message", logfields.WithTxHash(txHash), log.WithError(err))

		return
	}

	if err = s.queue.Publish(ctx, msg); err != nil {
		logger.Error("publish outbound message", logfields.WithTxHash(txHash), logfields.WithMsgType(msg.MsgType),
			log.WithError(err))

		return
	}

	logger.Debug("message published", logfields.WithTxHash(txHash), logfields.WithMsgType(msg.MsgType))
}

func merge(req *request.Request, txHash string, incrementVersion bool) map[string]interface{} {
	obj := make(map[string]interface{}, len(req.Data)+4)

	for k, v := range req.Data {
		obj[k] = v
	}

	obj[fieldTxHash] = txHash
	obj[fieldCreator] = req.Signature.Creator
	obj[fieldCreated] = req.Signature.Created

	if incrementVersion {
		obj[fieldVersion] = req.Version + 1
	}

	return obj
}
