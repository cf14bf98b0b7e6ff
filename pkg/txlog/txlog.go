/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination txlog_mocks_test.go -self_package mocks -package txlog_test -source=txlog.go -mock_names store=MockStore

package txlog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/request"
)

var logger = log.New("transaction-log")

var (
	// ErrDataNotFound is returned when no record exists for a hash.
	ErrDataNotFound = errors.New("data not found")
	// ErrAlreadySettled is returned when a record is settled a second time.
	ErrAlreadySettled = errors.New("transaction already settled")
	// ErrDuplicate is returned when a record with the same hash was already appended.
	ErrDuplicate = errors.New("transaction already logged")
)

// Record is the write-ahead record of an admitted request.
type Record struct {
	Hash           string    `json:"hash" bson:"hash"`
	Data           string    `json:"data" bson:"data"`
	SignatureType  string    `json:"signatureType" bson:"signatureType"`
	SignatureValue string    `json:"signatureValue" bson:"signatureValue"`
	ProjectDID     string    `json:"projectDid" bson:"projectDid"`
	Capability     string    `json:"capability" bson:"capability"`
	BlockHash      string    `json:"blockHash,omitempty" bson:"blockHash,omitempty"`
	BlockHeight    int64     `json:"blockHeight,omitempty" bson:"blockHeight,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	SettledAt      time.Time `json:"settledAt,omitempty" bson:"settledAt,omitempty"`
}

// Settled returns true once a confirmation was recorded. A confirmation may carry no block hash.
func (r *Record) Settled() bool {
	return !r.SettledAt.IsZero()
}

type store interface {
	Create(ctx context.Context, record *Record) error
	UpdateForHash(ctx context.Context, hash, blockHash string, blockHeight int64, settledAt time.Time) error
	FindByHash(ctx context.Context, hash string) (*Record, error)
}

// Log is the transaction log.
type Log struct {
	store store
	now   func() time.Time
}

// New returns a new transaction log.
func New(store store) *Log {
	return &Log{
		store: store,
		now:   time.Now,
	}
}

// Append writes the record of an admitted request and returns it.
func (l *Log) Append(ctx context.Context, req *request.Request, capability string) (*Record, error) {
	hash, err := Hash(req.Body, req.Signature)
	if err != nil {
		return nil, err
	}

	record := &Record{
		Hash:           hash,
		Data:           req.Body,
		SignatureType:  req.Signature.Type,
		SignatureValue: req.Signature.SignatureValue,
		ProjectDID:     req.ProjectDID,
		Capability:     capability,
		CreatedAt:      l.now().UTC(),
	}

	if err = l.store.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create transaction record: %w", err)
	}

	logger.Debug("transaction logged", logfields.WithTxHash(hash), logfields.WithCapability(capability))

	return record, nil
}

// Settle attaches block confirmation data to the record. ErrAlreadySettled is returned if the record
// was already settled.
func (l *Log) Settle(ctx context.Context, hash, blockHash string, blockHeight int64) error {
	return l.store.UpdateForHash(ctx, hash, blockHash, blockHeight, l.now().UTC())
}

// Get returns the record for hash.
func (l *Log) Get(ctx context.Context, hash string) (*Record, error) {
	return l.store.FindByHash(ctx, hash)
}

// Hash derives the transaction hash from the signed body and its signature: the hex encoded SHA-256 digest
// of {"payload":<body>,"signature":<signature>}.
func Hash(body string, sig request.Signature) (string, error) {
	b, err := json.Marshal(struct {
		Payload   json.RawMessage   `json:"payload"`
		Signature request.Signature `json:"signature"`
	}{
		Payload:   json.RawMessage(body),
		Signature: sig,
	})
	if err != nil {
		return "", fmt.Errorf("marshal transaction: %w", err)
	}

	digest := sha256.Sum256(b)

	return hex.EncodeToString(digest[:]), nil
}
