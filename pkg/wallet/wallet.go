/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination wallet_mocks_test.go -self_package mocks -package wallet_test -source=wallet.go -mock_names store=MockStore,keyProtector=MockKeyProtector,didSeeder=MockDIDSeeder

package wallet

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/did"
	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/signature"
)

var logger = log.New("wallet")

// ErrDataNotFound is returned when no wallet exists for a DID.
var ErrDataNotFound = errors.New("data not found")

const (
	didPrefix   = "did:ixo:"
	didKeyBytes = 16
)

// Wallet is a project wallet. SignKey holds the protected ed25519 seed.
type Wallet struct {
	DID       string    `json:"did" bson:"did"`
	VerifyKey string    `json:"verifyKey" bson:"verifyKey"`
	SignKey   []byte    `json:"-" bson:"signKey"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type store interface {
	Create(ctx context.Context, w *Wallet) error
	Find(ctx context.Context, id string) (*Wallet, error)
}

type keyProtector interface {
	Protect(ctx context.Context, plaintext []byte) ([]byte, error)
	Unprotect(ctx context.Context, ciphertext []byte) ([]byte, error)
}

type didSeeder interface {
	Seed(ctx context.Context, doc *did.Document) error
}

// Config holds the wallet service dependencies.
type Config struct {
	Store     store
	Protector keyProtector
	DIDCache  didSeeder
	// Rand is the entropy source for key generation. Defaults to crypto/rand.
	Rand io.Reader
	Now  func() time.Time
}

// Service generates project wallets and signs with them. Every signing operation takes the wallet explicitly.
type Service struct {
	store     store
	protector keyProtector
	didCache  didSeeder
	rand      io.Reader
	now       func() time.Time
}

// NewService returns a new wallet service.
func NewService(cfg *Config) *Service {
	s := &Service{
		store:     cfg.Store,
		protector: cfg.Protector,
		didCache:  cfg.DIDCache,
		rand:      cfg.Rand,
		now:       cfg.Now,
	}

	if s.rand == nil {
		s.rand = rand.Reader
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// Generate creates and stores a new wallet. The wallet's verification key is seeded into the DID key cache
// so that signatures made with it can be verified before the DID is registered on chain.
func (s *Service) Generate(ctx context.Context) (*Wallet, error) {
	pub, priv, err := ed25519.GenerateKey(s.rand)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	protected, err := s.protector.Protect(ctx, priv.Seed())
	if err != nil {
		return nil, fmt.Errorf("protect sign key: %w", err)
	}

	w := &Wallet{
		DID:       DIDFromKey(pub),
		VerifyKey: base58.Encode(pub),
		SignKey:   protected,
		CreatedAt: s.now().UTC(),
	}

	if err = s.store.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("store wallet: %w", err)
	}

	if err = s.didCache.Seed(ctx, &did.Document{DID: w.DID, PublicKey: w.VerifyKey}); err != nil {
		logger.Warn("failed to seed did key cache", logfields.WithProjectDID(w.DID), log.WithError(err))
	}

	logger.Info("project wallet created", logfields.WithProjectDID(w.DID))

	return w, nil
}

// Get returns the wallet of a project.
func (s *Service) Get(ctx context.Context, projectDID string) (*Wallet, error) {
	w, err := s.store.Find(ctx, projectDID)
	if err != nil {
		return nil, fmt.Errorf("find wallet %s: %w", projectDID, err)
	}

	return w, nil
}

// SelfSign returns the hex encoded ed25519-sha-256 signature of msg made with w.
func (s *Service) SelfSign(ctx context.Context, w *Wallet, msg []byte) (string, error) {
	key, err := s.privateKey(ctx, w)
	if err != nil {
		return "", err
	}

	return signature.Sign(key, msg), nil
}

// SignForBlockchain signs a blockchain transaction with w and wraps it in an outbound message. tx must be a JSON
// object whose "value" member is the signed content.
func (s *Service) SignForBlockchain(ctx context.Context, w *Wallet, msgType string, tx []byte) (*queue.OutboundMessage, error) {
	value := gjson.GetBytes(tx, "value")
	if !value.Exists() {
		return nil, errors.New("transaction value is required")
	}

	sig, err := s.SelfSign(ctx, w, []byte(value.Raw))
	if err != nil {
		return nil, err
	}

	signed, err := sjson.SetBytes(tx, "signature.signatureValue", sig)
	if err != nil {
		return nil, fmt.Errorf("set signature: %w", err)
	}

	signed, err = sjson.SetBytes(signed, "signature.created", s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("set signature date: %w", err)
	}

	signed, err = sjson.SetBytes(signed, "signature.publicKey", w.VerifyKey)
	if err != nil {
		return nil, fmt.Errorf("set signature key: %w", err)
	}

	return &queue.OutboundMessage{
		MsgType:    msgType,
		ProjectDID: w.DID,
		Data:       hex.EncodeToString(signed),
	}, nil
}

func (s *Service) privateKey(ctx context.Context, w *Wallet) (ed25519.PrivateKey, error) {
	seed, err := s.protector.Unprotect(ctx, w.SignKey)
	if err != nil {
		return nil, fmt.Errorf("unprotect sign key: %w", err)
	}

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid sign key for wallet %s", w.DID)
	}

	return ed25519.NewKeyFromSeed(seed), nil
}

// DIDFromKey derives the ixo DID of a verification key.
func DIDFromKey(pub ed25519.PublicKey) string {
	return didPrefix + base58.Encode(pub[:didKeyBytes])
}
