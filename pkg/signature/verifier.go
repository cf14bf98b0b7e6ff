/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination verifier_mocks_test.go -self_package mocks -package signature_test -source=verifier.go -mock_names didResolver=MockDIDResolver

package signature

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcutil/base58"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/did"
	"github.com/ixoworld/elysian/pkg/request"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
)

var logger = log.New("signature-verifier")

// IdentityHook performs the identity/KYC check for a signer. It returns false to reject the request and an
// error only when the identity source could not be reached.
type IdentityHook func(ctx context.Context, doc *did.Document, req *request.Request, capability string) (bool, error)

// AcceptAll is the default identity hook.
func AcceptAll(context.Context, *did.Document, *request.Request, string) (bool, error) {
	return true, nil
}

// KYCCredentialHook accepts signers holding a credential whose type contains "KYC".
func KYCCredentialHook(_ context.Context, doc *did.Document, _ *request.Request, _ string) (bool, error) {
	return doc.HasCredentialType("KYC"), nil
}

// Result is the outcome of a signature verification. Errors holds the violations in the order they were found.
type Result struct {
	Valid  bool
	Errors []string
}

func invalid(format string, args ...interface{}) *Result {
	return &Result{Errors: []string{fmt.Sprintf(format, args...)}}
}

type didResolver interface {
	Resolve(ctx context.Context, id string) (*did.Document, error)
}

// Verifier validates request signatures against the signer's registered verification key.
type Verifier struct {
	resolver     didResolver
	identityHook IdentityHook
}

// Opt configures the verifier.
type Opt func(v *Verifier)

// WithIdentityHook overrides the identity hook.
func WithIdentityHook(hook IdentityHook) Opt {
	return func(v *Verifier) {
		v.identityHook = hook
	}
}

// NewVerifier returns a new signature verifier.
func NewVerifier(resolver didResolver, opts ...Opt) *Verifier {
	v := &Verifier{
		resolver:     resolver,
		identityHook: AcceptAll,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify checks the request signature. Policy failures are reported in the result; an error is returned
// only when the identity source is unreachable.
func (v *Verifier) Verify(
	ctx context.Context,
	req *request.Request,
	requiresIdentityCheck bool,
	capability string,
) (*Result, error) {
	sig := req.Signature

	if sig.Type != request.SignatureTypeED25519 {
		return invalid("unsupported signature type %q", sig.Type), nil
	}

	if sig.Creator == "" {
		return invalid("signature creator is required"), nil
	}

	if _, err := time.Parse(time.RFC3339, sig.Created); err != nil {
		return invalid("invalid signature created date %q", sig.Created), nil
	}

	sigBytes, err := hex.DecodeString(sig.SignatureValue)
	if err != nil || len(sigBytes) != ed25519.SignatureSize {
		return invalid("invalid signature value"), nil
	}

	doc, err := v.resolver.Resolve(ctx, sig.Creator)
	if err != nil {
		if errors.Is(err, did.ErrNotFound) {
			return invalid("signer %s could not be resolved", sig.Creator), nil
		}

		return nil, resterr.NewCustomError(resterr.IdentityUnavailable, resterr.SignatureComponent,
			fmt.Errorf("resolve signer %s: %w", sig.Creator, err))
	}

	pubKey := base58.Decode(doc.PublicKey)
	if len(pubKey) != ed25519.PublicKeySize {
		return invalid("invalid verification key for signer %s", sig.Creator), nil
	}

	if !ed25519.Verify(pubKey, Digest([]byte(req.Body)), sigBytes) {
		return invalid("signature is not valid"), nil
	}

	if requiresIdentityCheck {
		ok, hookErr := v.identityHook(ctx, doc, req, capability)
		if hookErr != nil {
			return nil, resterr.NewCustomError(resterr.IdentityUnavailable, resterr.SignatureComponent,
				fmt.Errorf("identity check: %w", hookErr))
		}

		if !ok {
			return invalid("identity check failed for signer %s", sig.Creator), nil
		}
	}

	logger.Debug("signature verified", logfields.WithSigner(sig.Creator), logfields.WithCapability(capability))

	return &Result{Valid: true}, nil
}

// Digest returns the message digest covered by an ed25519-sha-256 signature.
func Digest(msg []byte) []byte {
	h := sha256.Sum256(msg)

	return h[:]
}

// Sign produces a hex encoded ed25519-sha-256 signature of msg.
func Sign(privateKey ed25519.PrivateKey, msg []byte) string {
	return hex.EncodeToString(ed25519.Sign(privateKey, Digest(msg)))
}
