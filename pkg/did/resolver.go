/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination resolver_mocks_test.go -self_package mocks -package did -source=resolver.go -mock_names keyCache=MockKeyCache

package did

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
)

var logger = log.New("did-resolver")

var (
	// ErrNotFound is returned when the DID is not registered.
	ErrNotFound = errors.New("did not found")
	// ErrCacheMiss is returned by a key cache when the DID is not cached.
	ErrCacheMiss = errors.New("cache miss")
)

const (
	getByDIDPath      = "/did/getByDid/"
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// Credential is a credential attached to a DID, e.g. a KYC attestation.
type Credential struct {
	Type   []string               `json:"type"`
	Issuer string                 `json:"issuer,omitempty"`
	Claim  map[string]interface{} `json:"claim,omitempty"`
}

// Document is the resolved view of a DID.
type Document struct {
	DID         string        `json:"did"`
	PublicKey   string        `json:"publicKey"`
	Credentials []*Credential `json:"credentials,omitempty"`
}

// HasCredentialType returns true if the document carries a credential whose type contains t.
func (d *Document) HasCredentialType(t string) bool {
	for _, c := range d.Credentials {
		for _, ct := range c.Type {
			if strings.Contains(ct, t) {
				return true
			}
		}
	}

	return false
}

type keyCache interface {
	Get(ctx context.Context, did string) ([]byte, error)
	Set(ctx context.Context, did string, doc []byte) error
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver resolves DIDs through a key cache, falling back to the blockchain REST API.
type Resolver struct {
	cache      keyCache
	baseURL    string
	httpClient httpClient
	maxRetries uint64
	retryDelay time.Duration
}

// Opt configures the resolver.
type Opt func(r *Resolver)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client httpClient) Opt {
	return func(r *Resolver) {
		r.httpClient = client
	}
}

// WithRetry sets the retry policy for transient failures.
func WithRetry(maxRetries uint64, delay time.Duration) Opt {
	return func(r *Resolver) {
		r.maxRetries = maxRetries
		r.retryDelay = delay
	}
}

// NewResolver returns a new DID resolver.
func NewResolver(cache keyCache, blockchainURL string, opts ...Opt) *Resolver {
	r := &Resolver{
		cache:      cache,
		baseURL:    strings.TrimSuffix(blockchainURL, "/"),
		httpClient: http.DefaultClient,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the document for did. ErrNotFound is returned if the DID is unknown; any other error
// means the identity source could not be reached.
func (r *Resolver) Resolve(ctx context.Context, did string) (*Document, error) {
	if doc, ok := r.fromCache(ctx, did); ok {
		return doc, nil
	}

	doc, err := r.fetch(ctx, did)
	if err != nil {
		return nil, err
	}

	if err = r.Seed(ctx, doc); err != nil {
		logger.Warn("failed to cache did document", logfields.WithSigner(did), log.WithError(err))
	}

	return doc, nil
}

// Seed stores doc in the key cache.
func (r *Resolver) Seed(ctx context.Context, doc *Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal did document: %w", err)
	}

	return r.cache.Set(ctx, doc.DID, b)
}

func (r *Resolver) fromCache(ctx context.Context, did string) (*Document, bool) {
	b, err := r.cache.Get(ctx, did)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn("did key cache unavailable", logfields.WithSigner(did), log.WithError(err))
		}

		return nil, false
	}

	doc := &Document{}

	if err = json.Unmarshal(b, doc); err != nil || doc.PublicKey == "" {
		logger.Warn("discarding invalid cached did document", logfields.WithSigner(did))

		return nil, false
	}

	return doc, true
}

func (r *Resolver) fetch(ctx context.Context, did string) (*Document, error) {
	endpoint := r.baseURL + getByDIDPath + url.PathEscape(did)

	var doc *Document

	err := backoff.Retry(
		func() error {
			var err error

			doc, err = r.get(ctx, endpoint)

			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(r.retryDelay), r.maxRetries), ctx),
	)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *Resolver) get(ctx context.Context, endpoint string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve did: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(ErrNotFound)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("resolve did: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("resolve did: status %d", resp.StatusCode))
	}

	return parseDocument(body)
}

func parseDocument(body []byte) (*Document, error) {
	if !gjson.ValidBytes(body) {
		return nil, backoff.Permanent(errors.New("resolve did: invalid response"))
	}

	result := gjson.ParseBytes(body)
	if r := result.Get("result"); r.IsObject() {
		result = r
	}

	doc := &Document{
		DID:       result.Get("did").String(),
		PublicKey: firstOf(result, "pubKey", "publicKey", "verifyKey"),
	}

	if doc.DID == "" || doc.PublicKey == "" {
		return nil, backoff.Permanent(ErrNotFound)
	}

	if creds := result.Get("credentials"); creds.IsArray() {
		if err := json.Unmarshal([]byte(creds.Raw), &doc.Credentials); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("decode credentials: %w", err))
		}
	}

	return doc, nil
}

func firstOf(result gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := result.Get(p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}

	return ""
}
