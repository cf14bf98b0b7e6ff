/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination httpregistry_mocks_test.go -self_package mocks -package httpregistry -source=httpregistry.go -mock_names httpClient=MockHTTPClient

package httpregistry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ixoworld/elysian/internal/pkg/log"
)

var logger = log.New("http-template-registry")

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Registry fetches templates over HTTP, e.g. from a raw git hosting endpoint.
type Registry struct {
	baseURL    string
	httpClient httpClient
	maxRetries uint64
	retryDelay time.Duration
}

// Opt configures the registry.
type Opt func(r *Registry)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client httpClient) Opt {
	return func(r *Registry) {
		r.httpClient = client
	}
}

// WithRetry sets the retry policy for transient failures.
func WithRetry(maxRetries uint64, delay time.Duration) Opt {
	return func(r *Registry) {
		r.maxRetries = maxRetries
		r.retryDelay = delay
	}
}

// New returns a registry that resolves template paths relative to baseURL.
func New(baseURL string, opts ...Opt) *Registry {
	r := &Registry{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Fetch downloads the template at path. Server errors and transport failures are retried,
// client errors are not.
func (r *Registry) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := r.baseURL + path

	var body []byte

	err := backoff.RetryNotify(
		func() error {
			var err error

			body, err = r.get(ctx, url)

			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(r.retryDelay), r.maxRetries), ctx),
		func(err error, delay time.Duration) {
			logger.Debug("retrying template fetch", log.WithURL(url), log.WithDuration(delay), log.WithError(err))
		},
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (r *Registry) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("failed to close response body", log.WithError(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("get %s: status %d", url, resp.StatusCode))
	}
}
