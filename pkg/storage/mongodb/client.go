/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout = 15 * time.Second
)

// Client wraps a MongoDB client bound to one database.
type Client struct {
	client       *mongo.Client
	databaseName string
	timeout      time.Duration
}

// New connects to MongoDB.
func New(connString string, databaseName string, opts ...ClientOpt) (*Client, error) {
	op := &clientOpts{
		timeout:  defaultTimeout,
		readPref: readpref.Primary(),
	}

	for _, fn := range opts {
		fn(op)
	}

	mongoOpts := mongooptions.Client()
	mongoOpts.ApplyURI(connString)
	mongoOpts.ReadPreference = op.readPref
	mongoOpts.MaxPoolSize = lo.ToPtr(uint64(200))

	if op.traceProvider != nil {
		mongoOpts.Monitor = otelmongo.NewMonitor(otelmongo.WithTracerProvider(op.traceProvider))
	}

	client, err := mongo.NewClient(mongoOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new MongoDB client: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), op.timeout)
	defer cancel()

	err = client.Connect(ctxWithTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &Client{
		client:       client,
		databaseName: databaseName,
		timeout:      op.timeout,
	}, nil
}

// Database returns the bound database.
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.databaseName)
}

// ContextWithTimeout derives a context bounded by the client timeout.
func (c *Client) ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// Ping checks that the primary is reachable. Admission refuses work while this fails.
func (c *Client) Ping(ctx context.Context) error {
	ctxWithTimeout, cancel := c.ContextWithTimeout(ctx)
	defer cancel()

	if err := c.client.Ping(ctxWithTimeout, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (c *Client) Close() error {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	err := c.client.Disconnect(ctxWithTimeout)
	if err != nil {
		if err.Error() == "client is disconnected" {
			return nil
		}

		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}

type clientOpts struct {
	timeout       time.Duration
	readPref      *readpref.ReadPref
	traceProvider trace.TracerProvider
}

// ClientOpt configures the client.
type ClientOpt func(opts *clientOpts)

// WithTimeout sets the per operation timeout.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithReadPref sets the read preference.
func WithReadPref(readPref *readpref.ReadPref) ClientOpt {
	return func(opts *clientOpts) {
		opts.readPref = readPref
	}
}

// WithTraceProvider enables otelmongo command tracing.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}
