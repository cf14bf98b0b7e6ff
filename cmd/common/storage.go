/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/ixoworld/elysian/internal/pkg/log"
	cmdutils "github.com/ixoworld/elysian/internal/pkg/utils/cmd"
	"github.com/ixoworld/elysian/pkg/storage/mongodb"
)

const (
	// DatabaseURLFlagName is the MongoDB connection string.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "MongoDB connection string with credentials if required." +
		" Example: 'mongodb://mongodb.example.com:27017'." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the MongoDB connection string.
	DatabaseURLEnvKey = "DATABASE_URL"

	// DatabaseNameFlagName is the MongoDB database name.
	DatabaseNameFlagName = "database-name"
	// DatabaseNameFlagUsage describes the usage.
	DatabaseNameFlagUsage = "MongoDB database holding capabilities, transactions, wallets and project documents." +
		" Defaults to '" + DatabaseNameDefault + "'." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseNameEnvKey
	// DatabaseNameEnvKey is the MongoDB database name.
	DatabaseNameEnvKey = "DATABASE_NAME"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time to wait until the datasource is available before giving up." +
		" Default: 30s." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "DATABASE_TIMEOUT"

	// DatabaseNameDefault is the default database name.
	DatabaseNameDefault = "elysian"
	// DatabaseTimeoutDefault is the default time to wait for the datasource.
	DatabaseTimeoutDefault = 30 * time.Second
)

// DBParameters holds database configuration.
type DBParameters struct {
	URL     string
	Name    string
	Timeout time.Duration
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabaseNameFlagName, "", "", DatabaseNameFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
	cmd.Flags().StringP(LogLevelFlagName, LogLevelFlagShorthand, "", LogLevelPrefixFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbURL: %w", err)
	}

	params.Name = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseNameFlagName, DatabaseNameEnvKey)
	if params.Name == "" {
		params.Name = DatabaseNameDefault
	}

	params.Timeout, err = cmdutils.GetUserSetOptionalDuration(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey,
		DatabaseTimeoutDefault)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbTimeout: %w", err)
	}

	return params, nil
}

// InitMongoDB connects to MongoDB, retrying once a second until params.Timeout elapses.
func InitMongoDB(params *DBParameters, logger *log.Log, opts ...mongodb.ClientOpt) (*mongodb.Client, error) {
	var client *mongodb.Client

	err := retry(
		func() error {
			var openErr error

			client, openErr = mongodb.New(params.URL, params.Name, opts...)

			return openErr
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init MongoDB client: %w", err)
	}

	return client, nil
}

func retry(task func() error, timeout time.Duration, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), uint64(timeout/sleep)),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				log.WithDuration(t), log.WithError(retryErr))
		},
	)
}
