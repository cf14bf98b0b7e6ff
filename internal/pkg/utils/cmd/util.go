/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// GetUserSetOptionalVarFromString returns values either command line flag or environment variable.
func GetUserSetOptionalVarFromString(cmd *cobra.Command, flagName, envKey string) string {
	//nolint // the error will not happen for optional var
	v, _ := GetUserSetVarFromString(cmd, flagName, envKey, true)

	return v
}

// GetUserSetVarFromString returns values either command line flag or environment variable.
// The command line flag takes precedence.
func GetUserSetVarFromString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		if !isOptional && value == "" {
			return "", fmt.Errorf("%s value is empty", envKey)
		}

		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

// GetUserSetOptionalCSVVar returns the comma-separated values set via either command line flag or
// environment variable. The command line flag must be set as a StringSlice.
// If the variable isn't set, then a nil slice will be returned.
func GetUserSetOptionalCSVVar(cmd *cobra.Command, flagName, envKey string) []string {
	//nolint // For an optional variable, no error will happen
	v, _ := GetUserSetCSVVar(cmd, flagName, envKey, true)

	return v
}

// GetUserSetCSVVar returns the variables set via either command line flag or environment variable.
// If both are set, then the command line flag takes precedence.
func GetUserSetCSVVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringSlice(flagName)
		if err != nil {
			return nil, fmt.Errorf(flagName+" flag not found: %s", err)
		}

		if len(value) == 0 {
			return nil, fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		if !isOptional && value == "" {
			return nil, fmt.Errorf("%s value is empty", envKey)
		}

		if value == "" {
			return nil, nil
		}

		return strings.Split(value, ","), nil
	}

	return nil, errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

// GetUserSetOptionalDuration returns the duration set via either command line flag or environment
// variable, or defaultValue when neither is set.
func GetUserSetOptionalDuration(cmd *cobra.Command, flagName, envKey string,
	defaultValue time.Duration) (time.Duration, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s] for %s: %w", value, flagName, err)
	}

	return d, nil
}

// GetUserSetOptionalBool returns the boolean set via either command line flag or environment
// variable, or defaultValue when neither is set.
func GetUserSetOptionalBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value [%s] for %s: %w", value, flagName, err)
	}

	return b, nil
}
