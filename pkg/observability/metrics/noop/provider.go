/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/ixoworld/elysian/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

type noopProvider struct{}

// NewProvider returns a provider whose metrics are discarded.
func NewProvider() metrics.Provider {
	return &noopProvider{}
}

func (p *noopProvider) Create() error            { return nil }
func (p *noopProvider) Destroy() error           { return nil }
func (p *noopProvider) Metrics() metrics.Metrics { return GetMetrics() }

func (n *NoMetrics) AdmissionTime(string, time.Duration)  {}
func (n *NoMetrics) CommitTime(string, time.Duration)     {}
func (n *NoMetrics) SettlementTime(string, time.Duration) {}
func (n *NoMetrics) TransactionSettled(string)            {}
func (n *NoMetrics) TransactionRejected(string)           {}
