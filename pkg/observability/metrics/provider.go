/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/ixoworld/elysian/internal/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "elysian"

	// Admission pipeline.
	Admission           = "admission"
	AdmissionTimeMetric = "admission_seconds"

	// Commit path.
	Commit           = "commit"
	CommitTimeMetric = "commit_seconds"

	// Settlement loop.
	Settlement             = "settlement"
	SettlementTimeMetric   = "settlement_seconds"
	SettledCountMetric     = "settled_total"
	RejectedCountMetric    = "rejected_total"
	MethodLabel            = "method"
	CapabilityLabel        = "capability"
	MsgTypeLabel           = "msg_type"
	defaultUnknownMetricID = "unknown"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	AdmissionTime(method string, value time.Duration)
	CommitTime(capability string, value time.Duration)
	SettlementTime(msgType string, value time.Duration)
	TransactionSettled(msgType string)
	TransactionRejected(msgType string)
}

// Label returns value, or a placeholder when value is empty.
func Label(value string) string {
	if value == "" {
		return defaultUnknownMetricID
	}

	return value
}
