/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. If httpServer is nil then
// metrics are only served by the main REST server.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics HTTP server stopped", log.WithError(fmt.Errorf("start metrics HTTP server: %w", err)))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the pipeline.
type PromMetrics struct {
	admissionTime  *prometheus.HistogramVec
	commitTime     *prometheus.HistogramVec
	settlementTime *prometheus.HistogramVec
	settled        *prometheus.CounterVec
	rejected       *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		admissionTime: newHistogramVec(metrics.Admission, metrics.AdmissionTimeMetric,
			"The time (in seconds) it takes to admit a request.", metrics.MethodLabel),
		commitTime: newHistogramVec(metrics.Commit, metrics.CommitTimeMetric,
			"The time (in seconds) it takes to commit an admitted request.", metrics.CapabilityLabel),
		settlementTime: newHistogramVec(metrics.Settlement, metrics.SettlementTimeMetric,
			"The time (in seconds) it takes to reconcile one blockchain response.", metrics.MsgTypeLabel),
		settled: newCounterVec(metrics.Settlement, metrics.SettledCountMetric,
			"The number of transactions confirmed by the blockchain.", metrics.MsgTypeLabel),
		rejected: newCounterVec(metrics.Settlement, metrics.RejectedCountMetric,
			"The number of transactions rejected by the blockchain.", metrics.MsgTypeLabel),
	}

	registerMetrics(pm)

	return pm
}

// AdmissionTime records the time to admit a request.
func (pm *PromMetrics) AdmissionTime(method string, value time.Duration) {
	pm.admissionTime.WithLabelValues(metrics.Label(method)).Observe(value.Seconds())

	logger.Debug("admission time", logfields.WithMethod(method), log.WithDuration(value))
}

// CommitTime records the time to commit a request.
func (pm *PromMetrics) CommitTime(capability string, value time.Duration) {
	pm.commitTime.WithLabelValues(metrics.Label(capability)).Observe(value.Seconds())

	logger.Debug("commit time", logfields.WithCapability(capability), log.WithDuration(value))
}

// SettlementTime records the time to reconcile a response message.
func (pm *PromMetrics) SettlementTime(msgType string, value time.Duration) {
	pm.settlementTime.WithLabelValues(metrics.Label(msgType)).Observe(value.Seconds())
}

// TransactionSettled increments the settled counter.
func (pm *PromMetrics) TransactionSettled(msgType string) {
	pm.settled.WithLabelValues(metrics.Label(msgType)).Inc()
}

// TransactionRejected increments the rejected counter.
func (pm *PromMetrics) TransactionRejected(msgType string) {
	pm.rejected.WithLabelValues(metrics.Label(msgType)).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.admissionTime, pm.commitTime, pm.settlementTime, pm.settled, pm.rejected,
	)
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogramVec(subsystem, name, help string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}
