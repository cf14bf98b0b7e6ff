/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ixoworld/elysian/pkg/restapi/common"
)

// DefaultMetricsPath is where the admission, commit and settlement metrics are served.
const DefaultMetricsPath = "/metrics"

// Handler serves the elysian metrics in the Prometheus exposition format.
type Handler struct {
	path     string
	gatherer prometheus.Gatherer
}

// HandlerOpt configures a Handler.
type HandlerOpt func(h *Handler)

// WithPath overrides DefaultMetricsPath.
func WithPath(path string) HandlerOpt {
	return func(h *Handler) {
		h.path = path
	}
}

// WithGatherer serves metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) HandlerOpt {
	return func(h *Handler) {
		h.gatherer = g
	}
}

// NewHandler returns the metrics endpoint. It is mounted on the REST server, or on its own server when a
// separate metrics address is configured.
func NewHandler(opts ...HandlerOpt) *Handler {
	h := &Handler{
		path:     DefaultMetricsPath,
		gatherer: prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Path returns the metrics path.
func (h *Handler) Path() string {
	return h.path
}

// Method is always GET.
func (h *Handler) Method() string {
	return http.MethodGet
}

// Handler returns the promhttp handler with OpenMetrics enabled, so histogram exemplars are exposed.
func (h *Handler) Handler() common.HTTPRequestHandler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true}).ServeHTTP
}
