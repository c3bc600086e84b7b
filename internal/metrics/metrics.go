// Package metrics defines and registers all custom Prometheus metrics for
// the storefront console. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time and are exposed
// by the ops server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// RequestsTotal counts resolved controller invocations.
// Labels:
//   - controller: the controller name (e.g. "users.list", "products.mutate")
//   - outcome: "success" or "error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of resolved request-controller invocations.",
	},
	[]string{"controller", "outcome"},
)

// RequestDuration measures the wall time of one controller invocation from
// dispatch to resolution.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of request-controller invocations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"controller"},
)

// StaleResponsesTotal counts responses dropped because a newer invocation
// superseded them before they resolved.
var StaleResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_responses_total",
		Help:      "Total number of responses discarded by the request generation guard.",
	},
	[]string{"controller"},
)
