// Package metrics defines and registers the Prometheus metrics of the
// job board API. It is the single source of truth for metric names,
// labels, and help strings; everything registers against the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP verb
//   - path: the registered route pattern (not the raw URL)
//   - status: numeric response status
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route and status.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// RegistrationsTotal counts successful user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered.",
	},
)

// JobSearchesTotal counts job searches, labelled by whether the request
// carried a free-text query and whether any structured filter was set.
var JobSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_searches_total",
		Help:      "Total number of job searches, by query/filter usage.",
	},
	[]string{"with_query", "with_filters"},
)

// ApplicationsCreatedTotal counts submitted job applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications submitted.",
	},
)

// SavedJobActionsTotal counts bookmark mutations.
// Label:
//   - action: "save" or "unsave"
var SavedJobActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saved_job_actions_total",
		Help:      "Total number of saved-job mutations, by action.",
	},
	[]string{"action"},
)
