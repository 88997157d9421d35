// Package metrics defines and registers all custom Prometheus metrics for the
// artifact keeper API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the echoprometheus middleware adds the standard HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "artifact_keeper"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenInvalidationsTotal counts whitelist entries removed outside of natural
// TTL expiry.
// Label:
//   - reason: "admin_update" or "password_change"
var TokenInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_invalidations_total",
		Help:      "Total number of cached tokens invalidated, labelled by reason.",
	},
	[]string{"reason"},
)

// PasswordChangesTotal counts password rotation attempts.
// Label:
//   - result: "success" or "failure"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, labelled by result.",
	},
	[]string{"result"},
)

// ArtifactLookupsTotal counts successful single-artifact reads.
// Label:
//   - artifact_id: the looked-up artifact id
var ArtifactLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artifact_lookups_total",
		Help:      "Total number of successful artifact lookups, by artifact id.",
	},
	[]string{"artifact_id"},
)

// ArtifactsCreatedTotal counts newly created artifacts.
var ArtifactsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artifacts_created_total",
		Help:      "Total number of artifacts created.",
	},
)
