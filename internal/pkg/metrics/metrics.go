// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts successfully created orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrderTotalAmount observes the computed total of each created order.
var OrderTotalAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_total_amount",
		Help:      "Distribution of server-computed order totals.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
	},
)

// IdempotentReplaysTotal counts order creations answered from a previously
// seen Idempotency-Key instead of creating a new order.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of order creations replayed via Idempotency-Key.",
	},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDenialsTotal counts denied authorization decisions.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of denied authorization decisions, by reason.",
	},
	[]string{"reason"},
)

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchQueriesTotal counts search queries by sanitizer outcome.
// Label:
//   - result: "accepted" or "rejected"
var SearchQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_queries_total",
		Help:      "Total number of product search queries, by sanitizer outcome.",
	},
	[]string{"result"},
)
