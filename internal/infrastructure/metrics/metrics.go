package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters. HTTP-level metrics live in the router
// middleware; these track domain activity.
var (
	// TransactionsRecorded counts recorded transactions by kind.
	TransactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finlogix_transactions_recorded_total",
			Help: "Total number of transactions recorded",
		},
		[]string{"kind"},
	)

	// InsightsServed counts insight evaluations and how many findings
	// they produced.
	InsightsServed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finlogix_insights_per_request",
			Help:    "Number of insights returned per evaluation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// AdviceServed counts advice responses by source.
	AdviceServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finlogix_advice_served_total",
			Help: "Total number of advice responses by source",
		},
		[]string{"source"},
	)

	// AuthFailures counts failed login attempts.
	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "finlogix_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		},
	)
)

// Advice source label values.
const (
	AdviceSourceGenerated = "generated"
	AdviceSourceFallback  = "fallback"
)
