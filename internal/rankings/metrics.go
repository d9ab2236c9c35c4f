package rankings

import (
	"cafe-dashboard/internal/shared/metrics"
)

var (
	// metricRankingsComputedTotal counts completed ranking computations per
	// timeframe, with an empty error_code for successful runs.
	metricRankingsComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRankings,
			Name:      "computed_total",
		},
		[]string{"timeframe", metrics.FieldErrorCode},
	)

	// metricRankingsComputeDuration observes how long a full two-pass
	// aggregation takes, dominated by upstream pagination latency.
	metricRankingsComputeDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRankings,
			Name:      "compute_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"timeframe"},
	)
)
