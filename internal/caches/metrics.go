package caches

import (
	"cafe-dashboard/internal/shared/metrics"
)

const (
	opGet    = "get"
	opSet    = "set"
	opDelete = "delete"
	opClear  = "clear"

	outcomeOK    = "ok"
	outcomeHit   = "hit"
	outcomeMiss  = "miss"
	outcomeError = "error"
)

// metricCacheOpsTotal counts cache operations by op and outcome. Store
// failures show up here as outcome=error even though callers never see them.
var metricCacheOpsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubCache,
		Name:      "operations_total",
	},
	[]string{"op", "outcome"},
)
