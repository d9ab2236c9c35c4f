package icafe

import (
	"cafe-dashboard/internal/shared/metrics"
)

const (
	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
	outcomeMalformed   = "malformed"
)

// metricUpstreamRequestsTotal counts requests issued against the iCafeCloud
// API, labelled by resource and outcome. The resource label is the static
// path segment (e.g. "billingLogs"), never a raw URL, to keep cardinality low.
var metricUpstreamRequestsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubUpstream,
		Name:      "requests_total",
	},
	[]string{"resource", "outcome"},
)
