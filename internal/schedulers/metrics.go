package schedulers

import (
	"cafe-dashboard/internal/shared/metrics"
	"cafe-dashboard/internal/shared/svcerrors"
)

const (
	noError = metrics.ValueNoError

	codeRefreshEncode  = "SCHED_9000"
	codeRefreshUnknown = "SCHED_9001"
)

// metricRefreshTotal counts refresh attempts per warmed target, with an empty
// error_code for successful runs.
var metricRefreshTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubScheduler,
		Name:      "refresh_total",
	},
	[]string{"target", metrics.FieldErrorCode},
)

func errorCodeOf(err error) string {
	if svcErr, ok := svcerrors.As(err); ok {
		return svcErr.Code
	}
	return codeRefreshUnknown
}
