package rankings

import (
	"errors"
	"fmt"

	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/shared/svcerrors"
)

const (
	codeAggregationAbortedUpstream = "RANK_5020"
	codeAggregationAborted         = "RANK_9000"
)

// errAggregationAborted wraps a billing-log fetch failure mid-pagination.
// The whole run is abandoned; no partial ranking is ever returned.
func errAggregationAborted(event string, page int, cause error) *svcerrors.ServiceError {
	wrapped := fmt.Errorf("aggregation aborted during %s walk at page %d: %w", event, page, cause)
	if errors.Is(cause, icafe.ErrUpstreamUnavailable) || errors.Is(cause, icafe.ErrUpstreamMalformed) {
		return svcerrors.NewUpstreamUnavailableError(codeAggregationAbortedUpstream, wrapped)
	}
	return svcerrors.NewInternalError(codeAggregationAborted, wrapped)
}

func errCodeOf(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return codeAggregationAborted
}
