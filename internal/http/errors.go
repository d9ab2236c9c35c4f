package http

import (
	"errors"

	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/shared/svcerrors"
)

const (
	codeInvalidTimeframe = "API_1000"
	codeInvalidMemberID  = "API_1001"

	codeUpstreamNotFound    = "ICAFE_4040"
	codeUpstreamUnavailable = "ICAFE_5020"
	codeUpstreamMalformed   = "ICAFE_5021"
)

// mapUpstreamError converts the upstream client's sentinel errors into
// service errors with stable codes. Errors that already carry a service error
// (like the ranking engine's) pass through unchanged.
func mapUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := svcerrors.AsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, icafe.ErrUpstreamNotFound):
		return svcerrors.NewNotFoundError(codeUpstreamNotFound, "resource not found", err)
	case errors.Is(err, icafe.ErrUpstreamUnavailable):
		return svcerrors.NewUpstreamUnavailableError(codeUpstreamUnavailable, err)
	case errors.Is(err, icafe.ErrUpstreamMalformed):
		return svcerrors.NewUpstreamUnavailableError(codeUpstreamMalformed, err)
	default:
		return err
	}
}
