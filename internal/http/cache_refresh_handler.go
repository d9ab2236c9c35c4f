package http

import (
	"context"
	"net/http"

	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/loggers"
	"cafe-dashboard/internal/shared/svcerrors"
)

//go:generate mockgen -source=cache_refresh_handler.go -destination=./mocks/cache_refresh_handler_mock.go -package=mocks

// CacheWarmer triggers a cache refresh sweep outside the scheduled ticks.
type CacheWarmer interface {
	RefreshTimeframe(ctx context.Context, timeframe models.Timeframe) error
	RefreshAllTimeframes(ctx context.Context) error
	RefreshMembers(ctx context.Context) error
}

type cacheRefreshHandler struct {
	warmer CacheWarmer
}

func NewCacheRefreshHandler(warmer CacheWarmer) AppHttpHandler {
	return &cacheRefreshHandler{warmer: warmer}
}

// Handle processes POST /cache/refresh?timeframe={day|week|month|all}. A
// specific timeframe warms just that ranking; no parameter (or "all") runs
// the full sweep including the member list. The work runs detached from the
// request: the caller gets a 202 immediately and the request-scoped logger
// follows the sweep so its log lines stay correlated.
func (h *cacheRefreshHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := r.URL.Query().Get("timeframe")

	var single models.Timeframe
	if raw != "" && raw != string(models.TimeframeAll) {
		timeframe, err := models.ParseTimeframe(raw)
		if err != nil {
			return svcerrors.NewInvalidArgumentError(codeInvalidTimeframe, err.Error(), err)
		}
		single = timeframe
	}

	logger := loggers.Ctx(r.Context())
	ctx := logger.WithContext(context.Background())

	go func() {
		if single != "" {
			if err := h.warmer.RefreshTimeframe(ctx, single); err != nil {
				logger.Error().Err(err).Str(loggers.FieldTimeframe, string(single)).Msg("manual rankings refresh failed")
			}
			return
		}
		if err := h.warmer.RefreshAllTimeframes(ctx); err != nil {
			logger.Error().Err(err).Msg("manual rankings refresh failed")
		}
		if err := h.warmer.RefreshMembers(ctx); err != nil {
			logger.Error().Err(err).Msg("manual member list refresh failed")
		}
	}()

	w.WriteHeader(http.StatusAccepted)
	return nil
}
