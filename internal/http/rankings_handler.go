package http

import (
	"context"
	"encoding/json"
	"net/http"

	"cafe-dashboard/internal/caches"
	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/rankings"
	"cafe-dashboard/internal/shared/svcerrors"
)

type rankingsHandler struct {
	rankingService rankings.Service
	cache          *caches.Cache
}

func NewRankingsHandler(rankingService rankings.Service, cache *caches.Cache) AppHttpHandler {
	return &rankingsHandler{
		rankingService: rankingService,
		cache:          cache,
	}
}

// Handle processes GET /members/rankings?timeframe={day|week|month|all}.
// A missing timeframe defaults to month; an unknown value is a 400. The
// cache key is the same one the refresh scheduler warms, so in steady state
// this serves the pre-marshaled payload without touching the upstream.
func (h *rankingsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := r.URL.Query().Get("timeframe")
	if raw == "" {
		raw = string(models.TimeframeMonth)
	}
	timeframe, err := models.ParseTimeframe(raw)
	if err != nil {
		return svcerrors.NewInvalidArgumentError(codeInvalidTimeframe, err.Error(), err)
	}

	body, err := h.cache.GetOrSet(r.Context(), caches.RankingsKey(caches.APIPrefix, timeframe), caches.DefaultTTL,
		func(ctx context.Context) ([]byte, error) {
			rows, err := h.rankingService.MemberRankings(ctx, timeframe)
			if err != nil {
				return nil, err
			}
			return json.Marshal(rows)
		})
	if err != nil {
		return err
	}

	writeRawJSON(w, body)
	return nil
}
