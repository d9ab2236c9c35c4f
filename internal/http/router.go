package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cafe-dashboard/internal/caches"
	"cafe-dashboard/internal/rankings"
	"cafe-dashboard/internal/shared/loggers"
	"cafe-dashboard/internal/shared/metrics"
)

// NewRouter creates and configures the HTTP router. Every dashboard route
// lives under the API prefix the cache keys are built from.
func NewRouter(
	rankingService rankings.Service,
	members MemberDirectory,
	pcs PCDirectory,
	warmer CacheWarmer,
	cache *caches.Cache,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	rankingsHandler := NewRankingsHandler(rankingService, cache)
	listMembersHandler := NewListMembersHandler(members, cache)
	searchMembersHandler := NewSearchMembersHandler(members)
	memberDetailHandler := NewMemberDetailHandler(members)
	listPCsHandler := NewListPCsHandler(pcs)
	consoleDetailHandler := NewConsoleDetailHandler(pcs)
	cacheRefreshHandler := NewCacheRefreshHandler(warmer)

	// Routes
	router.Route(caches.APIPrefix, func(api chi.Router) {
		api.Get("/members/rankings", errorHandlingAdapter(rankingsHandler))
		api.Get("/members", errorHandlingAdapter(listMembersHandler))
		api.Get("/members/search", errorHandlingAdapter(searchMembersHandler))
		api.Get("/members/{memberID}", errorHandlingAdapter(memberDetailHandler))
		api.Get("/pcs", errorHandlingAdapter(listPCsHandler))
		api.Get("/pcs/{pcName}/console", errorHandlingAdapter(consoleDetailHandler))
		api.Post("/cache/refresh", errorHandlingAdapter(cacheRefreshHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
