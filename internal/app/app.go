package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"cafe-dashboard/internal/caches"
	internalhttp "cafe-dashboard/internal/http"
	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/rankings"
	"cafe-dashboard/internal/schedulers"
	"cafe-dashboard/internal/shared/configs"
	"cafe-dashboard/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	cacheRefresher *schedulers.CacheRefresher
	redisClient    *redis.Client
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "cafe-dashboard").
		Logger()

	// Initialize cache store
	var (
		cacheStore  caches.Store
		redisClient *redis.Client
	)
	switch config.Cache.Store {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{Addr: config.Cache.RedisAddr})
		cacheStore = caches.NewRedisStore(redisClient)
	default:
		cacheStore = caches.NewMemoryStore()
	}
	cache := caches.New(cacheStore)

	// Initialize upstream client
	clientLogger := appLogger.With().Str(loggers.FieldComponent, "icafe").Logger()
	icafeClient := icafe.NewClient(
		config.Icafe.BaseURL,
		config.Icafe.CafeID,
		config.Icafe.AuthToken,
		time.Duration(config.Icafe.RequestTimeout)*time.Second,
		clientLogger,
	)

	// Initialize ranking service
	rankingService := rankings.NewService(icafeClient)

	// Initialize refresh scheduler
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	cacheRefresher := schedulers.NewCacheRefresher(rankingService, icafeClient, cache, schedulerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(rankingService, icafeClient, icafeClient, cacheRefresher, cache, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		cacheRefresher: cacheRefresher,
		redisClient:    redisClient,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting cafe-dashboard service on port %d (log_level=%s, cache_store=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Cache.Store)

	// start the cache refresh schedule
	if err := app.cacheRefresher.Start(); err != nil {
		return fmt.Errorf("failed to start cache refresher: %w", err)
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the refresh schedule, waiting for a running sweep
	app.cacheRefresher.Stop()
	app.appLogger.Info().Msg("Cache refresher stopped")

	// 3) Close the redis connection if one was opened
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			return fmt.Errorf("redis close failed: %w", err)
		}
		app.appLogger.Info().Msg("Redis connection closed")
	}

	return nil
}
