package schedulers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"cafe-dashboard/internal/caches"
	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/rankings"
	"cafe-dashboard/internal/shared/loggers"
	"cafe-dashboard/internal/shared/ulid"
)

// refreshSpec fires one minute inside the 5-minute entry TTL, so warmed keys
// are renewed before they can expire.
const refreshSpec = "*/4 * * * *"

const (
	targetRankings = "rankings"
	targetMembers  = "members"
)

//go:generate mockgen -source=cache_refresher.go -destination=./mocks/cache_refresher_mock.go -package=mocks

// MemberLister fetches the full member directory from the upstream.
type MemberLister interface {
	AllMembers(ctx context.Context) ([]models.Member, error)
}

// CacheRefresher periodically recomputes the hot dashboard payloads and
// writes them into the cache, so interactive requests mostly hit warm
// entries. Refresh failures are logged; the next tick tries again.
type CacheRefresher struct {
	cron     *cron.Cron
	rankings rankings.Service
	members  MemberLister
	cache    *caches.Cache
	logger   loggers.Logger
}

func NewCacheRefresher(
	rankingService rankings.Service,
	memberLister MemberLister,
	cache *caches.Cache,
	logger loggers.Logger,
) *CacheRefresher {
	refresher := &CacheRefresher{
		rankings: rankingService,
		members:  memberLister,
		cache:    cache,
		logger:   logger.With().Str(loggers.FieldComponent, "cache_refresher").Logger(),
	}

	cronLog := cronLogger{logger: refresher.logger}
	refresher.cron = cron.New(
		cron.WithLogger(cronLog),
		// a slow sweep must not stack on top of itself
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)
	return refresher
}

// Start registers the refresh job and launches the cron loop. It also warms
// the cache once immediately, so the first dashboard load after boot does not
// pay the full upstream pagination cost.
func (r *CacheRefresher) Start() error {
	if _, err := r.cron.AddFunc(refreshSpec, r.runScheduledRefresh); err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}
	r.cron.Start()

	go r.runScheduledRefresh()
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (r *CacheRefresher) Stop() {
	<-r.cron.Stop().Done()
}

// runScheduledRefresh is the cron entrypoint. Each run gets its own id so the
// log lines of one sweep can be correlated.
func (r *CacheRefresher) runScheduledRefresh() {
	logger := r.logger.With().Str(loggers.FieldRequestID, ulid.NewULID()).Logger()
	ctx := logger.WithContext(context.Background())

	logger.Info().Msg("cache refresh sweep started")

	if err := r.RefreshTimeframe(ctx, models.TimeframeMonth); err != nil {
		logger.Error().Err(err).Str(loggers.FieldTimeframe, string(models.TimeframeMonth)).Msg("rankings refresh failed")
	}
	if err := r.RefreshMembers(ctx); err != nil {
		logger.Error().Err(err).Msg("member list refresh failed")
	}

	logger.Info().Msg("cache refresh sweep finished")
}

// RefreshTimeframe recomputes the rankings for one timeframe and caches the
// marshaled rows under the same key the HTTP handler reads.
func (r *CacheRefresher) RefreshTimeframe(ctx context.Context, timeframe models.Timeframe) error {
	rows, err := r.rankings.MemberRankings(ctx, timeframe)
	if err != nil {
		metricRefreshTotal.WithLabelValues(targetRankings, errorCodeOf(err)).Inc()
		return err
	}

	body, err := json.Marshal(rows)
	if err != nil {
		metricRefreshTotal.WithLabelValues(targetRankings, codeRefreshEncode).Inc()
		return fmt.Errorf("marshal rankings for %s: %w", timeframe, err)
	}

	r.cache.Set(ctx, caches.RankingsKey(caches.APIPrefix, timeframe), body, caches.DefaultTTL)
	metricRefreshTotal.WithLabelValues(targetRankings, noError).Inc()
	return nil
}

// RefreshAllTimeframes sweeps every timeframe sequentially. A failing
// timeframe does not stop the sweep; all failures are reported together.
func (r *CacheRefresher) RefreshAllTimeframes(ctx context.Context) error {
	var errs []error
	for _, timeframe := range models.AllTimeframes() {
		if err := r.RefreshTimeframe(ctx, timeframe); err != nil {
			loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldTimeframe, string(timeframe)).Msg("rankings refresh failed")
			errs = append(errs, fmt.Errorf("timeframe %s: %w", timeframe, err))
		}
	}
	return errors.Join(errs...)
}

// RefreshMembers re-fetches the member directory and caches it.
func (r *CacheRefresher) RefreshMembers(ctx context.Context) error {
	members, err := r.members.AllMembers(ctx)
	if err != nil {
		metricRefreshTotal.WithLabelValues(targetMembers, errorCodeOf(err)).Inc()
		return err
	}

	body, err := json.Marshal(members)
	if err != nil {
		metricRefreshTotal.WithLabelValues(targetMembers, codeRefreshEncode).Inc()
		return fmt.Errorf("marshal member list: %w", err)
	}

	r.cache.Set(ctx, caches.MembersKey(caches.APIPrefix), body, caches.DefaultTTL)
	metricRefreshTotal.WithLabelValues(targetMembers, noError).Inc()
	return nil
}

// cronLogger adapts the structured logger to the cron.Logger interface.
type cronLogger struct {
	logger loggers.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
