package rankings

import (
	"context"
	"sort"
	"time"

	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/loggers"
	"cafe-dashboard/internal/shared/metrics"
)

//go:generate mockgen -source=service.go -destination=./mocks/service_mock.go -package=mocks

// BillingLogFetcher is the slice of the upstream client the ranking engine
// depends on. A nil page with a nil error means "no more data".
type BillingLogFetcher interface {
	BillingLogs(ctx context.Context, q icafe.BillingLogQuery) (*models.BillingLogPage, error)
}

// Service computes member rankings over a timeframe by walking the upstream
// billing log.
type Service interface {
	MemberRankings(ctx context.Context, tf models.Timeframe) ([]models.MemberRankingRow, error)
}

type rankingService struct {
	fetcher BillingLogFetcher
	nowFunc func() time.Time
}

func NewService(fetcher BillingLogFetcher) Service {
	return &rankingService{fetcher: fetcher, nowFunc: time.Now}
}

// MemberRankings runs the two-pass aggregation: a checkout walk for usage
// and a topup walk for deposits, then derives one sorted row per member.
// The accumulator map lives and dies inside this call.
func (s *rankingService) MemberRankings(ctx context.Context, tf models.Timeframe) ([]models.MemberRankingRow, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()
	dateStart, dateEnd := tf.Window(s.nowFunc())

	logger.Debug().
		Str(loggers.FieldTimeframe, string(tf)).
		Msgf("computing member rankings for window %s .. %s",
			dateStart.Format("2006-01-02"), dateEnd.Format("2006-01-02"))

	usage := make(map[string]*models.MemberUsage)

	if err := s.accumulateCheckouts(ctx, usage, dateStart, dateEnd); err != nil {
		metricRankingsComputedTotal.WithLabelValues(string(tf), errCodeOf(err)).Inc()
		return nil, err
	}
	if err := s.accumulateTopups(ctx, usage, dateStart, dateEnd); err != nil {
		metricRankingsComputedTotal.WithLabelValues(string(tf), errCodeOf(err)).Inc()
		return nil, err
	}

	rows := finalizeRows(usage)

	metricRankingsComputedTotal.WithLabelValues(string(tf), metrics.ValueNoError).Inc()
	metricRankingsComputeDuration.WithLabelValues(string(tf)).Observe(time.Since(start).Seconds())
	logger.Debug().
		Str(loggers.FieldTimeframe, string(tf)).
		Msgf("member rankings computed: %d members", len(rows))
	return rows, nil
}

// accumulateCheckouts is pass 1: usage time and session counts from
// checkout events.
func (s *rankingService) accumulateCheckouts(ctx context.Context, usage map[string]*models.MemberUsage, dateStart, dateEnd time.Time) error {
	return s.walkPages(ctx, icafe.EventCheckout, dateStart, dateEnd, func(entry *models.BillingLog) {
		account := entry.LogMemberAccount
		if account == "" {
			return
		}
		secs := parseTimeToSeconds(entry.LogUsedSecs)
		if secs <= 0 {
			// zero or unparseable usage never creates or mutates an accumulator
			return
		}

		acc, ok := usage[account]
		if !ok {
			acc = &models.MemberUsage{MemberAccount: account}
			usage[account] = acc
		}
		acc.TotalSeconds += secs
		acc.SessionCount++
		if t, ok := parseEntryDate(entry.LogDateLocal); ok {
			acc.Touch(t)
		}
	})
}

// accumulateTopups is pass 2: deposits from topup events. A member who only
// topped up and never played still gets an accumulator.
func (s *rankingService) accumulateTopups(ctx context.Context, usage map[string]*models.MemberUsage, dateStart, dateEnd time.Time) error {
	return s.walkPages(ctx, icafe.EventTopup, dateStart, dateEnd, func(entry *models.BillingLog) {
		account := entry.LogMemberAccount
		if account == "" {
			return
		}
		amount := parseMoney(entry.LogMoney) + parseMoney(entry.LogCard)
		if amount <= 0 {
			return
		}

		acc, ok := usage[account]
		if !ok {
			acc = &models.MemberUsage{MemberAccount: account}
			usage[account] = acc
			if t, tok := parseEntryDate(entry.LogDateLocal); tok {
				acc.Touch(t)
			}
		}
		acc.TotalTopups += amount
	})
}

// walkPages pages sequentially through one event category. The loop stops on
// a nil/empty page or when the page's own metadata says it is the last one;
// it never skips past a bad page. A fetch error aborts the entire run.
func (s *rankingService) walkPages(ctx context.Context, event string, dateStart, dateEnd time.Time, process func(*models.BillingLog)) error {
	for page := 1; ; page++ {
		p, err := s.fetcher.BillingLogs(ctx, icafe.BillingLogQuery{
			DateStart: dateStart,
			DateEnd:   dateEnd,
			Event:     event,
			Page:      page,
		})
		if err != nil {
			return errAggregationAborted(event, page, err)
		}
		if p == nil || len(p.Logs) == 0 {
			return nil
		}

		for i := range p.Logs {
			process(&p.Logs[i])
		}

		if p.LastPage() {
			return nil
		}
	}
}

// finalizeRows derives one immutable row per accumulator and sorts by total
// hours descending. Accumulators are emitted in account order first so that
// ties keep a deterministic relative order across runs.
func finalizeRows(usage map[string]*models.MemberUsage) []models.MemberRankingRow {
	accounts := make([]string, 0, len(usage))
	for account := range usage {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	rows := make([]models.MemberRankingRow, 0, len(usage))
	for _, account := range accounts {
		acc := usage[account]
		avg := 0.0
		if acc.SessionCount > 0 {
			avg = round1(float64(acc.TotalSeconds) / float64(acc.SessionCount) / 3600)
		}
		rows = append(rows, models.MemberRankingRow{
			MemberAccount:   acc.MemberAccount,
			TotalHours:      round1(float64(acc.TotalSeconds) / 3600),
			SessionCount:    acc.SessionCount,
			AvgSessionHours: avg,
			TotalTopups:     acc.TotalTopups,
			LastActive:      acc.LastActive,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalHours > rows[j].TotalHours
	})
	return rows
}
