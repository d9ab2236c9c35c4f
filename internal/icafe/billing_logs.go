package icafe

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/loggers"
)

const resourceBillingLogs = "billingLogs"

// Billing log event categories accepted by the upstream event filter. A
// billing-log fetch is always restricted to exactly one category; usage and
// topup walks are never mixed in a single page sequence.
const (
	EventCheckout = "checkout"
	EventTopup    = "topup"
)

const billingDateLayout = "2006-01-02"

// BillingLogQuery selects one page of event-filtered billing logs.
type BillingLogQuery struct {
	DateStart time.Time
	DateEnd   time.Time
	Member    string // optional account filter
	Event     string // exactly one of EventCheckout, EventTopup
	Page      int
}

// BillingLogs fetches a single page of billing logs. It returns (nil, nil)
// when the upstream answers with a non-success envelope code or without a
// data field: callers must treat a nil page as "no more data" and stop their
// page walk there rather than skipping ahead. Transport-level failures are
// returned as errors and must abort the caller's walk.
func (c *Client) BillingLogs(ctx context.Context, q BillingLogQuery) (*models.BillingLogPage, error) {
	query := url.Values{}
	query.Set("date_start", q.DateStart.Format(billingDateLayout))
	query.Set("date_end", q.DateEnd.Format(billingDateLayout))
	query.Set("event", q.Event)
	query.Set("page", strconv.Itoa(q.Page))
	if q.Member != "" {
		query.Set("member", q.Member)
	}

	env, err := c.fetchPage(ctx, resourceBillingLogs, query)
	if err != nil {
		return nil, err
	}

	if env.Code.Int() != envelopeOKCode || !env.hasData() {
		loggers.Ctx(ctx).Debug().
			Int(loggers.FieldPage, q.Page).
			Int("envelope_code", env.Code.Int()).
			Msg("billing log page unavailable, treating as end of data")
		return nil, nil
	}

	var page models.BillingLogPage
	if err := decodeData(env, resourceBillingLogs, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
