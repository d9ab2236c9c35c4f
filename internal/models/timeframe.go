package models

import (
	"fmt"
	"time"
)

// Timeframe selects the date window of a ranking aggregation.
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

// AllTimeframes lists every known timeframe, in refresh-sweep order.
func AllTimeframes() []Timeframe {
	return []Timeframe{TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeAll}
}

// ParseTimeframe validates a raw query value. The empty string is not a valid
// timeframe; callers apply their own default before parsing.
func ParseTimeframe(raw string) (Timeframe, error) {
	switch Timeframe(raw) {
	case TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeAll:
		return Timeframe(raw), nil
	default:
		return "", fmt.Errorf("invalid timeframe %q: must be one of day, week, month, all", raw)
	}
}

// Window resolves the timeframe to a concrete [start, end] interval ending at now.
// "all" is a trailing one-year window, a bounded approximation of all time:
// unbounded pagination against the upstream would be unbounded in cost.
func (tf Timeframe) Window(now time.Time) (time.Time, time.Time) {
	switch tf {
	case TimeframeDay:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now
	case TimeframeWeek:
		return now.AddDate(0, 0, -7), now
	case TimeframeMonth:
		return now.AddDate(0, -1, 0), now
	default:
		return now.AddDate(-1, 0, 0), now
	}
}
