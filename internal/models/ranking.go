package models

import "time"

// MemberUsage is the transient per-member accumulator built during one
// ranking aggregation pass. It is created on the first qualifying event for a
// member and mutated in place for the remainder of the run; the map holding
// these is scoped to a single aggregation call and never shared.
type MemberUsage struct {
	MemberAccount string
	TotalSeconds  int64
	SessionCount  int64
	LastActive    *time.Time
	TotalTopups   float64
}

// Touch advances LastActive if t is strictly more recent than the stored
// value (or if none is stored yet). The comparison is a max, so processing
// order does not affect the result.
func (u *MemberUsage) Touch(t time.Time) {
	if u.LastActive == nil || t.After(*u.LastActive) {
		u.LastActive = &t
	}
}

// MemberRankingRow is one row of the derived ranking output, immutable once
// produced. Hours are rounded to one decimal.
type MemberRankingRow struct {
	MemberAccount   string     `json:"memberAccount"`
	TotalHours      float64    `json:"totalHours"`
	SessionCount    int64      `json:"sessionCount"`
	AvgSessionHours float64    `json:"avgSessionHours"`
	TotalTopups     float64    `json:"totalTopups"`
	LastActive      *time.Time `json:"lastActive"`
}
