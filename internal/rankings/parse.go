package rankings

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// parseTimeToSeconds converts the upstream log_used_secs field to seconds.
// The field is served either as "HH:MM:SS" (hours may exceed 24) or as a bare
// number of seconds. Anything unparseable is 0, which callers treat as a
// non-event.
func parseTimeToSeconds(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	parts := strings.Split(raw, ":")
	if len(parts) == 3 {
		h, errH := strconv.ParseInt(parts[0], 10, 64)
		m, errM := strconv.ParseInt(parts[1], 10, 64)
		s, errS := strconv.ParseInt(parts[2], 10, 64)
		if errH != nil || errM != nil || errS != nil || h < 0 || m < 0 || s < 0 {
			return 0
		}
		return h*3600 + m*60 + s
	}

	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}

// parseMoney converts an upstream monetary string to a float, with 0 for
// anything non-numeric.
func parseMoney(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// entryDateLayouts are the formats observed for log_date_local, most common first.
var entryDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// parseEntryDate parses the local-date timestamp of a billing log entry.
func parseEntryDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
