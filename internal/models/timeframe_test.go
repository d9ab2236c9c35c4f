package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeframe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Timeframe
		wantErr bool
	}{
		{"day", TimeframeDay, false},
		{"week", TimeframeWeek, false},
		{"month", TimeframeMonth, false},
		{"all", TimeframeAll, false},
		{"", "", true},
		{"year", "", true},
		{"MONTH", "", true},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			got, err := ParseTimeframe(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeframe_Window(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		tf        Timeframe
		wantStart time.Time
	}{
		{TimeframeDay, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{TimeframeWeek, time.Date(2025, 3, 8, 14, 30, 45, 0, time.UTC)},
		{TimeframeMonth, time.Date(2025, 2, 15, 14, 30, 45, 0, time.UTC)},
		{TimeframeAll, time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			start, end := tt.tf.Window(now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, now, end, "window always ends at now")
		})
	}
}

func TestAllTimeframes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Timeframe{TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeAll}, AllTimeframes())
}
