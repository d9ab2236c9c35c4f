package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"number", `42`, 42},
		{"numeric string", `"17"`, 17},
		{"float string", `"3.0"`, 3},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"garbage", `"not-a-number"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, f.Int64())
		})
	}
}

func TestBillingLogPage_PagingVariants(t *testing.T) {
	t.Parallel()

	// The upstream serves page as a string and pages as a number.
	raw := `{
		"log_list": [{"log_id": 1, "log_member_account": "alice", "log_used_secs": "01:00:00"}],
		"paging_info": {"total_records": 31, "pages": 2, "page": "1"}
	}`

	var page BillingLogPage
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	require.Len(t, page.Logs, 1)
	assert.Equal(t, "alice", page.Logs[0].LogMemberAccount)
	assert.Equal(t, 1, page.Paging.Page.Int())
	assert.Equal(t, 2, page.Paging.Pages.Int())
	assert.False(t, page.LastPage())

	page.Paging.Page = 2
	assert.True(t, page.LastPage())
}
