package icafe_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCafeID = "123456"

func newTestClient(t *testing.T, handler http.Handler) (*icafe.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := icafe.NewClient(server.URL, testCafeID, "test-token", 5*time.Second, zerolog.Nop())
	return client, server
}

func TestClient_SendsBearerAuth(t *testing.T) {
	t.Parallel()

	var gotAuth, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": []}`)
	}))

	_, err := client.PCList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/"+testCafeID+"/pcs", gotPath)
}

func TestClient_NotFoundMapsToErrUpstreamNotFound(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.MemberByID(context.Background(), 99)
	assert.ErrorIs(t, err, icafe.ErrUpstreamNotFound)
}

func TestClient_ServerErrorMapsToErrUpstreamUnavailable(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.AllMembers(context.Background())
	assert.ErrorIs(t, err, icafe.ErrUpstreamUnavailable)
}

func TestClient_NetworkErrorMapsToErrUpstreamUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on
	client := icafe.NewClient(server.URL, testCafeID, "test-token", time.Second, zerolog.Nop())

	_, err := client.AllMembers(context.Background())
	assert.ErrorIs(t, err, icafe.ErrUpstreamUnavailable)
}

func TestClient_UndecodableBodyMapsToErrUpstreamMalformed(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>definitely not json</html>`)
	}))

	_, err := client.AllMembers(context.Background())
	assert.ErrorIs(t, err, icafe.ErrUpstreamMalformed)
}

func TestBillingLogs_SuccessPage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "checkout", r.URL.Query().Get("event"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "2025-02-15", r.URL.Query().Get("date_start"))
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": {
			"log_list": [{"log_member_account": "alice", "log_used_secs": "00:45:00"}],
			"paging_info": {"total_records": 21, "pages": 2, "page": "2"}
		}}`)
	}))

	page, err := client.BillingLogs(context.Background(), icafe.BillingLogQuery{
		DateStart: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Event:     icafe.EventCheckout,
		Page:      2,
	})
	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "alice", page.Logs[0].LogMemberAccount)
	assert.True(t, page.LastPage())
}

func TestBillingLogs_NonSuccessEnvelopeCodeReturnsNilPage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 500, "message": "date range too large"}`)
	}))

	page, err := client.BillingLogs(context.Background(), icafe.BillingLogQuery{
		DateStart: time.Now().AddDate(0, -1, 0),
		DateEnd:   time.Now(),
		Event:     icafe.EventTopup,
		Page:      1,
	})
	require.NoError(t, err, "a non-success envelope is no-data, not a hard failure")
	assert.Nil(t, page)
}

func TestBillingLogs_MissingDataReturnsNilPage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": null}`)
	}))

	page, err := client.BillingLogs(context.Background(), icafe.BillingLogQuery{
		DateStart: time.Now().AddDate(0, 0, -7),
		DateEnd:   time.Now(),
		Event:     icafe.EventCheckout,
		Page:      1,
	})
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestAllMembers_FansOutAndMergesInPageOrder(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `{"code": 200, "message": "ok", "data": {
			"members": [{"member_id": %s0, "member_account": "member-p%s"}],
			"paging_info": {"total_records": 3, "pages": 3, "page": "%s"}
		}}`, page, page, page)
	}))

	members, err := client.AllMembers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())

	require.Len(t, members, 3)
	assert.Equal(t, "member-p1", members[0].MemberAccount)
	assert.Equal(t, "member-p2", members[1].MemberAccount)
	assert.Equal(t, "member-p3", members[2].MemberAccount)
}

func TestAllMembers_SinglePage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": {
			"members": [{"member_id": 1, "member_account": "alice"}, {"member_id": 2, "member_account": "bob"}],
			"paging_info": {"total_records": 2, "pages": 1, "page": "1"}
		}}`)
	}))

	members, err := client.AllMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].MemberAccount)
}

func TestMemberByAccount_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ali", r.URL.Query().Get("search_text"))
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": {
			"members": [{"member_id": 1, "member_account": "alice"}, {"member_id": 2, "member_account": "ali"}],
			"paging_info": {"total_records": 2, "pages": 1, "page": "1"}
		}}`)
	}))

	member, err := client.MemberByAccount(context.Background(), "ali")
	require.NoError(t, err)
	assert.Equal(t, int64(2), member.MemberID.Int64())
}

func TestMemberByAccount_NoExactMatch(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": {
			"members": [{"member_id": 1, "member_account": "alice"}],
			"paging_info": {"total_records": 1, "pages": 1, "page": "1"}
		}}`)
	}))

	_, err := client.MemberByAccount(context.Background(), "bob")
	assert.ErrorIs(t, err, icafe.ErrUpstreamNotFound)
}

func TestPCList_UnexpectedShapeFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": {"unexpected": "object"}}`)
	}))

	pcs, err := client.PCList(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pcs)
}

func TestConsoleDetail_EmptyDataMeansUnknownPC(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PC 14", r.URL.Query().Get("pc_name"))
		fmt.Fprint(w, `{"code": 200, "message": "ok"}`)
	}))

	detail, err := client.ConsoleDetail(context.Background(), "PC 14")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestConsoleDetail_ReturnsDetail(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "message": "ok", "data": {
			"pc_name": "PC14", "pc_status": "in_use", "member_account": "alice", "used_secs": "1260"
		}}`)
	}))

	detail, err := client.ConsoleDetail(context.Background(), "PC14")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "alice", detail.MemberAccount)
	assert.Equal(t, models.FlexInt(1260), detail.UsedSecs)
}
