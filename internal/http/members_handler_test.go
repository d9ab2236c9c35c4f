package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cafe-dashboard/internal/caches"
	"cafe-dashboard/internal/http/mocks"
	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/svcerrors"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListMembersHandler_FetchesAndCaches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	cache := caches.New(caches.NewMemoryStore())
	handler := NewListMembersHandler(mockDirectory, cache)

	members := []models.Member{{MemberID: 7, MemberAccount: "alice"}}
	mockDirectory.EXPECT().AllMembers(gomock.Any()).Return(members, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Member
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, members, got)

	cached, ok := cache.Get(req.Context(), caches.MembersKey(caches.APIPrefix))
	require.True(t, ok)
	assert.Equal(t, rr.Body.Bytes(), cached)
}

func TestListMembersHandler_ServesWarmedCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	cache := caches.New(caches.NewMemoryStore())
	handler := NewListMembersHandler(mockDirectory, cache)

	warmed := []byte(`[{"member_id":7,"member_account":"alice"}]`)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	cache.Set(req.Context(), caches.MembersKey(caches.APIPrefix), warmed, caches.DefaultTTL)

	rr := httptest.NewRecorder()
	require.NoError(t, handler.Handle(rr, req))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, warmed, rr.Body.Bytes())
}

func TestListMembersHandler_MapsUpstreamError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewListMembersHandler(mockDirectory, caches.New(caches.NewMemoryStore()))

	mockDirectory.EXPECT().AllMembers(gomock.Any()).Return(nil, fmt.Errorf("status 503: %w", icafe.ErrUpstreamUnavailable))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeUpstreamUnavailable, svcErr.Code)
	assert.Equal(t, http.StatusBadGateway, svcErr.HttpStatusCode)
}

func TestSearchMembersHandler_EmptyQuery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewSearchMembersHandler(mockDirectory)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/search?query=++", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSearchMembersHandler_ExactMatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewSearchMembersHandler(mockDirectory)

	member := &models.Member{MemberID: 7, MemberAccount: "alice"}
	mockDirectory.EXPECT().MemberByAccount(gomock.Any(), "alice").Return(member, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/search?query=alice", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Member
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].MemberAccount)
}

func TestSearchMembersHandler_NoMatchIsEmptyList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewSearchMembersHandler(mockDirectory)

	mockDirectory.EXPECT().
		MemberByAccount(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("%w: member account %q", icafe.ErrUpstreamNotFound, "ghost"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/search?query=ghost", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestMemberDetailHandler_InvalidID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewMemberDetailHandler(mockDirectory)

	for _, raw := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/members/"+raw, nil)
		req = withURLParam(req, "memberID", raw)
		rr := httptest.NewRecorder()

		err := handler.Handle(rr, req)

		require.Error(t, err, "memberID %q", raw)
		svcErr, ok := svcerrors.AsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, codeInvalidMemberID, svcErr.Code)
		assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
	}
}

func TestMemberDetailHandler_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewMemberDetailHandler(mockDirectory)

	member := &models.Member{MemberID: 7, MemberAccount: "alice"}
	mockDirectory.EXPECT().MemberByID(gomock.Any(), 7).Return(member, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/7", nil)
	req = withURLParam(req, "memberID", "7")
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.Member
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "alice", got.MemberAccount)
}

func TestMemberDetailHandler_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockMemberDirectory(ctrl)
	handler := NewMemberDetailHandler(mockDirectory)

	mockDirectory.EXPECT().
		MemberByID(gomock.Any(), 42).
		Return(nil, fmt.Errorf("status 404: %w", icafe.ErrUpstreamNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/42", nil)
	req = withURLParam(req, "memberID", "42")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeUpstreamNotFound, svcErr.Code)
	assert.Equal(t, http.StatusNotFound, svcErr.HttpStatusCode)
}
