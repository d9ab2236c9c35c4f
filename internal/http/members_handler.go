package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"cafe-dashboard/internal/caches"
	"cafe-dashboard/internal/icafe"
	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/svcerrors"
)

//go:generate mockgen -source=members_handler.go -destination=./mocks/members_handler_mock.go -package=mocks

// MemberDirectory is the slice of the upstream client the member routes use.
type MemberDirectory interface {
	AllMembers(ctx context.Context) ([]models.Member, error)
	MemberByID(ctx context.Context, memberID int) (*models.Member, error)
	MemberByAccount(ctx context.Context, account string) (*models.Member, error)
}

type listMembersHandler struct {
	directory MemberDirectory
	cache     *caches.Cache
}

func NewListMembersHandler(directory MemberDirectory, cache *caches.Cache) AppHttpHandler {
	return &listMembersHandler{directory: directory, cache: cache}
}

// Handle processes GET /members, serving the cached directory when warm.
func (h *listMembersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	body, err := h.cache.GetOrSet(r.Context(), caches.MembersKey(caches.APIPrefix), caches.DefaultTTL,
		func(ctx context.Context) ([]byte, error) {
			members, err := h.directory.AllMembers(ctx)
			if err != nil {
				return nil, err
			}
			return json.Marshal(members)
		})
	if err != nil {
		return mapUpstreamError(err)
	}

	writeRawJSON(w, body)
	return nil
}

type searchMembersHandler struct {
	directory MemberDirectory
}

func NewSearchMembersHandler(directory MemberDirectory) AppHttpHandler {
	return &searchMembersHandler{directory: directory}
}

// Handle processes GET /members/search?query=<account>. The result is always
// a list: empty for a blank query or no exact match, one element otherwise.
func (h *searchMembersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		return writeJSON(w, []models.Member{})
	}

	member, err := h.directory.MemberByAccount(r.Context(), query)
	if errors.Is(err, icafe.ErrUpstreamNotFound) {
		return writeJSON(w, []models.Member{})
	}
	if err != nil {
		return mapUpstreamError(err)
	}

	return writeJSON(w, []models.Member{*member})
}

type memberDetailHandler struct {
	directory MemberDirectory
}

func NewMemberDetailHandler(directory MemberDirectory) AppHttpHandler {
	return &memberDetailHandler{directory: directory}
}

// Handle processes GET /members/{memberID}.
func (h *memberDetailHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "memberID")
	memberID, err := strconv.Atoi(raw)
	if err != nil || memberID <= 0 {
		return svcerrors.NewInvalidArgumentError(codeInvalidMemberID, "member id must be a positive integer", err)
	}

	member, err := h.directory.MemberByID(r.Context(), memberID)
	if err != nil {
		return mapUpstreamError(err)
	}

	return writeJSON(w, member)
}
