package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/svcerrors"
)

//go:generate mockgen -source=pcs_handler.go -destination=./mocks/pcs_handler_mock.go -package=mocks

// PCDirectory is the slice of the upstream client the PC routes use.
type PCDirectory interface {
	PCList(ctx context.Context) ([]models.PC, error)
	ConsoleDetail(ctx context.Context, pcName string) (*models.ConsoleDetail, error)
}

type listPCsHandler struct {
	directory PCDirectory
}

func NewListPCsHandler(directory PCDirectory) AppHttpHandler {
	return &listPCsHandler{directory: directory}
}

// Handle processes GET /pcs. The PC list is small and changes with live
// sessions, so it is served straight from the upstream, uncached.
func (h *listPCsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	pcs, err := h.directory.PCList(r.Context())
	if err != nil {
		return mapUpstreamError(err)
	}

	return writeJSON(w, pcs)
}

type consoleDetailHandler struct {
	directory PCDirectory
}

func NewConsoleDetailHandler(directory PCDirectory) AppHttpHandler {
	return &consoleDetailHandler{directory: directory}
}

// Handle processes GET /pcs/{pcName}/console. An unknown PC is a 404, whether
// the upstream said so explicitly or just returned no data.
func (h *consoleDetailHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	pcName := chi.URLParam(r, "pcName")

	detail, err := h.directory.ConsoleDetail(r.Context(), pcName)
	if err != nil {
		return mapUpstreamError(err)
	}
	if detail == nil {
		return svcerrors.NewNotFoundError(codeUpstreamNotFound, "pc not found", nil)
	}

	return writeJSON(w, detail)
}
