package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// ArchiveHandler handles HTTP requests for sealed batch storage.
type ArchiveHandler struct {
	service *service.ArchiveService
}

// NewArchiveHandler creates a new ArchiveHandler.
func NewArchiveHandler(svc *service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{service: svc}
}

// HandleSave handles POST /api/v1/archives requests.
func (h *ArchiveHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req model.ArchiveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Save(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordsRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("saving archive failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/archives requests.
func (h *ArchiveHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	archives, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing archives failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"archives": archives})
}

// HandleExport handles GET /api/v1/archives/{archive_id}/export requests,
// streaming the batch in the plain-text report format.
func (h *ArchiveHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	archiveID := chi.URLParam(r, "archive_id")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.service.Export(r.Context(), archiveID, w); err != nil {
		if errors.Is(err, service.ErrArchiveNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("exporting archive failed", "archive_id", archiveID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// HandleDelete handles DELETE /api/v1/archives/{archive_id} requests.
func (h *ArchiveHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	archiveID := chi.URLParam(r, "archive_id")

	if err := h.service.Delete(r.Context(), archiveID); err != nil {
		if errors.Is(err, service.ErrArchiveNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("deleting archive failed", "archive_id", archiveID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
