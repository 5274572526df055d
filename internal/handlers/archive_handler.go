package handlers

import (
	"net/http"
	"strconv"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/archive"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/models"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/utils"
)

// ArchiveHandler serves archived interview transcripts. The archiver may be
// nil when no database is configured; endpoints then report the feature as
// unavailable.
type ArchiveHandler struct {
	archiver *archive.Archiver
}

func NewArchiveHandler(archiver *archive.Archiver) *ArchiveHandler {
	return &ArchiveHandler{archiver: archiver}
}

func (h *ArchiveHandler) ListTranscriptsHandler(w http.ResponseWriter, r *http.Request) {
	if h.archiver == nil {
		utils.JSON(w, http.StatusServiceUnavailable, models.ErrorResponse{
			Code:    "archive_disabled",
			Message: "Transcript archive is not configured",
		})
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	transcripts, err := h.archiver.ListTranscripts(limit)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "archive_error",
			Message: "Failed to list transcripts",
		})
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"transcripts": transcripts,
		"count":       len(transcripts),
	})
}
