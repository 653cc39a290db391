package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sakif/monkey-intelligence/internal/export"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/service"
)

const (
	msgFetchProgress  = "Failed to fetch progress"
	msgSaveProgress   = "Failed to save progress"
	msgExportProgress = "Failed to export progress"
)

// ProgressHandler serves game results.
type ProgressHandler struct {
	progress *service.ProgressService
	logger   *slog.Logger
}

func NewProgressHandler(progress *service.ProgressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, logger: logger}
}

// HandleList returns a user's results in the order they were saved, or [].
//
// HTTP: GET /api/progress/{userId}
func (h *ProgressHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgFetchProgress)
		return
	}

	list, err := h.progress.List(r.Context(), userID)
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgFetchProgress)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleSave records a finished game and echoes it back.
//
// HTTP: POST /api/progress
// REQUEST BODY: {"userId": 1, "gameType": "math_easy", "score": 7, "completedAt": "..."}
func (h *ProgressHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var p model.GameProgress
	if err := decodeJSON(w, r, &p); err != nil {
		writeClassroomError(w, r, h.logger, err, msgSaveProgress)
		return
	}

	saved, err := h.progress.Save(r.Context(), &p)
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgSaveProgress)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// HandleExport sends a user's results as an Excel workbook.
//
// HTTP: GET /api/progress/{userId}/export
// Auth: teacher
//
// The workbook is built in memory first so a failure can still become a
// JSON error instead of a truncated download.
func (h *ProgressHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		writeError(w, r, h.logger, err, msgExportProgress)
		return
	}

	var buf bytes.Buffer
	if err := h.progress.Export(r.Context(), userID, &buf); err != nil {
		writeError(w, r, h.logger, err, msgExportProgress)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="progress_%d.xlsx"`, userID))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("export: client went away", slog.String("error", err.Error()))
	}
}
