package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"wishtracker/internal/repository"
	"wishtracker/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
	saveService     *service.SaveService
}

func NewProgressHandler(
	progressService *service.ProgressService,
	saveService *service.SaveService,
) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		saveService:     saveService,
	}
}

// Update writes the progress row for one wish. The completed date is derived
// server-side; any date in the request is ignored.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	wishID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid wish id")
		return
	}

	var req struct {
		SaveID    int64  `json:"save_id"`
		Completed bool   `json:"completed"`
		Notes     string `json:"notes"`
	}
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saveID := req.SaveID
	if saveID == 0 {
		save, err := h.saveService.ActiveSave()
		if err == repository.ErrNoActiveSave {
			writeError(w, http.StatusNotFound, "no active save")
			return
		}
		if err != nil {
			slog.Error("failed to get active save", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get active save")
			return
		}
		saveID = save.ID
	}

	progress, err := h.progressService.Upsert(saveID, wishID, req.Completed, req.Notes)
	if errors.Is(err, repository.ErrUnknownPair) {
		writeError(w, http.StatusNotFound, "unknown save or wish")
		return
	}
	if err != nil {
		slog.Error("failed to update progress", "error", err, "save_id", saveID, "wish_id", wishID)
		writeError(w, http.StatusInternalServerError, "failed to update progress")
		return
	}

	writeJSON(w, http.StatusOK, progress)
}
