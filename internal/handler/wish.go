package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"wishtracker/internal/loader"
	"wishtracker/internal/repository"
	"wishtracker/internal/service"
)

type WishHandler struct {
	wishService *service.WishService
	saveService *service.SaveService
	loader      *loader.Loader
	wishCSV     string
}

func NewWishHandler(
	wishService *service.WishService,
	saveService *service.SaveService,
	ldr *loader.Loader,
	wishCSV string,
) *WishHandler {
	return &WishHandler{
		wishService: wishService,
		saveService: saveService,
		loader:      ldr,
		wishCSV:     wishCSV,
	}
}

func (h *WishHandler) List(w http.ResponseWriter, r *http.Request) {
	saveID, ok := h.saveIDParam(w, r)
	if !ok {
		return
	}

	wishes, err := h.wishService.WishesWithProgress(saveID)
	if err != nil {
		slog.Error("failed to list wishes", "error", err, "save_id", saveID)
		writeError(w, http.StatusInternalServerError, "failed to list wishes")
		return
	}

	writeJSON(w, http.StatusOK, wishes)
}

func (h *WishHandler) Stats(w http.ResponseWriter, r *http.Request) {
	saveID, ok := h.saveIDParam(w, r)
	if !ok {
		return
	}

	stats, err := h.wishService.Stats(saveID)
	if err != nil {
		slog.Error("failed to compute stats", "error", err, "save_id", saveID)
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Reload replaces the wish table from the configured CSV file. This deletes
// every wish and cascades away all progress for every save, so the request
// body must carry an explicit confirmation.
func (h *WishHandler) Reload(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Confirm {
		writeError(w, http.StatusConflict,
			"reloading wishes deletes all wishes and all progress; set confirm to true")
		return
	}

	result, err := h.loader.LoadFromFile(h.wishCSV)
	if errors.Is(err, loader.ErrInputNotFound) {
		writeError(w, http.StatusNotFound, "wish input file not found")
		return
	}
	if errors.Is(err, loader.ErrMissingColumn) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to reload wishes", "error", err, "csv", h.wishCSV)
		writeError(w, http.StatusInternalServerError, "failed to reload wishes")
		return
	}

	slog.Info("wishes reloaded",
		"loaded", result.Loaded,
		"icons_found", result.IconsFound,
		"placeholders", result.Placeholders,
	)

	writeJSON(w, http.StatusOK, result)
}

// saveIDParam resolves the save_id query parameter, defaulting to the active
// save. On failure it writes the response and returns ok=false.
func (h *WishHandler) saveIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("save_id")
	if raw == "" {
		save, err := h.saveService.ActiveSave()
		if err == repository.ErrNoActiveSave {
			writeError(w, http.StatusNotFound, "no active save")
			return 0, false
		}
		if err != nil {
			slog.Error("failed to get active save", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get active save")
			return 0, false
		}
		return save.ID, true
	}

	saveID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid save_id")
		return 0, false
	}

	return saveID, true
}
