package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"wishtracker/internal/repository"
	"wishtracker/internal/service"
)

type SaveHandler struct {
	saveService *service.SaveService
}

func NewSaveHandler(saveService *service.SaveService) *SaveHandler {
	return &SaveHandler{
		saveService: saveService,
	}
}

func (h *SaveHandler) List(w http.ResponseWriter, r *http.Request) {
	saves, err := h.saveService.Saves()
	if err != nil {
		slog.Error("failed to list saves", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list saves")
		return
	}

	writeJSON(w, http.StatusOK, saves)
}

func (h *SaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	save, err := h.saveService.Create(req.Name, req.Description)
	if err == service.ErrEmptySaveName {
		writeError(w, http.StatusUnprocessableEntity, "save name is required")
		return
	}
	if err == repository.ErrDuplicateSaveName {
		writeError(w, http.StatusConflict, "a save with that name already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create save", "error", err, "name", req.Name)
		writeError(w, http.StatusInternalServerError, "failed to create save")
		return
	}

	writeJSON(w, http.StatusCreated, save)
}

// Active returns the single active save. Zero active saves is an expected
// state right after setup; clients handle the 404 by prompting save
// creation.
func (h *SaveHandler) Active(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, save)
}

func (h *SaveHandler) Activate(w http.ResponseWriter, r *http.Request) {
	saveID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid save id")
		return
	}

	err = h.saveService.Activate(saveID)
	if err == repository.ErrSaveNotFound {
		writeError(w, http.StatusNotFound, "save not found")
		return
	}
	if err != nil {
		slog.Error("failed to activate save", "error", err, "save_id", saveID)
		writeError(w, http.StatusInternalServerError, "failed to activate save")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
