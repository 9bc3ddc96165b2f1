package handler

import (
	"log/slog"
	"net/http"

	"wishtracker/internal/model"
	"wishtracker/internal/service"
)

type HealthHandler struct {
	wishService *service.WishService
}

func NewHealthHandler(wishService *service.WishService) *HealthHandler {
	return &HealthHandler{
		wishService: wishService,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	counts, err := h.wishService.Counts()
	if err != nil {
		slog.Error("health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status string             `json:"status"`
		Counts *model.TableCounts `json:"counts"`
	}{
		Status: "ok",
		Counts: counts,
	})
}
