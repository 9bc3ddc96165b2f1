package handler

import (
	"log/slog"
	"net/http"

	"wishtracker/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	data, name, err := h.exportService.Export()
	if err != nil {
		slog.Error("failed to export data", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export data")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, err = w.Write(data)
	if err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
