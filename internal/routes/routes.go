package routes

import (
	"net/http"

	"wishtracker/internal/app"
	"wishtracker/internal/handler"
	"wishtracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	save := handler.NewSaveHandler(app.SaveService)
	wish := handler.NewWishHandler(app.WishService, app.SaveService, app.Loader, app.Cfg.WishCSV)
	progress := handler.NewProgressHandler(app.ProgressService, app.SaveService)
	export := handler.NewExportHandler(app.ExportService)
	health := handler.NewHealthHandler(app.WishService)

	mux := http.NewServeMux()

	// Saves
	mux.HandleFunc("GET /api/saves", save.List)
	mux.HandleFunc("POST /api/saves", save.Create)
	mux.HandleFunc("GET /api/saves/active", save.Active)
	mux.HandleFunc("POST /api/saves/{id}/activate", save.Activate)

	// Wishes and progress
	mux.HandleFunc("GET /api/wishes", wish.List)
	mux.HandleFunc("POST /api/wishes/reload", wish.Reload)
	mux.HandleFunc("PUT /api/wishes/{id}/progress", progress.Update)
	mux.HandleFunc("GET /api/stats", wish.Stats)

	// Export and health
	mux.HandleFunc("GET /api/export", export.Download)
	mux.HandleFunc("GET /api/health", health.Health)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogging,
	)
}
