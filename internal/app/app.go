package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"wishtracker/internal/config"
	"wishtracker/internal/db"
	"wishtracker/internal/icons"
	"wishtracker/internal/loader"
	"wishtracker/internal/repository"
	"wishtracker/internal/service"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	SaveService     *service.SaveService
	WishService     *service.WishService
	ProgressService *service.ProgressService
	ExportService   *service.ExportService
	Loader          *loader.Loader
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	saveRepository := repository.NewSaveRepository(database)
	wishRepository := repository.NewWishRepository(database)
	progressRepository := repository.NewProgressRepository(database)

	// Services
	saveService := service.NewSaveService(saveRepository)
	wishService := service.NewWishService(wishRepository)
	progressService := service.NewProgressService(progressRepository)
	exportService := service.NewExportService(saveRepository, wishRepository, progressRepository)

	// Loader
	resolver := icons.NewResolver(cfg.IconDir)
	wishLoader := loader.New(wishRepository, resolver)

	return &App{
		Cfg:             cfg,
		DB:              database,
		SaveService:     saveService,
		WishService:     wishService,
		ProgressService: progressService,
		ExportService:   exportService,
		Loader:          wishLoader,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
