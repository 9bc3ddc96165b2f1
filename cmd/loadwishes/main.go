package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"wishtracker/internal/config"
	"wishtracker/internal/db"
	"wishtracker/internal/icons"
	"wishtracker/internal/loader"
	"wishtracker/internal/logger"
	"wishtracker/internal/repository"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	csvPath := flag.String("csv", cfg.WishCSV, "path to the wish definitions CSV")
	iconDir := flag.String("icons", cfg.IconDir, "directory of icon .png files")
	yes := flag.Bool("yes", false, "confirm the reload; it deletes every wish and all progress for every save")
	flag.Parse()

	if !*yes {
		fmt.Fprintln(os.Stderr, "refusing to reload: this deletes every wish and all progress for every save")
		fmt.Fprintln(os.Stderr, "re-run with -yes to confirm")
		os.Exit(1)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close(database)

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	wishRepository := repository.NewWishRepository(database)
	ldr := loader.New(wishRepository, icons.NewResolver(*iconDir))

	result, err := ldr.LoadFromFile(*csvPath)
	if err != nil {
		slog.Error("failed to load wishes", "error", err, "csv", *csvPath)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d lifetime wishes\n", result.Loaded)
	fmt.Printf("Found icons for %d, placeholders for %d\n", result.IconsFound, result.Placeholders)

	sources := make([]string, 0, len(result.BySource))
	for source := range result.BySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	fmt.Println("\nWishes by source:")
	for _, source := range sources {
		fmt.Printf("  %s: %d\n", source, result.BySource[source])
	}
}
