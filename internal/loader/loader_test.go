package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"wishtracker/internal/db"
	"wishtracker/internal/icons"
	"wishtracker/internal/model"
	"wishtracker/internal/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	t.Cleanup(func() { conn.Close() })

	err = db.RunMigrations(conn.DB, "sqlite")
	if err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifetime_wishes.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func writeIcons(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0644)
		if err != nil {
			t.Fatalf("write icon: %v", err)
		}
	}
	return dir
}

func TestLoadFromFile(t *testing.T) {
	conn := newTestDB(t)
	wishes := repository.NewWishRepository(conn)

	csvPath := writeCSV(t, `Name,Source,Completion_Type,Extra
Fashion Phenomenon,Base Game,Checkmark,ignored
Master Chef,Base Game,Checkmark,ignored
 Deep-Sea Diver , Island Paradise , Checkmark ,
`)
	iconDir := writeIcons(t, "w_lifetime_stylist.png")

	ldr := New(wishes, icons.NewResolver(iconDir))
	result, err := ldr.LoadFromFile(csvPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if result.Loaded != 3 {
		t.Errorf("expected 3 loaded, got %d", result.Loaded)
	}
	if result.IconsFound != 1 || result.Placeholders != 2 {
		t.Errorf("expected 1 icon and 2 placeholders, got %d and %d",
			result.IconsFound, result.Placeholders)
	}
	if result.BySource["Base Game"] != 2 || result.BySource["Island Paradise"] != 1 {
		t.Errorf("unexpected per-source counts: %v", result.BySource)
	}

	stored, err := wishes.Wishes()
	if err != nil {
		t.Fatalf("wishes: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 wishes stored, got %d", len(stored))
	}

	// Explicit mapping resolves the irregular stylist filename.
	if stored[0].Name != "Fashion Phenomenon" || stored[0].IconName != "w_lifetime_stylist.png" {
		t.Errorf("unexpected first wish: %+v", stored[0])
	}
	if stored[1].Name != "Master Chef" || stored[1].IconName != icons.Placeholder {
		t.Errorf("unexpected second wish: %+v", stored[1])
	}
	// Fields are trimmed.
	if stored[2].Name != "Deep-Sea Diver" || stored[2].Source != "Island Paradise" {
		t.Errorf("expected trimmed fields, got %+v", stored[2])
	}
}

func TestLoadReplacesAndCascades(t *testing.T) {
	conn := newTestDB(t)
	wishes := repository.NewWishRepository(conn)
	progress := repository.NewProgressRepository(conn)

	err := wishes.ReplaceAll([]*model.Wish{{
		Name:           "Old Wish",
		Source:         "Base Game",
		CompletionType: model.CompletionTypeCheckmark,
		IconName:       icons.Placeholder,
	}})
	if err != nil {
		t.Fatalf("seed wishes: %v", err)
	}
	stored, err := wishes.Wishes()
	if err != nil {
		t.Fatalf("wishes: %v", err)
	}
	err = progress.Upsert(&model.Progress{SaveID: 1, WishID: stored[0].ID, Completed: true})
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	csvPath := writeCSV(t, "Name,Source,Completion_Type\nChess Legend,Base Game,Checkmark\n")
	ldr := New(wishes, icons.NewResolver(writeIcons(t)))

	result, err := ldr.LoadFromFile(csvPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if result.Loaded != 1 {
		t.Errorf("expected 1 loaded, got %d", result.Loaded)
	}

	var progressCount int
	err = conn.Get(&progressCount, `SELECT COUNT(*) FROM wish_progress`)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if progressCount != 0 {
		t.Errorf("expected reload to clear all progress, got %d rows", progressCount)
	}
}

func TestLoadMissingFileAbortsBeforeDelete(t *testing.T) {
	conn := newTestDB(t)
	wishes := repository.NewWishRepository(conn)

	err := wishes.ReplaceAll([]*model.Wish{{
		Name:           "Old Wish",
		Source:         "Base Game",
		CompletionType: model.CompletionTypeCheckmark,
		IconName:       icons.Placeholder,
	}})
	if err != nil {
		t.Fatalf("seed wishes: %v", err)
	}

	ldr := New(wishes, icons.NewResolver(writeIcons(t)))
	_, err = ldr.LoadFromFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}

	stored, err := wishes.Wishes()
	if err != nil {
		t.Fatalf("wishes: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("expected existing wishes untouched, got %d", len(stored))
	}
}

func TestLoadMissingColumnAbortsBeforeDelete(t *testing.T) {
	conn := newTestDB(t)
	wishes := repository.NewWishRepository(conn)

	err := wishes.ReplaceAll([]*model.Wish{{
		Name:           "Old Wish",
		Source:         "Base Game",
		CompletionType: model.CompletionTypeCheckmark,
		IconName:       icons.Placeholder,
	}})
	if err != nil {
		t.Fatalf("seed wishes: %v", err)
	}

	csvPath := writeCSV(t, "Name,Source\nChess Legend,Base Game\n")
	ldr := New(wishes, icons.NewResolver(writeIcons(t)))

	_, err = ldr.LoadFromFile(csvPath)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}

	stored, err := wishes.Wishes()
	if err != nil {
		t.Fatalf("wishes: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("expected existing wishes untouched, got %d", len(stored))
	}
}
