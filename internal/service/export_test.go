package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"wishtracker/internal/model"
	"wishtracker/internal/repository"
)

func TestExportRoundTrip(t *testing.T) {
	conn := newTestDB(t)
	saves := repository.NewSaveRepository(conn)
	wishes := repository.NewWishRepository(conn)
	progress := repository.NewProgressRepository(conn)

	err := wishes.ReplaceAll([]*model.Wish{
		{Name: "Chess Legend", Source: "Base Game", CompletionType: "Checkmark", IconName: "chess_legend.png"},
		{Name: "Master Chef", Source: "Base Game", CompletionType: "Checkmark", IconName: "PLACEHOLDER"},
	})
	if err != nil {
		t.Fatalf("seed wishes: %v", err)
	}
	stored, err := wishes.Wishes()
	if err != nil {
		t.Fatalf("wishes: %v", err)
	}

	date := "2024-01-15"
	err = progress.Upsert(&model.Progress{
		SaveID:        1,
		WishID:        stored[0].ID,
		Completed:     true,
		CompletedDate: &date,
		Notes:         "checkmate",
	})
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	svc := NewExportService(saves, wishes, progress)
	data, name, err := svc.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if !strings.HasPrefix(name, "wishtracker_export_") || !strings.HasSuffix(name, ".xlsx") {
		t.Errorf("unexpected artifact name %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SheetSaves, SheetWishes, SheetProgress}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for _, sheet := range want {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			t.Fatalf("sheet index %q: %v", sheet, err)
		}
		if idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	savesRows, err := f.GetRows(SheetSaves)
	if err != nil {
		t.Fatalf("saves rows: %v", err)
	}
	if len(savesRows) != 2 { // header + seeded save
		t.Fatalf("expected 2 save rows, got %d", len(savesRows))
	}
	if savesRows[1][1] != "My Main Save" {
		t.Errorf("expected seeded save name, got %q", savesRows[1][1])
	}

	wishRows, err := f.GetRows(SheetWishes)
	if err != nil {
		t.Fatalf("wish rows: %v", err)
	}
	if len(wishRows) != 3 {
		t.Fatalf("expected 3 wish rows, got %d", len(wishRows))
	}

	progressRows, err := f.GetRows(SheetProgress)
	if err != nil {
		t.Fatalf("progress rows: %v", err)
	}
	if len(progressRows) != 2 {
		t.Fatalf("expected 2 progress rows, got %d", len(progressRows))
	}
	row := progressRows[1]
	if row[0] != "My Main Save" || row[1] != "Chess Legend" || row[2] != "Base Game" {
		t.Errorf("unexpected joined report row: %v", row)
	}
	if row[3] != "TRUE" || row[4] != date || row[5] != "checkmate" {
		t.Errorf("unexpected progress values: %v", row)
	}
}
