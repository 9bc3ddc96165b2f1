package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"wishtracker/internal/repository"
)

// Sheet names in the export artifact, matching the original tracker's
// spreadsheet layout.
const (
	SheetSaves    = "Saves"
	SheetWishes   = "Lifetime Wishes"
	SheetProgress = "Progress"
)

// ExportService flattens the whole store into a three-sheet spreadsheet:
// raw saves, raw wishes, and a progress report joined with save and wish
// names.
type ExportService struct {
	saves    repository.SaveRepository
	wishes   repository.WishRepository
	progress repository.ProgressRepository
}

func NewExportService(
	saves repository.SaveRepository,
	wishes repository.WishRepository,
	progress repository.ProgressRepository,
) *ExportService {
	return &ExportService{
		saves:    saves,
		wishes:   wishes,
		progress: progress,
	}
}

// Export builds the spreadsheet and returns its bytes plus a suggested
// filename.
func (s *ExportService) Export() ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", SheetSaves)
	if err != nil {
		return nil, "", err
	}
	for _, sheet := range []string{SheetWishes, SheetProgress} {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, "", err
		}
	}

	err = s.writeSaves(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write saves sheet: %w", err)
	}
	err = s.writeWishes(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write wishes sheet: %w", err)
	}
	err = s.writeProgress(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write progress sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode spreadsheet: %w", err)
	}

	name := fmt.Sprintf("wishtracker_export_%s_%s.xlsx",
		time.Now().Format("20060102_150405"), uuid.New().String()[:8])

	return buf.Bytes(), name, nil
}

func (s *ExportService) writeSaves(f *excelize.File) error {
	saves, err := s.saves.Saves()
	if err != nil {
		return err
	}

	rows := [][]any{{"id", "name", "description", "created_date", "is_active"}}
	for _, save := range saves {
		rows = append(rows, []any{save.ID, save.Name, save.Description, save.CreatedDate, save.IsActive})
	}

	return writeSheet(f, SheetSaves, rows)
}

func (s *ExportService) writeWishes(f *excelize.File) error {
	wishes, err := s.wishes.Wishes()
	if err != nil {
		return err
	}

	rows := [][]any{{"id", "name", "source", "completion_type", "icon_name", "description", "created_date"}}
	for _, wish := range wishes {
		rows = append(rows, []any{wish.ID, wish.Name, wish.Source, wish.CompletionType, wish.IconName, wish.Description, wish.CreatedDate})
	}

	return writeSheet(f, SheetWishes, rows)
}

func (s *ExportService) writeProgress(f *excelize.File) error {
	report, err := s.progress.Report()
	if err != nil {
		return err
	}

	rows := [][]any{{"save_name", "lifetime_wish_name", "source", "completed", "completed_date", "notes"}}
	for _, row := range report {
		date := ""
		if row.CompletedDate != nil {
			date = *row.CompletedDate
		}
		rows = append(rows, []any{row.SaveName, row.WishName, row.Source, row.Completed, date, row.Notes})
	}

	return writeSheet(f, SheetProgress, rows)
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		err = f.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return err
		}
	}
	return nil
}
