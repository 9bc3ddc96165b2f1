package service

import (
	"fmt"
	"time"

	"wishtracker/internal/model"
	"wishtracker/internal/repository"
)

const dateLayout = "2006-01-02"

type ProgressService struct {
	repo repository.ProgressRepository
}

func NewProgressService(repo repository.ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo}
}

// Upsert writes the progress row for a (save, wish) pair and returns the
// stored row. The completed date is always derived here: today when
// completed is set, null when it is cleared. Callers never supply dates.
func (s *ProgressService) Upsert(saveID, wishID int64, completed bool, notes string) (*model.Progress, error) {
	progress := &model.Progress{
		SaveID:    saveID,
		WishID:    wishID,
		Completed: completed,
		Notes:     notes,
	}

	if completed {
		date := time.Now().Format(dateLayout)
		progress.CompletedDate = &date
	}

	err := s.repo.Upsert(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	return s.repo.ByPair(saveID, wishID)
}
