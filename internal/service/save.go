package service

import (
	"errors"
	"fmt"
	"strings"

	"wishtracker/internal/model"
	"wishtracker/internal/repository"
)

var (
	ErrEmptySaveName = errors.New("save name is required")
)

type SaveService struct {
	repo repository.SaveRepository
}

func NewSaveService(repo repository.SaveRepository) *SaveService {
	return &SaveService{repo: repo}
}

// Create inserts a new, inactive save. The name is trimmed and must be
// non-empty and unique.
func (s *SaveService) Create(name, description string) (*model.Save, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySaveName
	}

	save := &model.Save{
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	err := s.repo.Create(save)
	if err == repository.ErrDuplicateSaveName {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create save: %w", err)
	}

	return save, nil
}

func (s *SaveService) Saves() ([]*model.Save, error) {
	return s.repo.Saves()
}

// ActiveSave returns the single active save, or
// repository.ErrNoActiveSave. Zero active saves is a valid state the caller
// handles by prompting setup, not an error condition to retry.
func (s *SaveService) ActiveSave() (*model.Save, error) {
	return s.repo.ActiveSave()
}

func (s *SaveService) Activate(saveID int64) error {
	return s.repo.Activate(saveID)
}
