package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"wishtracker/internal/model"
)

var (
	ErrSaveNotFound      = errors.New("save not found")
	ErrDuplicateSaveName = errors.New("save name already exists")
	ErrNoActiveSave      = errors.New("no active save")
)

type SaveRepository interface {
	Create(save *model.Save) error
	Saves() ([]*model.Save, error)
	ByID(saveID int64) (*model.Save, error)
	ActiveSave() (*model.Save, error)
	Activate(saveID int64) error
}

type saveRepository struct {
	db *sqlx.DB
}

func NewSaveRepository(db *sqlx.DB) SaveRepository {
	return &saveRepository{db: db}
}

func (r *saveRepository) Create(save *model.Save) error {
	query := `INSERT INTO saves (name, description, is_active) VALUES ($1, $2, 0)`

	result, err := r.db.Exec(query, save.Name, save.Description)
	if isUniqueViolation(err) {
		return ErrDuplicateSaveName
	}
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	// Re-read so the caller sees the stored defaults (created_date).
	created, err := r.ByID(id)
	if err != nil {
		return err
	}
	*save = *created

	return nil
}

func (r *saveRepository) Saves() ([]*model.Save, error) {
	var saves []*model.Save
	query := `SELECT id, name, description, created_date, is_active
	          FROM saves ORDER BY is_active DESC, name`

	err := r.db.Select(&saves, query)
	if err != nil {
		return nil, err
	}

	return saves, nil
}

func (r *saveRepository) ByID(saveID int64) (*model.Save, error) {
	save := &model.Save{}
	query := `SELECT id, name, description, created_date, is_active
	          FROM saves WHERE id = $1`

	err := r.db.Get(save, query, saveID)
	if err == sql.ErrNoRows {
		return nil, ErrSaveNotFound
	}
	if err != nil {
		return nil, err
	}

	return save, nil
}

func (r *saveRepository) ActiveSave() (*model.Save, error) {
	save := &model.Save{}
	query := `SELECT id, name, description, created_date, is_active
	          FROM saves WHERE is_active = 1 LIMIT 1`

	err := r.db.Get(save, query)
	if err == sql.ErrNoRows {
		return nil, ErrNoActiveSave
	}
	if err != nil {
		return nil, err
	}

	return save, nil
}

// Activate clears the active flag on every save and sets it on the target,
// in one transaction. A crash mid-operation can leave zero active saves but
// never two.
func (r *saveRepository) Activate(saveID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE saves SET is_active = 0`)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`UPDATE saves SET is_active = 1 WHERE id = $1`, saveID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSaveNotFound
	}

	return tx.Commit()
}

// isUniqueViolation detects a unique constraint error from either supported
// driver without importing driver-specific error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}
