package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"wishtracker/internal/model"
)

var (
	ErrProgressNotFound = errors.New("progress not found")
	ErrUnknownPair      = errors.New("unknown save or wish")
)

type ProgressRepository interface {
	Upsert(progress *model.Progress) error
	ByPair(saveID, wishID int64) (*model.Progress, error)
	Report() ([]*model.ProgressReportRow, error)
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert writes the progress row for a (save, wish) pair, replacing any
// existing row for that pair.
func (r *progressRepository) Upsert(progress *model.Progress) error {
	query := `INSERT INTO wish_progress (save_id, wish_id, completed, completed_date, notes)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (save_id, wish_id) DO UPDATE SET
	            completed = excluded.completed,
	            completed_date = excluded.completed_date,
	            notes = excluded.notes`

	_, err := r.db.Exec(query,
		progress.SaveID,
		progress.WishID,
		progress.Completed,
		progress.CompletedDate,
		progress.Notes,
	)
	if isForeignKeyViolation(err) {
		return ErrUnknownPair
	}

	return err
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || // sqlite
		strings.Contains(msg, "violates foreign key constraint") // postgres
}

func (r *progressRepository) ByPair(saveID, wishID int64) (*model.Progress, error) {
	progress := &model.Progress{}
	query := `SELECT id, save_id, wish_id, completed, completed_date, notes
	          FROM wish_progress WHERE save_id = $1 AND wish_id = $2`

	err := r.db.Get(progress, query, saveID, wishID)
	if err == sql.ErrNoRows {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}

	return progress, nil
}

func (r *progressRepository) Report() ([]*model.ProgressReportRow, error) {
	var rows []*model.ProgressReportRow
	query := `SELECT
	            s.name AS save_name,
	            w.name AS wish_name,
	            w.source,
	            p.completed,
	            p.completed_date,
	            p.notes
	          FROM wish_progress p
	          JOIN saves s ON p.save_id = s.id
	          JOIN wishes w ON p.wish_id = w.id
	          ORDER BY s.name, w.source, w.name`

	err := r.db.Select(&rows, query)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
