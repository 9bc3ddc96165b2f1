package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"wishtracker/internal/model"
)

type WishRepository interface {
	ReplaceAll(wishes []*model.Wish) error
	Wishes() ([]*model.Wish, error)
	WishesWithProgress(saveID int64) ([]*model.WishWithProgress, error)
	Counts() (*model.TableCounts, error)
}

type wishRepository struct {
	db *sqlx.DB
}

func NewWishRepository(db *sqlx.DB) WishRepository {
	return &wishRepository{db: db}
}

// ReplaceAll deletes every wish and inserts the given ones in order, in one
// transaction. Deleting wishes cascades away all progress rows for every
// save; callers gate this behind an explicit confirmation.
func (r *wishRepository) ReplaceAll(wishes []*model.Wish) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM wishes`)
	if err != nil {
		return err
	}

	query := `INSERT INTO wishes (name, source, completion_type, icon_name, description)
	          VALUES ($1, $2, $3, $4, $5)`

	for i, wish := range wishes {
		_, err := tx.Exec(query, wish.Name, wish.Source, wish.CompletionType, wish.IconName, wish.Description)
		if err != nil {
			return fmt.Errorf("failed to insert wish %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func (r *wishRepository) Wishes() ([]*model.Wish, error) {
	var wishes []*model.Wish
	query := `SELECT id, name, source, completion_type, icon_name, description, created_date
	          FROM wishes ORDER BY id`

	err := r.db.Select(&wishes, query)
	if err != nil {
		return nil, err
	}

	return wishes, nil
}

func (r *wishRepository) WishesWithProgress(saveID int64) ([]*model.WishWithProgress, error) {
	var wishes []*model.WishWithProgress
	query := `SELECT
	            w.id, w.name, w.source, w.completion_type, w.icon_name,
	            COALESCE(p.completed, 0) AS completed,
	            p.completed_date,
	            COALESCE(p.notes, '') AS notes
	          FROM wishes w
	          LEFT JOIN wish_progress p ON w.id = p.wish_id AND p.save_id = $1
	          ORDER BY w.source, w.name`

	err := r.db.Select(&wishes, query, saveID)
	if err != nil {
		return nil, err
	}

	return wishes, nil
}

func (r *wishRepository) Counts() (*model.TableCounts, error) {
	counts := &model.TableCounts{}
	query := `SELECT
	            (SELECT COUNT(*) FROM saves) AS saves,
	            (SELECT COUNT(*) FROM wishes) AS wishes,
	            (SELECT COUNT(*) FROM wish_progress) AS progress`

	err := r.db.Get(counts, query)
	if err != nil {
		return nil, err
	}

	return counts, nil
}
