package model

// Save is a named progress-tracking profile, analogous to a game save slot.
// At most one save is active at a time.
type Save struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	CreatedDate string `db:"created_date" json:"created_date"`
	IsActive    bool   `db:"is_active" json:"is_active"`
}
