package model

// Progress is the per-save completion state and notes for one wish.
// The (SaveID, WishID) pair is unique; writing progress for an existing
// pair replaces the row.
type Progress struct {
	ID            int64   `db:"id" json:"id"`
	SaveID        int64   `db:"save_id" json:"save_id"`
	WishID        int64   `db:"wish_id" json:"wish_id"`
	Completed     bool    `db:"completed" json:"completed"`
	CompletedDate *string `db:"completed_date" json:"completed_date"`
	Notes         string  `db:"notes" json:"notes"`
}

// ProgressReportRow is a flattened progress record joined with its save and
// wish names, as written to the export artifact.
type ProgressReportRow struct {
	SaveName      string  `db:"save_name"`
	WishName      string  `db:"wish_name"`
	Source        string  `db:"source"`
	Completed     bool    `db:"completed"`
	CompletedDate *string `db:"completed_date"`
	Notes         string  `db:"notes"`
}

// TableCounts reports row counts per table for the health endpoint.
type TableCounts struct {
	Saves    int `db:"saves" json:"saves"`
	Wishes   int `db:"wishes" json:"wishes"`
	Progress int `db:"progress" json:"progress"`
}
