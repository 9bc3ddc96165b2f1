package model

const (
	// CompletionTypeCheckmark is the default completion type for a wish.
	CompletionTypeCheckmark = "Checkmark"
)

// Wish is a fixed, reloadable achievement definition ("lifetime wish"),
// independent of any save. The wish table is bulk-replaced by the loader.
type Wish struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Source         string `db:"source" json:"source"`
	CompletionType string `db:"completion_type" json:"completion_type"`
	IconName       string `db:"icon_name" json:"icon_name"`
	Description    string `db:"description" json:"description"`
	CreatedDate    string `db:"created_date" json:"created_date"`
}

// WishWithProgress is a wish joined with one save's progress row. Wishes
// without a progress row carry the defaults: not completed, empty notes.
type WishWithProgress struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Source         string  `db:"source" json:"source"`
	CompletionType string  `db:"completion_type" json:"completion_type"`
	IconName       string  `db:"icon_name" json:"icon_name"`
	Completed      bool    `db:"completed" json:"completed"`
	CompletedDate  *string `db:"completed_date" json:"completed_date"`
	Notes          string  `db:"notes" json:"notes"`
}
