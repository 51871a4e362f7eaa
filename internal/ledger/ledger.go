package ledger

import "errors"

// DateLayout is the display format expenses carry, e.g. "25-08-2026".
// Dates are stamped once when an expense is recorded and edits leave
// them untouched.
const DateLayout = "02-01-2006"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrCategoryInUse     = errors.New("category still has expenses")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
)

// Expense is one spending record embedded in the owner's document.
// CategoryName is a snapshot taken when the expense is written; renaming
// the category later does not rewrite it.
type Expense struct {
	ID           string `bson:"id"`
	Description  string `bson:"description"`
	Amount       Money  `bson:"amount"`
	CategoryID   string `bson:"category_id"`
	CategoryName string `bson:"category_name"`
	Date         string `bson:"date"`
}

// Category is a named budget envelope. Names are unique per user.
type Category struct {
	ID     string `bson:"id"`
	Name   string `bson:"name"`
	Budget Money  `bson:"budget"`
}
