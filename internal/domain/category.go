package domain

// Category type tags. The tag is free-form, not a closed enum; these are the
// conventional values the presentation layers use.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

// Category is a user-defined spending/income label. IDs and names are unique
// per user, never globally.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}
