package domain

import "github.com/shopspring/decimal"

// MaxBudgetLimit is the upper bound accepted for a total budget limit.
var MaxBudgetLimit = decimal.NewFromInt(100_000_000)

// Budget is a user's spending ceiling: one total limit plus optional
// per-category limits keyed by category id. At most one budget exists per
// user and SetBudget replaces it wholesale.
type Budget struct {
	TotalLimit     decimal.Decimal         `json:"totalLimit"`
	CategoryLimits map[int]decimal.Decimal `json:"categoryLimits,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate policy state through
// the shared limits map.
func (b Budget) Clone() Budget {
	c := b
	if b.CategoryLimits != nil {
		c.CategoryLimits = make(map[int]decimal.Decimal, len(b.CategoryLimits))
		for id, limit := range b.CategoryLimits {
			c.CategoryLimits[id] = limit
		}
	}
	return c
}
