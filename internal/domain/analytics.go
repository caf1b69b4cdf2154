package domain

import "github.com/shopspring/decimal"

// Pagination constants
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// nearLimitThreshold marks budget usage worth warning about (80%).
const nearLimitThreshold = 0.8

// PagedBills is one page of a user's ledger. Page numbers are 1-based and an
// out-of-range page is an empty page, not an error.
type PagedBills struct {
	Items      []Bill `json:"items"`
	TotalCount int    `json:"totalCount"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

// HasNextPage reports whether a page follows this one.
func (p PagedBills) HasNextPage() bool {
	return p.PageNumber < p.TotalPages
}

// HasPreviousPage reports whether a page precedes this one.
func (p PagedBills) HasPreviousPage() bool {
	return p.PageNumber > 1
}

// BudgetStatus is the cumulative view of a user's total budget: used is the
// sum of all the user's bill amounts regardless of category or sign.
type BudgetStatus struct {
	BudgetSet       bool            `json:"budgetSet"`
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	UsedAmount      decimal.Decimal `json:"usedAmount"`
	Remaining       decimal.Decimal `json:"remaining"`
	UsagePercentage float64         `json:"usagePercentage"`
	IsExceeded      bool            `json:"isExceeded"`
}

// IsNearLimit reports whether usage has reached 80% of the limit.
func (s BudgetStatus) IsNearLimit() bool {
	return s.UsagePercentage >= nearLimitThreshold
}

// CategoryBudgetStatus is the cumulative view of one category's limit. Only
// categories with an explicit limit in the budget get a status entry.
type CategoryBudgetStatus struct {
	CategoryID      int             `json:"categoryId"`
	CategoryName    string          `json:"categoryName"`
	Limit           decimal.Decimal `json:"limit"`
	Used            decimal.Decimal `json:"used"`
	Remaining       decimal.Decimal `json:"remaining"`
	UsagePercentage float64         `json:"usagePercentage"`
	IsExceeded      bool            `json:"isExceeded"`
}

// IsNearLimit reports whether usage has reached 80% of the limit.
func (s CategoryBudgetStatus) IsNearLimit() bool {
	return s.UsagePercentage >= nearLimitThreshold
}

// BudgetImpact previews how adding a candidate bill would move the cumulative
// remaining amounts. Category figures are only computed when the candidate's
// category has an explicit limit.
type BudgetImpact struct {
	WouldExceedTotal    bool `json:"wouldExceedTotal"`
	WouldExceedCategory bool `json:"wouldExceedCategory"`

	CurrentRemainingTotal decimal.Decimal `json:"currentRemainingTotal"`
	RemainingTotalAfter   decimal.Decimal `json:"remainingTotalAfter"`

	CurrentRemainingCategory decimal.Decimal `json:"currentRemainingCategory"`
	RemainingCategoryAfter   decimal.Decimal `json:"remainingCategoryAfter"`

	WarningMessage string `json:"warningMessage,omitempty"`
}

// HasBudgetRisk reports whether either limit would be exceeded.
func (i BudgetImpact) HasBudgetRisk() bool {
	return i.WouldExceedTotal || i.WouldExceedCategory
}

// DailySummary totals one calendar day's bills. The income/expense split here
// follows the resolved category's type tag ("income" vs everything else),
// unlike report totals which split by amount sign.
type DailySummary struct {
	Date         string          `json:"date"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	BillCount    int             `json:"billCount"`
}
