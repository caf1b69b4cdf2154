package domain

import "time"

// QueryCriteria narrows a bill query. A nil date bound or an empty category
// name means "unset"; an unset criterion matches every bill. The date range
// is inclusive on both ends.
type QueryCriteria struct {
	StartDate    *time.Time
	EndDate      *time.Time
	CategoryName string
}

// HasDateRange reports whether both date bounds are set.
func (c QueryCriteria) HasDateRange() bool {
	return c.StartDate != nil && c.EndDate != nil
}

// HasCategoryFilter reports whether a category-name filter is set.
func (c QueryCriteria) HasCategoryFilter() bool {
	return c.CategoryName != ""
}

// Matches evaluates the criteria against a bill's timestamp and its resolved
// category name. The same rule drives ledger queries and report generation.
func (c QueryCriteria) Matches(t time.Time, categoryName string) bool {
	if c.HasDateRange() {
		if t.Before(*c.StartDate) || t.After(*c.EndDate) {
			return false
		}
	}
	if c.HasCategoryFilter() && categoryName != c.CategoryName {
		return false
	}
	return true
}
