package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yxchen/bookkeeper/internal/domain"
	"github.com/yxchen/bookkeeper/internal/util"
)

// The analytics below are read-only and computed fresh on every call. They
// measure budget usage cumulatively (summing the ledger), unlike the
// single-bill admission check in BudgetService.

// GetBudgetStatus reports the cumulative state of the user's total budget.
// Used amount is the sum of every bill amount, with no category or sign
// filtering.
func (s *AccountService) GetBudgetStatus(userID int) domain.BudgetStatus {
	budget := s.budgets.Get(userID)
	if budget == nil {
		return domain.BudgetStatus{}
	}

	used := s.sumAmounts(userID)
	remaining := budget.TotalLimit.Sub(used)
	status := domain.BudgetStatus{
		BudgetSet:   true,
		TotalBudget: budget.TotalLimit,
		UsedAmount:  used,
		Remaining:   remaining,
		IsExceeded:  remaining.IsNegative(),
	}
	if budget.TotalLimit.IsPositive() {
		status.UsagePercentage = used.Div(budget.TotalLimit).InexactFloat64()
	}
	return status
}

// GetCategoryBudgetStatus reports cumulative usage for every category that
// has an explicit limit in the budget. Categories without a limit are
// omitted entirely. Results are ordered by category id.
func (s *AccountService) GetCategoryBudgetStatus(userID int) []domain.CategoryBudgetStatus {
	budget := s.budgets.Get(userID)
	if budget == nil {
		return nil
	}

	out := make([]domain.CategoryBudgetStatus, 0, len(budget.CategoryLimits))
	for categoryID, limit := range budget.CategoryLimits {
		used := s.sumAmountsForCategory(userID, categoryID)
		remaining := limit.Sub(used)

		name := ""
		if c := s.categories.FindByID(userID, categoryID); c != nil {
			name = c.Name
		}
		status := domain.CategoryBudgetStatus{
			CategoryID:   categoryID,
			CategoryName: name,
			Limit:        limit,
			Used:         used,
			Remaining:    remaining,
			IsExceeded:   remaining.IsNegative(),
		}
		if limit.IsPositive() {
			status.UsagePercentage = used.Div(limit).InexactFloat64()
		}
		out = append(out, status)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out
}

// GetBudgetImpactIfAddBill previews the cumulative remaining amounts before
// and after adding the candidate bill. Category impact is only computed when
// the candidate's category carries an explicit limit.
func (s *AccountService) GetBudgetImpactIfAddBill(userID int, bill domain.Bill) domain.BudgetImpact {
	budget := s.budgets.Get(userID)
	if budget == nil {
		return domain.BudgetImpact{}
	}

	impact := domain.BudgetImpact{}
	impact.CurrentRemainingTotal = budget.TotalLimit.Sub(s.sumAmounts(userID))
	impact.RemainingTotalAfter = impact.CurrentRemainingTotal.Sub(bill.Amount)
	impact.WouldExceedTotal = impact.RemainingTotalAfter.IsNegative()

	if limit, ok := budget.CategoryLimits[bill.CategoryID]; ok {
		impact.CurrentRemainingCategory = limit.Sub(s.sumAmountsForCategory(userID, bill.CategoryID))
		impact.RemainingCategoryAfter = impact.CurrentRemainingCategory.Sub(bill.Amount)
		impact.WouldExceedCategory = impact.RemainingCategoryAfter.IsNegative()
	}

	switch {
	case impact.WouldExceedTotal && impact.WouldExceedCategory:
		impact.WarningMessage = "This bill would exceed both the total budget and the category limit."
	case impact.WouldExceedTotal:
		impact.WarningMessage = "This bill would exceed the total budget."
	case impact.WouldExceedCategory:
		impact.WarningMessage = "This bill would exceed the category limit."
	}
	return impact
}

// GetBillsByDateRange returns bills whose date falls inside [startDate,
// endDate]. Dates are compared as canonical YYYY-MM-DD strings; malformed
// bounds yield an empty result.
func (s *AccountService) GetBillsByDateRange(userID int, startDate, endDate string) []domain.Bill {
	if !util.IsValidDate(startDate) || !util.IsValidDate(endDate) {
		return nil
	}
	var out []domain.Bill
	for _, bill := range s.bills.ListForUser(userID) {
		d := util.FormatDate(bill.Time)
		if d >= startDate && d <= endDate {
			out = append(out, bill)
		}
	}
	return out
}

// GetBillsByCategory returns bills whose resolved category name matches.
func (s *AccountService) GetBillsByCategory(userID int, categoryName string) []domain.Bill {
	var out []domain.Bill
	for _, bill := range s.bills.ListForUser(userID) {
		if s.bills.ResolveCategoryName(userID, bill) == categoryName {
			out = append(out, bill)
		}
	}
	return out
}

// GetBillsByCategoryAndDate combines the category and date-range filters.
func (s *AccountService) GetBillsByCategoryAndDate(userID int, categoryName, startDate, endDate string) []domain.Bill {
	var out []domain.Bill
	for _, bill := range s.GetBillsByDateRange(userID, startDate, endDate) {
		if s.bills.ResolveCategoryName(userID, bill) == categoryName {
			out = append(out, bill)
		}
	}
	return out
}

// GetTotalExpense sums every bill amount for the user.
func (s *AccountService) GetTotalExpense(userID int) decimal.Decimal {
	return s.sumAmounts(userID)
}

// GetTotalExpenseByCategory sums bill amounts per resolved category name,
// bucketing unresolved references as "Uncategorized".
func (s *AccountService) GetTotalExpenseByCategory(userID int) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, bill := range s.bills.ListForUser(userID) {
		key := s.bills.ResolveCategoryName(userID, bill)
		if key == "" {
			key = domain.UncategorizedBucket
		}
		out[key] = out[key].Add(bill.Amount)
	}
	return out
}

// GetBillsPaged returns one 1-based page of the user's ledger. An
// out-of-range page number yields an empty page, never an error.
func (s *AccountService) GetBillsPaged(userID, pageNumber, pageSize int) domain.PagedBills {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	bills := s.bills.ListForUser(userID)

	page := domain.PagedBills{
		Items:      []domain.Bill{},
		TotalCount: len(bills),
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: (len(bills) + pageSize - 1) / pageSize,
	}
	if pageNumber < 1 || pageNumber > page.TotalPages {
		return page
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > len(bills) {
		end = len(bills)
	}
	page.Items = bills[start:end]
	return page
}

// GetDailySummary totals the bills of one calendar day, split into income
// and expense by the resolved category's type tag. A malformed date yields
// an empty summary.
func (s *AccountService) GetDailySummary(userID int, dateStr string) domain.DailySummary {
	summary := domain.DailySummary{Date: dateStr}
	if !util.IsValidDate(dateStr) {
		return summary
	}
	for _, bill := range s.bills.ListForUser(userID) {
		if util.FormatDate(bill.Time) != dateStr {
			continue
		}
		summary.BillCount++
		category := s.bills.ResolveCategory(userID, bill)
		if category != nil && category.Type == domain.CategoryTypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(bill.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(bill.Amount)
		}
	}
	return summary
}

func (s *AccountService) sumAmounts(userID int) decimal.Decimal {
	total := decimal.Zero
	for _, bill := range s.bills.ListForUser(userID) {
		total = total.Add(bill.Amount)
	}
	return total
}

func (s *AccountService) sumAmountsForCategory(userID, categoryID int) decimal.Decimal {
	total := decimal.Zero
	for _, bill := range s.bills.ListForUser(userID) {
		if bill.CategoryID == categoryID {
			total = total.Add(bill.Amount)
		}
	}
	return total
}
