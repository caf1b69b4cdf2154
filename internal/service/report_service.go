package service

import (
	"github.com/shopspring/decimal"

	"github.com/yxchen/bookkeeper/internal/domain"
)

// ReportService derives reports from the ledger and keeps an append-only
// per-user history of them. The history doubles as a cache: the facade drops
// it whenever the user's ledger mutates, so a retained report is never stale.
// Growth is otherwise unbounded; long-lived callers trim by clearing.
type ReportService struct {
	bills *BillService

	byUser map[int][]domain.Report
}

// NewReportService creates an empty ReportService reading from the given
// ledger.
func NewReportService(bills *BillService) *ReportService {
	return &ReportService{
		bills:  bills,
		byUser: make(map[int][]domain.Report),
	}
}

// Generate recomputes a report from the user's current ledger, appends it to
// the history and returns it. Bills are filtered by the criteria against
// their resolved category names; surviving amounts are summed per category
// name with unresolved references bucketed as "Uncategorized". Income totals
// amounts >= 0 and expense totals amounts < 0, independent of category type.
func (s *ReportService) Generate(userID int, criteria domain.QueryCriteria, period domain.Period, chartType domain.ChartType) domain.Report {
	summary := make(map[string]decimal.Decimal)
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, bill := range s.bills.ListForUser(userID) {
		name := s.bills.ResolveCategoryName(userID, bill)
		if !criteria.Matches(bill.Time, name) {
			continue
		}
		key := name
		if key == "" {
			key = domain.UncategorizedBucket
		}
		summary[key] = summary[key].Add(bill.Amount)

		if bill.Amount.IsNegative() {
			totalExpense = totalExpense.Add(bill.Amount)
		} else {
			totalIncome = totalIncome.Add(bill.Amount)
		}
	}

	report := domain.Report{
		Period:          period,
		ChartType:       chartType,
		CategorySummary: summary,
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
	}
	s.byUser[userID] = append(s.byUser[userID], report)
	return report
}

// GetLast returns the most recently appended report, or nil.
func (s *ReportService) GetLast(userID int) *domain.Report {
	reports := s.byUser[userID]
	if len(reports) == 0 {
		return nil
	}
	last := reports[len(reports)-1]
	return &last
}

// ListForUser returns a copy of the user's report history.
func (s *ReportService) ListForUser(userID int) []domain.Report {
	reports := s.byUser[userID]
	out := make([]domain.Report, len(reports))
	copy(out, reports)
	return out
}

// ClearReports drops the user's entire report history. Called after any
// ledger mutation for that user.
func (s *ReportService) ClearReports(userID int) {
	delete(s.byUser, userID)
}
