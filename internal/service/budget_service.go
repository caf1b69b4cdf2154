package service

import (
	"github.com/yxchen/bookkeeper/internal/domain"
)

// BudgetService owns at most one budget per user and performs the advisory
// admission check run before a bill is added.
type BudgetService struct {
	byUser map[int]domain.Budget
}

// NewBudgetService creates an empty BudgetService.
func NewBudgetService() *BudgetService {
	return &BudgetService{byUser: make(map[int]domain.Budget)}
}

// Set replaces the user's budget wholesale. Field validation happens in the
// facade before this is called.
func (s *BudgetService) Set(userID int, budget domain.Budget) {
	s.byUser[userID] = budget.Clone()
}

// Get returns a copy of the user's budget, or nil when none is configured.
func (s *BudgetService) Get(userID int) *domain.Budget {
	budget, ok := s.byUser[userID]
	if !ok {
		return nil
	}
	b := budget.Clone()
	return &b
}

// CheckAdmissible decides whether a single candidate bill passes the user's
// limits. With no budget configured everything is admissible. Otherwise the
// candidate's amount is compared directly against its category's limit (when
// one exists) and against the total limit. This is a single-bill comparison,
// not a cumulative-spend one; the facade's budget analytics use cumulative
// usage instead.
func (s *BudgetService) CheckAdmissible(userID int, bill domain.Bill) bool {
	budget, ok := s.byUser[userID]
	if !ok {
		return true
	}
	if limit, ok := budget.CategoryLimits[bill.CategoryID]; ok {
		if bill.Amount.GreaterThan(limit) {
			return false
		}
	}
	return !bill.Amount.GreaterThan(budget.TotalLimit)
}

// Load replaces all budget state with the stored budgets.
func (s *BudgetService) Load(st domain.Storage) error {
	byUser, err := st.LoadBudgets()
	if err != nil {
		return err
	}
	if byUser == nil {
		byUser = make(map[int]domain.Budget)
	}
	s.byUser = byUser
	return nil
}

// Save writes all budgets to storage.
func (s *BudgetService) Save(st domain.Storage) error {
	return st.SaveBudgets(s.byUser)
}
