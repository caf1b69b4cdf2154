package testutil

import (
	"github.com/yxchen/bookkeeper/internal/domain"
)

// MockStorage is an in-memory implementation of domain.Storage. The ...Fn
// fields override individual operations for error injection; when nil, the
// backing maps are used directly.
type MockStorage struct {
	Users      []domain.User
	Categories map[int][]domain.Category
	Bills      map[int][]domain.Bill
	Budgets    map[int]domain.Budget

	LoadUsersFn      func() ([]domain.User, error)
	SaveUsersFn      func(users []domain.User) error
	LoadCategoriesFn func() (map[int][]domain.Category, error)
	SaveCategoriesFn func(categories map[int][]domain.Category) error
	LoadBillsFn      func() (map[int][]domain.Bill, error)
	SaveBillsFn      func(bills map[int][]domain.Bill) error
	LoadBudgetsFn    func() (map[int]domain.Budget, error)
	SaveBudgetsFn    func(budgets map[int]domain.Budget) error
}

// NewMockStorage creates an empty MockStorage.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		Categories: make(map[int][]domain.Category),
		Bills:      make(map[int][]domain.Bill),
		Budgets:    make(map[int]domain.Budget),
	}
}

// LoadUsers returns the stored user list.
func (m *MockStorage) LoadUsers() ([]domain.User, error) {
	if m.LoadUsersFn != nil {
		return m.LoadUsersFn()
	}
	return m.Users, nil
}

// SaveUsers stores the user list.
func (m *MockStorage) SaveUsers(users []domain.User) error {
	if m.SaveUsersFn != nil {
		return m.SaveUsersFn(users)
	}
	m.Users = users
	return nil
}

// LoadCategories returns the stored categories.
func (m *MockStorage) LoadCategories() (map[int][]domain.Category, error) {
	if m.LoadCategoriesFn != nil {
		return m.LoadCategoriesFn()
	}
	return m.Categories, nil
}

// SaveCategories stores the categories.
func (m *MockStorage) SaveCategories(categories map[int][]domain.Category) error {
	if m.SaveCategoriesFn != nil {
		return m.SaveCategoriesFn(categories)
	}
	m.Categories = categories
	return nil
}

// LoadBills returns the stored bills.
func (m *MockStorage) LoadBills() (map[int][]domain.Bill, error) {
	if m.LoadBillsFn != nil {
		return m.LoadBillsFn()
	}
	return m.Bills, nil
}

// SaveBills stores the bills.
func (m *MockStorage) SaveBills(bills map[int][]domain.Bill) error {
	if m.SaveBillsFn != nil {
		return m.SaveBillsFn(bills)
	}
	m.Bills = bills
	return nil
}

// LoadBudgets returns the stored budgets.
func (m *MockStorage) LoadBudgets() (map[int]domain.Budget, error) {
	if m.LoadBudgetsFn != nil {
		return m.LoadBudgetsFn()
	}
	return m.Budgets, nil
}

// SaveBudgets stores the budgets.
func (m *MockStorage) SaveBudgets(budgets map[int]domain.Budget) error {
	if m.SaveBudgetsFn != nil {
		return m.SaveBudgetsFn(budgets)
	}
	m.Budgets = budgets
	return nil
}
