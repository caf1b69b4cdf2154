package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yxchen/bookkeeper/internal/domain"
)

// AccountService is the single entry point used by presentation layers. It
// owns the managers behind it and sequences every mutation the same way:
// field validation, then (for bill adds) the budget admission check, then the
// delegate call, then report-cache invalidation. Read-only queries never
// fail; absence comes back as empty values.
//
// The service is single-session by design: it carries no internal locking,
// so concurrent callers must serialize access themselves.
type AccountService struct {
	storage domain.Storage

	users      *UserService
	categories *CategoryService
	bills      *BillService
	budgets    *BudgetService
	reports    *ReportService
}

// NewAccountService wires the managers together over the given storage.
func NewAccountService(storage domain.Storage) *AccountService {
	users := NewUserService()
	categories := NewCategoryService()
	bills := NewBillService(categories)
	return &AccountService{
		storage:    storage,
		users:      users,
		categories: categories,
		bills:      bills,
		budgets:    NewBudgetService(),
		reports:    NewReportService(bills),
	}
}

// Initialize loads every entity kind from storage. Bills load last because
// their category references are checked against the loaded registry. Any
// failure aborts initialization; the engine must not run partially loaded.
func (s *AccountService) Initialize() error {
	if err := s.users.Load(s.storage); err != nil {
		return fmt.Errorf("%w: load users: %w", domain.ErrInitialization, err)
	}
	if err := s.categories.Load(s.storage); err != nil {
		return fmt.Errorf("%w: load categories: %w", domain.ErrInitialization, err)
	}
	if err := s.budgets.Load(s.storage); err != nil {
		return fmt.Errorf("%w: load budgets: %w", domain.ErrInitialization, err)
	}
	if err := s.bills.Load(s.storage); err != nil {
		return fmt.Errorf("%w: load bills: %w", domain.ErrInitialization, err)
	}
	log.Info().Msg("Engine initialized from storage")
	return nil
}

// SaveAll writes every entity kind to storage. A failing kind is reported
// but does not roll back kinds already saved; there is no cross-entity
// transaction.
func (s *AccountService) SaveAll() error {
	var errs []error
	if err := s.users.Save(s.storage); err != nil {
		log.Error().Err(err).Msg("Failed to save users")
		errs = append(errs, fmt.Errorf("save users: %w", err))
	}
	if err := s.categories.Save(s.storage); err != nil {
		log.Error().Err(err).Msg("Failed to save categories")
		errs = append(errs, fmt.Errorf("save categories: %w", err))
	}
	if err := s.bills.Save(s.storage); err != nil {
		log.Error().Err(err).Msg("Failed to save bills")
		errs = append(errs, fmt.Errorf("save bills: %w", err))
	}
	if err := s.budgets.Save(s.storage); err != nil {
		log.Error().Err(err).Msg("Failed to save budgets")
		errs = append(errs, fmt.Errorf("save budgets: %w", err))
	}
	return errors.Join(errs...)
}

// RegisterUser validates credentials and registers a new user.
func (s *AccountService) RegisterUser(username, password string) (*domain.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	return s.users.Register(username, password)
}

// Login authenticates a user by verbatim password comparison.
func (s *AccountService) Login(username, password string) (*domain.User, error) {
	return s.users.Login(username, password)
}

// GetPreferences returns a user's preference map.
func (s *AccountService) GetPreferences(userID int) map[string]string {
	return s.users.Preferences(userID)
}

// SetPreferences merges keys into a user's preference map.
func (s *AccountService) SetPreferences(userID int, prefs map[string]string) error {
	return s.users.SetPreferences(userID, prefs)
}

// AddBill validates the bill, runs the budget admission check and appends to
// the ledger. A successful add invalidates the user's cached reports.
func (s *AccountService) AddBill(userID int, bill domain.Bill) (*domain.Bill, error) {
	if err := validateBill(bill); err != nil {
		return nil, err
	}
	if !s.budgets.CheckAdmissible(userID, bill) {
		return nil, fmt.Errorf("%w: bill of %s is over a configured limit", domain.ErrBudgetExceeded, bill.Amount)
	}
	added, err := s.bills.Add(userID, bill)
	if err != nil {
		return nil, err
	}
	s.reports.ClearReports(userID)
	return added, nil
}

// UpdateBill validates and replaces an existing bill, then invalidates the
// user's cached reports. No budget check applies on update.
func (s *AccountService) UpdateBill(userID int, bill domain.Bill) error {
	if err := validateBill(bill); err != nil {
		return err
	}
	if err := s.bills.Update(userID, bill); err != nil {
		return err
	}
	s.reports.ClearReports(userID)
	return nil
}

// DeleteBill removes a bill and invalidates the user's cached reports.
func (s *AccountService) DeleteBill(userID, billID int) error {
	if err := s.bills.Delete(userID, billID); err != nil {
		return err
	}
	s.reports.ClearReports(userID)
	return nil
}

// CanAddBill exposes the budget admission check without mutating anything,
// for pre-commit warnings in the presentation layer.
func (s *AccountService) CanAddBill(userID int, bill domain.Bill) bool {
	return s.budgets.CheckAdmissible(userID, bill)
}

// GetBills returns the user's full ledger.
func (s *AccountService) GetBills(userID int) []domain.Bill {
	return s.bills.ListForUser(userID)
}

// QueryBills filters the user's ledger by the given criteria.
func (s *AccountService) QueryBills(userID int, criteria domain.QueryCriteria) []domain.Bill {
	return s.bills.QueryByCriteria(userID, criteria)
}

// AddCategory validates the category and stores it under a fresh id.
func (s *AccountService) AddCategory(userID int, category domain.Category) (*domain.Category, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	return s.categories.Add(userID, category)
}

// UpdateCategory validates and replaces an existing category.
func (s *AccountService) UpdateCategory(userID int, category domain.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.categories.Update(userID, category)
}

// DeleteCategory removes a category. Bills referencing it keep the id and
// resolve as uncategorized from then on.
func (s *AccountService) DeleteCategory(userID, categoryID int) error {
	return s.categories.Delete(userID, categoryID)
}

// GetCategories returns the user's categories.
func (s *AccountService) GetCategories(userID int) []domain.Category {
	return s.categories.ListForUser(userID)
}

// SetBudget validates and replaces the user's budget wholesale.
func (s *AccountService) SetBudget(userID int, budget domain.Budget) error {
	if err := validateBudget(budget); err != nil {
		return err
	}
	s.budgets.Set(userID, budget)
	return nil
}

// GetBudget returns the user's budget, or nil when none is configured.
func (s *AccountService) GetBudget(userID int) *domain.Budget {
	return s.budgets.Get(userID)
}

// GenerateReport recomputes a report from the current ledger and appends it
// to the user's report history.
func (s *AccountService) GenerateReport(userID int, criteria domain.QueryCriteria, period domain.Period, chartType domain.ChartType) domain.Report {
	return s.reports.Generate(userID, criteria, period, chartType)
}

// GetLastReport returns the most recently generated report, or nil.
func (s *AccountService) GetLastReport(userID int) *domain.Report {
	return s.reports.GetLast(userID)
}

func validateUsername(username string) error {
	if len(username) < domain.MinUsernameLength || len(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: length must be %d-%d characters", domain.ErrInvalidUsername,
			domain.MinUsernameLength, domain.MaxUsernameLength)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < domain.MinPasswordLength || len(password) > domain.MaxPasswordLength {
		return fmt.Errorf("%w: length must be %d-%d characters", domain.ErrInvalidPassword,
			domain.MinPasswordLength, domain.MaxPasswordLength)
	}
	return nil
}

func validateBill(bill domain.Bill) error {
	if !bill.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidBill)
	}
	if bill.Amount.GreaterThan(domain.MaxBillAmount) {
		return fmt.Errorf("%w: amount exceeds %s", domain.ErrInvalidBill, domain.MaxBillAmount)
	}
	if bill.Time.Before(time.Unix(0, 0)) {
		return fmt.Errorf("%w: time precedes the epoch", domain.ErrInvalidBill)
	}
	if bill.Time.After(time.Now().Add(24 * time.Hour)) {
		return fmt.Errorf("%w: time is more than 24h in the future", domain.ErrInvalidBill)
	}
	if len(bill.Note) > domain.MaxBillNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", domain.ErrInvalidBill, domain.MaxBillNoteLength)
	}
	return nil
}

func validateCategory(category domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidCategory)
	}
	if len(category.Name) > domain.MaxCategoryNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidCategory, domain.MaxCategoryNameLength)
	}
	return nil
}

func validateBudget(budget domain.Budget) error {
	if !budget.TotalLimit.IsPositive() {
		return fmt.Errorf("%w: total limit must be positive", domain.ErrInvalidBudget)
	}
	if budget.TotalLimit.GreaterThan(domain.MaxBudgetLimit) {
		return fmt.Errorf("%w: total limit exceeds %s", domain.ErrInvalidBudget, domain.MaxBudgetLimit)
	}
	for categoryID, limit := range budget.CategoryLimits {
		if !limit.IsPositive() {
			return fmt.Errorf("%w: limit for category %d must be positive", domain.ErrInvalidBudget, categoryID)
		}
		if limit.GreaterThan(budget.TotalLimit) {
			return fmt.Errorf("%w: limit for category %d exceeds the total limit", domain.ErrInvalidBudget, categoryID)
		}
	}
	return nil
}
