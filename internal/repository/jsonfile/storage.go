// Package jsonfile persists the engine's entities as one JSON document per
// entity kind inside a data directory. A missing file reads as empty (first
// run); an unreadable or unparsable file is a storage failure. Writes go
// through a uniquely named temp file and a rename so a crash never leaves a
// half-written document behind.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yxchen/bookkeeper/internal/domain"
)

const (
	usersFile      = "users.json"
	categoriesFile = "categories.json"
	billsFile      = "bills.json"
	budgetsFile    = "budgets.json"
)

// Storage implements domain.Storage over a directory of JSON files.
type Storage struct {
	dir string
}

// New creates the data directory if needed and returns a Storage over it.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %w", domain.ErrStorage, dir, err)
	}
	return &Storage{dir: dir}, nil
}

// LoadUsers reads the stored user list.
func (s *Storage) LoadUsers() ([]domain.User, error) {
	var users []domain.User
	if err := s.readFile(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers writes the user list.
func (s *Storage) SaveUsers(users []domain.User) error {
	return s.writeFile(usersFile, users)
}

// LoadCategories reads the stored categories keyed by user id.
func (s *Storage) LoadCategories() (map[int][]domain.Category, error) {
	var categories map[int][]domain.Category
	if err := s.readFile(categoriesFile, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SaveCategories writes the categories keyed by user id.
func (s *Storage) SaveCategories(categories map[int][]domain.Category) error {
	return s.writeFile(categoriesFile, categories)
}

// LoadBills reads the stored bills keyed by user id. Bills carry category
// ids only; reference resolution happens in the ledger after load.
func (s *Storage) LoadBills() (map[int][]domain.Bill, error) {
	var bills map[int][]domain.Bill
	if err := s.readFile(billsFile, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// SaveBills writes the bills keyed by user id.
func (s *Storage) SaveBills(bills map[int][]domain.Bill) error {
	return s.writeFile(billsFile, bills)
}

// LoadBudgets reads the stored budgets keyed by user id.
func (s *Storage) LoadBudgets() (map[int]domain.Budget, error) {
	var budgets map[int]domain.Budget
	if err := s.readFile(budgetsFile, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets writes the budgets keyed by user id.
func (s *Storage) SaveBudgets(budgets map[int]domain.Budget) error {
	return s.writeFile(budgetsFile, budgets)
}

func (s *Storage) readFile(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Error().Err(err).Str("path", path).Msg("Failed to read data file")
		return fmt.Errorf("%w: read %s: %w", domain.ErrStorage, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to parse data file")
		return fmt.Errorf("%w: parse %s: %w", domain.ErrStorage, name, err)
	}
	return nil
}

func (s *Storage) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrStorage, name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Error().Err(err).Str("path", tmp).Msg("Failed to write temp data file")
		return fmt.Errorf("%w: write %s: %w", domain.ErrStorage, name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %w", domain.ErrStorage, name, err)
	}
	return nil
}
