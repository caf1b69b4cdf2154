package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yxchen/bookkeeper/internal/domain"
)

func TestStorage_MissingFilesReadAsEmpty(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	users, err := store.LoadUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	categories, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)

	bills, err := store.LoadBills()
	require.NoError(t, err)
	assert.Empty(t, bills)

	budgets, err := store.LoadBudgets()
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	users := []domain.User{{
		ID: 1, Username: "alice", Password: "secret-1",
		Preferences: map[string]string{"theme": "dark"},
	}}
	categories := map[int][]domain.Category{
		1: {{ID: 1, Name: "Food", Type: domain.CategoryTypeExpense, Color: "#ff0000"}},
	}
	when := time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)
	bills := map[int][]domain.Bill{
		1: {{ID: 1, Amount: decimal.NewFromFloat(50.5), CategoryID: 1, Time: when, Note: "Lunch"}},
	}
	budgets := map[int]domain.Budget{
		1: {TotalLimit: decimal.NewFromInt(500), CategoryLimits: map[int]decimal.Decimal{1: decimal.NewFromInt(100)}},
	}

	require.NoError(t, store.SaveUsers(users))
	require.NoError(t, store.SaveCategories(categories))
	require.NoError(t, store.SaveBills(bills))
	require.NoError(t, store.SaveBudgets(budgets))

	// A fresh Storage over the same directory sees identical values.
	fresh, err := New(dir)
	require.NoError(t, err)

	gotUsers, err := fresh.LoadUsers()
	require.NoError(t, err)
	require.Len(t, gotUsers, 1)
	assert.Equal(t, "alice", gotUsers[0].Username)
	assert.Equal(t, "dark", gotUsers[0].Preferences["theme"])

	gotCategories, err := fresh.LoadCategories()
	require.NoError(t, err)
	require.Len(t, gotCategories[1], 1)
	assert.Equal(t, "Food", gotCategories[1][0].Name)

	gotBills, err := fresh.LoadBills()
	require.NoError(t, err)
	require.Len(t, gotBills[1], 1)
	assert.Equal(t, "50.5", gotBills[1][0].Amount.String())
	assert.Equal(t, "Lunch", gotBills[1][0].Note)
	assert.True(t, gotBills[1][0].Time.Equal(when))

	gotBudgets, err := fresh.LoadBudgets()
	require.NoError(t, err)
	assert.Equal(t, "500", gotBudgets[1].TotalLimit.String())
	assert.Equal(t, "100", gotBudgets[1].CategoryLimits[1].String())
}

func TestStorage_CorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bills.json"), []byte("{not json"), 0o644))

	_, err = store.LoadBills()
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestStorage_SaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.SaveUsers([]domain.User{{ID: 1, Username: "alice"}}))
	require.NoError(t, store.SaveUsers([]domain.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}))

	users, err := store.LoadUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
