package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yxchen/bookkeeper/internal/domain"
	"github.com/yxchen/bookkeeper/internal/testutil"
)

func TestCategoryService_Add_AssignsPerUserIDs(t *testing.T) {
	svc := NewCategoryService()

	food, err := svc.Add(1, domain.Category{Name: "Food", Type: domain.CategoryTypeExpense})
	require.NoError(t, err)
	rent, err := svc.Add(1, domain.Category{Name: "Rent", Type: domain.CategoryTypeExpense})
	require.NoError(t, err)

	assert.Equal(t, 1, food.ID)
	assert.Equal(t, 2, rent.ID)

	// Another user's namespace starts over at 1.
	salary, err := svc.Add(2, domain.Category{Name: "Salary", Type: domain.CategoryTypeIncome})
	require.NoError(t, err)
	assert.Equal(t, 1, salary.ID)
}

func TestCategoryService_Add_DuplicateNamePerUser(t *testing.T) {
	svc := NewCategoryService()

	_, err := svc.Add(1, domain.Category{Name: "Food"})
	require.NoError(t, err)

	_, err = svc.Add(1, domain.Category{Name: "Food"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)

	// The same name under a different user is fine.
	_, err = svc.Add(2, domain.Category{Name: "Food"})
	assert.NoError(t, err)
}

func TestCategoryService_Update(t *testing.T) {
	svc := NewCategoryService()
	food, err := svc.Add(1, domain.Category{Name: "Food", Color: "#ff0000"})
	require.NoError(t, err)
	_, err = svc.Add(1, domain.Category{Name: "Rent"})
	require.NoError(t, err)

	// Plain field update keeps the id.
	food.Color = "#00ff00"
	require.NoError(t, svc.Update(1, *food))
	assert.Equal(t, "#00ff00", svc.FindByID(1, food.ID).Color)

	// Renaming onto another category's name fails.
	food.Name = "Rent"
	assert.ErrorIs(t, svc.Update(1, *food), domain.ErrDuplicateCategory)

	// Unknown id fails.
	assert.ErrorIs(t, svc.Update(1, domain.Category{ID: 99, Name: "X"}), domain.ErrCategoryNotFound)
}

func TestCategoryService_Delete(t *testing.T) {
	svc := NewCategoryService()
	food, err := svc.Add(1, domain.Category{Name: "Food"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, food.ID))
	assert.Nil(t, svc.FindByID(1, food.ID))
	assert.ErrorIs(t, svc.Delete(1, food.ID), domain.ErrCategoryNotFound)
}

func TestCategoryService_IDsNotReusedAfterDelete(t *testing.T) {
	svc := NewCategoryService()
	_, err := svc.Add(1, domain.Category{Name: "Food"})
	require.NoError(t, err)
	rent, err := svc.Add(1, domain.Category{Name: "Rent"})
	require.NoError(t, err)

	// Deleting the highest id does free it for reuse: ids are max+1, not a
	// persistent counter, matching the registry's assignment rule.
	require.NoError(t, svc.Delete(1, rent.ID))
	travel, err := svc.Add(1, domain.Category{Name: "Travel"})
	require.NoError(t, err)
	assert.Equal(t, rent.ID, travel.ID)
}

func TestCategoryService_Lookups(t *testing.T) {
	svc := NewCategoryService()
	food, err := svc.Add(1, domain.Category{Name: "Food"})
	require.NoError(t, err)

	assert.Equal(t, food.ID, svc.FindByName(1, "Food").ID)
	assert.Nil(t, svc.FindByName(1, "food")) // case-sensitive
	assert.Nil(t, svc.FindByName(2, "Food"))
	assert.Empty(t, svc.ListForUser(2))
}

func TestCategoryService_LoadSaveRoundTrip(t *testing.T) {
	store := testutil.NewMockStorage()

	svc := NewCategoryService()
	_, err := svc.Add(1, domain.Category{Name: "Food", Type: domain.CategoryTypeExpense, Color: "#ff0000"})
	require.NoError(t, err)
	require.NoError(t, svc.Save(store))

	fresh := NewCategoryService()
	require.NoError(t, fresh.Load(store))

	got := fresh.ListForUser(1)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Name)
	assert.Equal(t, domain.CategoryTypeExpense, got[0].Type)
	assert.Equal(t, "#ff0000", got[0].Color)
}
