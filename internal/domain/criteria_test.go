package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQueryCriteria_Matches(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	inside := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	empty := QueryCriteria{}
	assert.False(t, empty.HasDateRange())
	assert.False(t, empty.HasCategoryFilter())
	assert.True(t, empty.Matches(outside, "anything"))

	ranged := QueryCriteria{StartDate: &start, EndDate: &end}
	assert.True(t, ranged.Matches(inside, ""))
	assert.True(t, ranged.Matches(start, "")) // inclusive bounds
	assert.True(t, ranged.Matches(end, ""))
	assert.False(t, ranged.Matches(outside, ""))

	// A single bound is not a range.
	half := QueryCriteria{StartDate: &start}
	assert.False(t, half.HasDateRange())
	assert.True(t, half.Matches(outside, ""))

	filtered := QueryCriteria{CategoryName: "Food"}
	assert.True(t, filtered.Matches(inside, "Food"))
	assert.False(t, filtered.Matches(inside, "food"))
	assert.False(t, filtered.Matches(inside, ""))
}

func TestBudget_CloneIsDeep(t *testing.T) {
	b := Budget{
		TotalLimit:     decimal.NewFromInt(100),
		CategoryLimits: map[int]decimal.Decimal{1: decimal.NewFromInt(50)},
	}
	c := b.Clone()
	c.CategoryLimits[1] = decimal.NewFromInt(999)
	assert.Equal(t, "50", b.CategoryLimits[1].String())
}

func TestUser_CloneIsDeep(t *testing.T) {
	u := User{ID: 1, Username: "alice", Preferences: map[string]string{"theme": "dark"}}
	c := u.Clone()
	c.Preferences["theme"] = "light"
	assert.Equal(t, "dark", u.Preferences["theme"])
}
