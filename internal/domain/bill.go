package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnassignedID is the sentinel bill/category id meaning "not assigned yet".
// Real ids start at 1.
const UnassignedID = 0

// MaxBillAmount is the upper bound accepted for a single bill.
var MaxBillAmount = decimal.NewFromInt(1_000_000)

// Bill is a single recorded transaction. It references its category by id
// only; the category may have been deleted since, in which case the id is
// kept but no longer resolves to a name. Amount sign conventionally splits
// income from expense in report aggregation, independent of the referenced
// category's type tag.
type Bill struct {
	ID         int             `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID int             `json:"categoryId"`
	Time       time.Time       `json:"time"`
	Note       string          `json:"note,omitempty"`
}
