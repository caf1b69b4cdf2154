package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yxchen/bookkeeper/internal/domain"
)

// BillService owns the per-user ledgers of bills and the per-user id
// counters backing auto-assignment. Category references are held by id only
// and resolved against the CategoryService at read time, so a bill may
// outlive the category it points at.
type BillService struct {
	categories *CategoryService

	byUser     map[int][]domain.Bill
	nextBillID map[int]int
}

// NewBillService creates an empty BillService resolving category names
// through the given registry.
func NewBillService(categories *CategoryService) *BillService {
	return &BillService{
		categories: categories,
		byUser:     make(map[int][]domain.Bill),
		nextBillID: make(map[int]int),
	}
}

// Add appends a bill to the user's ledger. A bill carrying the unassigned id
// sentinel gets the next id from the user's counter; an explicit id that
// collides with an existing bill is rejected without advancing the counter,
// and a non-colliding explicit id pushes the counter past it.
func (s *BillService) Add(userID int, bill domain.Bill) (*domain.Bill, error) {
	if _, ok := s.nextBillID[userID]; !ok {
		s.nextBillID[userID] = 1
	}

	if bill.ID == domain.UnassignedID {
		bill.ID = s.nextBillID[userID]
		s.nextBillID[userID]++
	} else {
		for _, b := range s.byUser[userID] {
			if b.ID == bill.ID {
				log.Debug().Int("user_id", userID).Int("bill_id", bill.ID).Msg("Rejected duplicate bill id")
				return nil, fmt.Errorf("%w: duplicate bill id %d", domain.ErrInvalidBill, bill.ID)
			}
		}
		if bill.ID+1 > s.nextBillID[userID] {
			s.nextBillID[userID] = bill.ID + 1
		}
	}

	s.byUser[userID] = append(s.byUser[userID], bill)
	return &bill, nil
}

// Update replaces the bill with the same id wholesale.
func (s *BillService) Update(userID int, bill domain.Bill) error {
	bills := s.byUser[userID]
	for i, b := range bills {
		if b.ID == bill.ID {
			bills[i] = bill
			return nil
		}
	}
	return domain.ErrBillNotFound
}

// Delete removes the bill by id.
func (s *BillService) Delete(userID, billID int) error {
	bills := s.byUser[userID]
	for i, b := range bills {
		if b.ID == billID {
			s.byUser[userID] = append(bills[:i], bills[i+1:]...)
			return nil
		}
	}
	return domain.ErrBillNotFound
}

// ListForUser returns a copy of the user's ledger.
func (s *BillService) ListForUser(userID int) []domain.Bill {
	bills := s.byUser[userID]
	out := make([]domain.Bill, len(bills))
	copy(out, bills)
	return out
}

// FindByID returns a copy of the bill with the given id, or nil.
func (s *BillService) FindByID(userID, billID int) *domain.Bill {
	for _, b := range s.byUser[userID] {
		if b.ID == billID {
			found := b
			return &found
		}
	}
	return nil
}

// QueryByCriteria filters the user's ledger: a bill survives iff its
// timestamp falls inside the criteria's inclusive date range (when set) and
// its resolved category name equals the category filter (when set).
func (s *BillService) QueryByCriteria(userID int, criteria domain.QueryCriteria) []domain.Bill {
	var out []domain.Bill
	for _, b := range s.byUser[userID] {
		if criteria.Matches(b.Time, s.ResolveCategoryName(userID, b)) {
			out = append(out, b)
		}
	}
	return out
}

// ResolveCategoryName looks up the bill's category at read time. Bills with
// no category, or whose category has since been deleted, resolve to "".
func (s *BillService) ResolveCategoryName(userID int, bill domain.Bill) string {
	if bill.CategoryID == domain.UnassignedID {
		return ""
	}
	if c := s.categories.FindByID(userID, bill.CategoryID); c != nil {
		return c.Name
	}
	return ""
}

// ResolveCategory returns the bill's category, or nil when the reference no
// longer resolves.
func (s *BillService) ResolveCategory(userID int, bill domain.Bill) *domain.Category {
	if bill.CategoryID == domain.UnassignedID {
		return nil
	}
	return s.categories.FindByID(userID, bill.CategoryID)
}

// Load replaces all ledger state with the stored bills and rebuilds the
// per-user id counters to max+1. Category references are checked against the
// registry; unresolvable ids are kept but logged, since reads treat them as
// uncategorized anyway.
func (s *BillService) Load(st domain.Storage) error {
	byUser, err := st.LoadBills()
	if err != nil {
		return err
	}
	if byUser == nil {
		byUser = make(map[int][]domain.Bill)
	}
	s.byUser = byUser
	s.nextBillID = make(map[int]int, len(byUser))

	for userID, bills := range byUser {
		maxID := 0
		for _, b := range bills {
			if b.ID > maxID {
				maxID = b.ID
			}
			if b.CategoryID != domain.UnassignedID && s.categories.FindByID(userID, b.CategoryID) == nil {
				log.Debug().
					Int("user_id", userID).
					Int("bill_id", b.ID).
					Int("category_id", b.CategoryID).
					Msg("Bill references a missing category")
			}
		}
		s.nextBillID[userID] = maxID + 1
	}
	return nil
}

// Save writes all bills to storage.
func (s *BillService) Save(st domain.Storage) error {
	return st.SaveBills(s.byUser)
}
