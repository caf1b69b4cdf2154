package domain

// Storage is the persistence collaborator behind the engine. Each entity kind
// is loaded and saved in bulk; per-user data is keyed by user id. A missing
// backing record set is an empty result with a nil error (first run), while a
// present-but-corrupt source must surface an error so initialization aborts.
//
// Reports are deliberately absent: they are derived data and always
// recomputed from the ledger.
type Storage interface {
	LoadUsers() ([]User, error)
	SaveUsers(users []User) error

	LoadCategories() (map[int][]Category, error)
	SaveCategories(categories map[int][]Category) error

	LoadBills() (map[int][]Bill, error)
	SaveBills(bills map[int][]Bill) error

	LoadBudgets() (map[int]Budget, error)
	SaveBudgets(budgets map[int]Budget) error
}
