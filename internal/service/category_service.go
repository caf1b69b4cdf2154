package service

import (
	"github.com/yxchen/bookkeeper/internal/domain"
)

// CategoryService owns the per-user sets of categories. IDs and names are
// unique within one user's namespace only.
type CategoryService struct {
	byUser map[int][]domain.Category
}

// NewCategoryService creates an empty CategoryService.
func NewCategoryService() *CategoryService {
	return &CategoryService{byUser: make(map[int][]domain.Category)}
}

// Add stores a copy of the category with a freshly assigned id. Adding a
// name the user already has fails with ErrDuplicateCategory.
func (s *CategoryService) Add(userID int, category domain.Category) (*domain.Category, error) {
	if s.FindByName(userID, category.Name) != nil {
		return nil, domain.ErrDuplicateCategory
	}
	category.ID = s.nextCategoryID(userID)
	s.byUser[userID] = append(s.byUser[userID], category)
	return &category, nil
}

// Update replaces the category with the same id in place. Renaming onto a
// name held by another category of the same user fails.
func (s *CategoryService) Update(userID int, category domain.Category) error {
	categories := s.byUser[userID]
	for i, c := range categories {
		if c.ID != category.ID {
			continue
		}
		if c.Name != category.Name && s.FindByName(userID, category.Name) != nil {
			return domain.ErrDuplicateCategory
		}
		categories[i] = category
		return nil
	}
	return domain.ErrCategoryNotFound
}

// Delete removes the category by id. Bills referencing it are untouched.
func (s *CategoryService) Delete(userID, categoryID int) error {
	categories := s.byUser[userID]
	for i, c := range categories {
		if c.ID == categoryID {
			s.byUser[userID] = append(categories[:i], categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

// ListForUser returns a copy of the user's categories.
func (s *CategoryService) ListForUser(userID int) []domain.Category {
	categories := s.byUser[userID]
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

// FindByID returns a copy of the category with the given id, or nil.
func (s *CategoryService) FindByID(userID, categoryID int) *domain.Category {
	for _, c := range s.byUser[userID] {
		if c.ID == categoryID {
			found := c
			return &found
		}
	}
	return nil
}

// FindByName returns a copy of the category with the given name, or nil.
// Name comparison is case-sensitive.
func (s *CategoryService) FindByName(userID int, name string) *domain.Category {
	for _, c := range s.byUser[userID] {
		if c.Name == name {
			found := c
			return &found
		}
	}
	return nil
}

// Load replaces all registry state with the stored categories.
func (s *CategoryService) Load(st domain.Storage) error {
	byUser, err := st.LoadCategories()
	if err != nil {
		return err
	}
	if byUser == nil {
		byUser = make(map[int][]domain.Category)
	}
	s.byUser = byUser
	return nil
}

// Save writes all categories to storage.
func (s *CategoryService) Save(st domain.Storage) error {
	return st.SaveCategories(s.byUser)
}

func (s *CategoryService) nextCategoryID(userID int) int {
	next := 1
	for _, c := range s.byUser[userID] {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}
