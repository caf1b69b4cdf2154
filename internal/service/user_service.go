package service

import (
	"github.com/yxchen/bookkeeper/internal/domain"
)

// UserService owns the registry of account holders. Usernames are globally
// unique and ids are assigned max+1 at registration.
type UserService struct {
	users map[string]domain.User // keyed by username
}

// NewUserService creates an empty UserService.
func NewUserService() *UserService {
	return &UserService{users: make(map[string]domain.User)}
}

// Register creates a new user with the next free id.
func (s *UserService) Register(username, password string) (*domain.User, error) {
	if _, ok := s.users[username]; ok {
		return nil, domain.ErrUserAlreadyExists
	}
	user := domain.User{
		ID:       s.nextUserID(),
		Username: username,
		Password: password,
	}
	s.users[username] = user
	u := user.Clone()
	return &u, nil
}

// Login checks the password verbatim and returns a copy of the user.
func (s *UserService) Login(username, password string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if user.Password != password {
		return nil, domain.ErrPasswordMismatch
	}
	u := user.Clone()
	return &u, nil
}

// FindByID returns a copy of the user with the given id, or nil.
func (s *UserService) FindByID(userID int) *domain.User {
	for _, user := range s.users {
		if user.ID == userID {
			u := user.Clone()
			return &u
		}
	}
	return nil
}

// Preferences returns a copy of a user's preference map, or nil for an
// unknown user.
func (s *UserService) Preferences(userID int) map[string]string {
	for _, user := range s.users {
		if user.ID == userID {
			return user.Clone().Preferences
		}
	}
	return nil
}

// SetPreferences merges the given keys into a user's preference map.
func (s *UserService) SetPreferences(userID int, prefs map[string]string) error {
	for username, user := range s.users {
		if user.ID != userID {
			continue
		}
		if user.Preferences == nil {
			user.Preferences = make(map[string]string, len(prefs))
		}
		for k, v := range prefs {
			user.Preferences[k] = v
		}
		s.users[username] = user
		return nil
	}
	return domain.ErrUserNotFound
}

// Load replaces all registry state with the stored user list.
func (s *UserService) Load(st domain.Storage) error {
	users, err := st.LoadUsers()
	if err != nil {
		return err
	}
	s.users = make(map[string]domain.User, len(users))
	for _, user := range users {
		s.users[user.Username] = user
	}
	return nil
}

// Save writes all users to storage.
func (s *UserService) Save(st domain.Storage) error {
	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return st.SaveUsers(users)
}

func (s *UserService) nextUserID() int {
	maxID := 0
	for _, user := range s.users {
		if user.ID > maxID {
			maxID = user.ID
		}
	}
	return maxID + 1
}
