package domain

// User is an account holder. Passwords are opaque strings compared verbatim;
// no hashing is applied at this layer.
type User struct {
	ID          int               `json:"id"`
	Username    string            `json:"username"`
	Password    string            `json:"password"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate registry state through
// the shared preferences map.
func (u User) Clone() User {
	c := u
	if u.Preferences != nil {
		c.Preferences = make(map[string]string, len(u.Preferences))
		for k, v := range u.Preferences {
			c.Preferences[k] = v
		}
	}
	return c
}
