package models

import "time"

// Credentials is everything the browser used to keep in local storage.
type Credentials struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (c *Credentials) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

func (c *Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Session is a loaded credential set together with the ID it is stored under.
type Session struct {
	ID string `json:"-"`
	Credentials
}
