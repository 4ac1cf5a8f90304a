package model

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User as persisted in the users collection. The credential field carries a
// bcrypt hash, never the plaintext password.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         Role   `json:"role"`
}

// Sanitized returns a copy with the credential stripped. Everything leaving
// the access layer goes through this.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// Session is the in-memory identity marker for one logged-in client.
// Sessions do not survive a process restart.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
