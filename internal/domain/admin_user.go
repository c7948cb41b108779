package domain

import "time"

// AdminUser is an account allowed to authenticate against the service.
// PasswordHash holds a bcrypt digest; the plaintext is never stored.
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	PhoneNumber  string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
