package dto

import (
	"regexp"
	"time"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 50
	passwordMinLength = 6
	passwordMaxLength = 100
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest payload for admin-initiated account creation.
type SignupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

// Validate checks the signup payload bounds, collecting field errors.
func (r SignupRequest) Validate() map[string]any {
	details := map[string]any{}
	if len(r.Username) < usernameMinLength || len(r.Username) > usernameMaxLength {
		details["username"] = "username must be between 3 and 50 characters"
	}
	if len(r.Password) < passwordMinLength || len(r.Password) > passwordMaxLength {
		details["password"] = "password must be between 6 and 100 characters"
	}
	if r.PhoneNumber != "" && !phonePattern.MatchString(r.PhoneNumber) {
		details["phoneNumber"] = "invalid phone number format"
	}
	if r.Role == "" {
		details["role"] = "role is required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// LoginResponse carries the issued token alongside the principal's public
// attributes for display.
type LoginResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"`
}

// SignupResponse echoes the created account's public attributes.
type SignupResponse struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}
