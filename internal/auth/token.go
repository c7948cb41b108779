package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// ErrInvalidToken covers malformed, unsigned, tampered or incomplete tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager handles issuing and validating JWT tokens. It holds the
// process-wide signing secret; all operations are pure functions of the
// secret and their inputs, so a single instance is safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager with the given token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload. Subject carries the username.
type Claims struct {
	UserID      int64  `json:"userId"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Expired reports whether the claims are expired at the given instant.
// The boundary is inclusive toward expiry: a token whose expiresAt equals
// now is already expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

// Generate builds and signs a JWT carrying the user's identity and role.
func (tm *TokenManager) Generate(user *domain.AdminUser) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID:      user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse verifies the signature and returns the claims. Mandatory fields
// (subject, expiry) must be present; anything else fails with ErrInvalidToken.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Subject extracts the subject without verifying the signature. This is the
// cheap pre-parse used by the authentication gate before the full check.
func (tm *TokenManager) Subject(tokenStr string) (string, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Validate reports whether the token is correctly signed, unexpired and
// bound to the expected subject. It is total: any failure, including
// garbage input, yields false rather than an error, because this check
// runs on every authenticated request.
func (tm *TokenManager) Validate(tokenStr, expectedSubject string) bool {
	claims, err := tm.Parse(tokenStr)
	if err != nil {
		return false
	}
	if claims.Expired(time.Now()) {
		return false
	}
	return claims.Subject == expectedSubject
}
