package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/repository"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// AuthService coordinates login and admin-only account creation.
type AuthService struct {
	users      repository.AdminUserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.AdminUserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// Login verifies credentials and issues a signed token. A missing account
// and a wrong password produce the identical failure so callers cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AdminUser, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login attempt for unknown user", zap.String("username", username))
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Warn("invalid password attempt", zap.String("username", username))
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.Generate(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.logger.Info("user logged in", zap.String("username", username), zap.String("role", string(user.Role)))
	return user, token, expiresAt, nil
}

// Signup creates a new account. Only an ADMIN requester may call it; the
// role check is colocated here in addition to the route guard.
func (s *AuthService) Signup(ctx context.Context, requesterRole domain.Role, username, password, email, phoneNumber string, role domain.Role) (*domain.AdminUser, error) {
	if requesterRole != domain.RoleAdmin {
		return nil, apperrors.NewAccessDenied()
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": string(role)})
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("Username already exists")
	}
	if email != "" {
		exists, err = s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewConflict("Email already exists")
		}
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		PhoneNumber:  phoneNumber,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserCreated, "admin_user", user.ID, username))
	s.logger.Info("user created", zap.String("username", username), zap.String("role", string(role)))
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
