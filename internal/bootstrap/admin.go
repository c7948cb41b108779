package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/repository"
)

// EnsureAdmin creates the initial ADMIN account from configuration when the
// account store is empty. Signup is ADMIN-only, so without this a fresh
// install would have no way to authenticate.
func EnsureAdmin(ctx context.Context, cfg config.AuthConfig, users repository.AdminUserRepository, logger *zap.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		logger.Warn("no admin accounts exist and ADMIN_PASSWORD is unset; skipping admin provisioning")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}

	user := &domain.AdminUser{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Email:        cfg.AdminEmail,
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("initial admin account created", zap.String("username", user.Username))
	return nil
}
