package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/domain"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// RequireAuthenticated rejects requests that carry no valid principal.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewAuthenticationRequired()
		}
		return c.Next()
	}
}

// RequireRole rejects authenticated requests whose role carries less
// privilege than min. It must run after RequireAuthenticated.
func RequireRole(min domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewAuthenticationRequired()
		}
		if !principal.Role.AtLeast(min) {
			return apperrors.NewAccessDenied()
		}
		return c.Next()
	}
}
