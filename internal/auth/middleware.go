package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

const (
	principalKey = "auth_principal"
	bearerPrefix = "Bearer "
)

// Principal represents the authenticated caller for the duration of a
// single request. It never outlives the request it was attached to.
type Principal struct {
	Subject     string
	UserID      int64
	Email       string
	PhoneNumber string
	Role        domain.Role
	Authority   string
}

// Gate validates bearer tokens on every inbound request. It never rejects
// a request itself: requests without a usable credential continue
// unauthenticated, and the route guards decide whether that is acceptable.
type Gate struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewGate constructs the authentication gate.
func NewGate(tokens *TokenManager, logger *zap.Logger) *Gate {
	return &Gate{tokens: tokens, logger: logger}
}

// Handle runs once per request before any route handler. A valid bearer
// token attaches a Principal to the request locals; anything else, from a
// missing header to a tampered token, degrades to unauthenticated.
func (g *Gate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
		return c.Next()
	}

	tokenStr := authHeader[len(bearerPrefix):]
	subject, err := g.tokens.Subject(tokenStr)
	if err != nil {
		g.logger.Debug("unparseable bearer token", zap.Error(err))
		return c.Next()
	}

	if subject != "" && c.Locals(principalKey) == nil {
		g.authenticate(c, tokenStr, subject)
	}

	return c.Next()
}

func (g *Gate) authenticate(c *fiber.Ctx, tokenStr, subject string) {
	if !g.tokens.Validate(tokenStr, subject) {
		g.logger.Warn("token validation failed", zap.String("subject", subject))
		return
	}

	claims, err := g.tokens.Parse(tokenStr)
	if err != nil {
		return
	}

	// Fail closed on a missing or unrecognized role claim: the caller is
	// authenticated but read-only.
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		g.logger.Warn("token carries no usable role, downgrading to VIEW",
			zap.String("subject", subject), zap.String("role", claims.Role))
		role = domain.RoleView
	}

	c.Locals(principalKey, &Principal{
		Subject:     claims.Subject,
		UserID:      claims.UserID,
		Email:       claims.Email,
		PhoneNumber: claims.PhoneNumber,
		Role:        role,
		Authority:   "ROLE_" + string(role),
	})
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
