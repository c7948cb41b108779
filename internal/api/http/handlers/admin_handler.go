package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/bootstrap"
	"github.com/spec-kit/portfolio-service/internal/service"
)

// AdminHandler exposes the resume reload trigger. Unlike some deployments
// of this kind, the reload route requires an authenticated ADMIN: an open
// data-reset endpoint is not acceptable.
type AdminHandler struct {
	importer  *bootstrap.ResumeImporter
	portfolio *service.PortfolioService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(importer *bootstrap.ResumeImporter, portfolioService *service.PortfolioService) *AdminHandler {
	return &AdminHandler{importer: importer, portfolio: portfolioService}
}

// ReloadResume handles POST /api/admin/reload-resume.
func (h *AdminHandler) ReloadResume(c *fiber.Ctx) error {
	if err := h.importer.Reload(c.Context(), actor(c)); err != nil {
		return err
	}
	h.portfolio.InvalidateAll(c.Context())
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "Resume data reloaded successfully"},
	})
}
