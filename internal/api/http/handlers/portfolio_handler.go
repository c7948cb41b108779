package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// PortfolioHandler exposes the portfolio resources: public reads plus
// protected mutations.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

// NewPortfolioHandler constructs handler.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolioService}
}

// ---------------- Public reads ----------------

// GetProfile handles GET /api/profile.
func (h *PortfolioHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.portfolio.GetProfile(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// ListSkills handles GET /api/skills.
func (h *PortfolioHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.portfolio.ListSkills(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skills})
}

// ListProjects handles GET /api/projects.
func (h *PortfolioHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.portfolio.ListProjects(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projects})
}

// ListExperiences handles GET /api/experience.
func (h *PortfolioHandler) ListExperiences(c *fiber.Ctx) error {
	experiences, err := h.portfolio.ListExperiences(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": experiences})
}

// ListEducation handles GET /api/education.
func (h *PortfolioHandler) ListEducation(c *fiber.Ctx) error {
	education, err := h.portfolio.ListEducation(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": education})
}

// ---------------- Protected mutations ----------------

// UpdateProfile handles PUT /api/profile/:id.
func (h *PortfolioHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload dto.ProfileDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.portfolio.UpdateProfile(c.Context(), id, payload, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// AddSkill handles POST /api/skills.
func (h *PortfolioHandler) AddSkill(c *fiber.Ctx) error {
	var payload dto.SkillDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if payload.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	skill, err := h.portfolio.AddSkill(c.Context(), payload, actor(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": skill})
}

// UpdateSkill handles PUT /api/skills/:id.
func (h *PortfolioHandler) UpdateSkill(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload dto.SkillDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.portfolio.UpdateSkill(c.Context(), id, payload, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skill})
}

// DeleteSkill handles DELETE /api/skills/:id.
func (h *PortfolioHandler) DeleteSkill(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.portfolio.DeleteSkill(c.Context(), id, actor(c)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddProject handles POST /api/projects.
func (h *PortfolioHandler) AddProject(c *fiber.Ctx) error {
	var payload dto.ProjectDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if payload.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	project, err := h.portfolio.AddProject(c.Context(), payload, actor(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": project})
}

// UpdateProject handles PUT /api/projects/:id.
func (h *PortfolioHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload dto.ProjectDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	project, err := h.portfolio.UpdateProject(c.Context(), id, payload, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": project})
}

// DeleteProject handles DELETE /api/projects/:id.
func (h *PortfolioHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.portfolio.DeleteProject(c.Context(), id, actor(c)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddExperience handles POST /api/experience.
func (h *PortfolioHandler) AddExperience(c *fiber.Ctx) error {
	var payload dto.ExperienceDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if payload.Company == "" {
		return apperrors.NewValidationError("company required", nil)
	}
	experience, err := h.portfolio.AddExperience(c.Context(), payload, actor(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": experience})
}

// UpdateExperience handles PUT /api/experience/:id.
func (h *PortfolioHandler) UpdateExperience(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload dto.ExperienceDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	experience, err := h.portfolio.UpdateExperience(c.Context(), id, payload, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": experience})
}

// DeleteExperience handles DELETE /api/experience/:id.
func (h *PortfolioHandler) DeleteExperience(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.portfolio.DeleteExperience(c.Context(), id, actor(c)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddEducation handles POST /api/education.
func (h *PortfolioHandler) AddEducation(c *fiber.Ctx) error {
	var payload dto.EducationDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if payload.Institute == "" {
		return apperrors.NewValidationError("institute required", nil)
	}
	education, err := h.portfolio.AddEducation(c.Context(), payload, actor(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": education})
}

// UpdateEducation handles PUT /api/education/:id.
func (h *PortfolioHandler) UpdateEducation(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload dto.EducationDTO
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	education, err := h.portfolio.UpdateEducation(c.Context(), id, payload, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": education})
}

// DeleteEducation handles DELETE /api/education/:id.
func (h *PortfolioHandler) DeleteEducation(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.portfolio.DeleteEducation(c.Context(), id, actor(c)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

func actor(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.Subject
	}
	return "SYSTEM"
}
