package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Portfolio *handlers.PortfolioHandler
	Admin     *handlers.AdminHandler
	Gate      *auth.Gate
}

// RegisterRoutes wires HTTP routes. The gate runs on every request and only
// attaches a principal; the guards below decide which routes require one.
// Reads on portfolio resources are public, mutations need EDITOR, deletes
// and account/admin operations need ADMIN.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", auth.RequireAuthenticated(), auth.RequireRole(domain.RoleAdmin), cfg.Auth.Signup)

	api := app.Group("/api")

	api.Get("/profile", cfg.Portfolio.GetProfile)
	api.Get("/skills", cfg.Portfolio.ListSkills)
	api.Get("/projects", cfg.Portfolio.ListProjects)
	api.Get("/experience", cfg.Portfolio.ListExperiences)
	api.Get("/education", cfg.Portfolio.ListEducation)

	editor := []fiber.Handler{auth.RequireAuthenticated(), auth.RequireRole(domain.RoleEditor)}
	admin := []fiber.Handler{auth.RequireAuthenticated(), auth.RequireRole(domain.RoleAdmin)}

	api.Put("/profile/:id", append(editor, cfg.Portfolio.UpdateProfile)...)

	api.Post("/skills", append(editor, cfg.Portfolio.AddSkill)...)
	api.Put("/skills/:id", append(editor, cfg.Portfolio.UpdateSkill)...)
	api.Delete("/skills/:id", append(admin, cfg.Portfolio.DeleteSkill)...)

	api.Post("/projects", append(editor, cfg.Portfolio.AddProject)...)
	api.Put("/projects/:id", append(editor, cfg.Portfolio.UpdateProject)...)
	api.Delete("/projects/:id", append(admin, cfg.Portfolio.DeleteProject)...)

	api.Post("/experience", append(editor, cfg.Portfolio.AddExperience)...)
	api.Put("/experience/:id", append(editor, cfg.Portfolio.UpdateExperience)...)
	api.Delete("/experience/:id", append(admin, cfg.Portfolio.DeleteExperience)...)

	api.Post("/education", append(editor, cfg.Portfolio.AddEducation)...)
	api.Put("/education/:id", append(editor, cfg.Portfolio.UpdateEducation)...)
	api.Delete("/education/:id", append(admin, cfg.Portfolio.DeleteEducation)...)

	adminGroup := api.Group("/admin", admin...)
	adminGroup.Post("/reload-resume", cfg.Admin.ReloadResume)
}
