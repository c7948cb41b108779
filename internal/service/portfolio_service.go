package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/persistence"
	"github.com/spec-kit/portfolio-service/internal/repository"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// Cache keys for the public read endpoints. Invalidated on every mutation
// and on resume reload.
const (
	cacheKeyProfile    = "portfolio:profile"
	cacheKeySkills     = "portfolio:skills"
	cacheKeyProjects   = "portfolio:projects"
	cacheKeyExperience = "portfolio:experience"
	cacheKeyEducation  = "portfolio:education"
)

// PortfolioDependencies bundles the repositories the service reads and writes.
type PortfolioDependencies struct {
	ProfileRepo    repository.ProfileRepository
	SkillRepo      repository.SkillRepository
	ProjectRepo    repository.ProjectRepository
	ExperienceRepo repository.ExperienceRepository
	EducationRepo  repository.EducationRepository
}

// PortfolioService maps portfolio entities to transfer objects and back.
// Public reads go through a best-effort redis cache since the resources
// are read-mostly.
type PortfolioService struct {
	profiles    repository.ProfileRepository
	skills      repository.SkillRepository
	projects    repository.ProjectRepository
	experiences repository.ExperienceRepository
	education   repository.EducationRepository
	cache       *persistence.Redis
	cacheTTL    time.Duration
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewPortfolioService builds the service. cache may wrap a nil client, in
// which case reads always hit the repositories.
func NewPortfolioService(deps PortfolioDependencies, cache *persistence.Redis, cacheTTL time.Duration, dispatcher events.Dispatcher, logger *zap.Logger) *PortfolioService {
	return &PortfolioService{
		profiles:    deps.ProfileRepo,
		skills:      deps.SkillRepo,
		projects:    deps.ProjectRepo,
		experiences: deps.ExperienceRepo,
		education:   deps.EducationRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// ---------------- Public reads ----------------

// GetProfile returns the profile with nested experience and education.
func (s *PortfolioService) GetProfile(ctx context.Context) (*dto.ProfileDTO, error) {
	var cached dto.ProfileDTO
	if err := s.cache.GetJSON(ctx, cacheKeyProfile, &cached); err == nil {
		return &cached, nil
	}

	profile, err := s.profiles.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Profile")
		}
		return nil, err
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	education, err := s.ListEducation(ctx)
	if err != nil {
		return nil, err
	}

	result := mapProfile(profile)
	result.Experiences = experiences
	result.EducationList = education

	s.cacheSet(ctx, cacheKeyProfile, result)
	return result, nil
}

// ListSkills returns all skills ordered by category.
func (s *PortfolioService) ListSkills(ctx context.Context) ([]dto.SkillDTO, error) {
	var cached []dto.SkillDTO
	if err := s.cache.GetJSON(ctx, cacheKeySkills, &cached); err == nil {
		return cached, nil
	}

	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SkillDTO, 0, len(skills))
	for i := range skills {
		result = append(result, mapSkill(&skills[i]))
	}
	s.cacheSet(ctx, cacheKeySkills, result)
	return result, nil
}

// ListProjects returns all projects.
func (s *PortfolioService) ListProjects(ctx context.Context) ([]dto.ProjectDTO, error) {
	var cached []dto.ProjectDTO
	if err := s.cache.GetJSON(ctx, cacheKeyProjects, &cached); err == nil {
		return cached, nil
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProjectDTO, 0, len(projects))
	for i := range projects {
		result = append(result, mapProject(&projects[i]))
	}
	s.cacheSet(ctx, cacheKeyProjects, result)
	return result, nil
}

// ListExperiences returns all experiences with their linked projects.
func (s *PortfolioService) ListExperiences(ctx context.Context) ([]dto.ExperienceDTO, error) {
	var cached []dto.ExperienceDTO
	if err := s.cache.GetJSON(ctx, cacheKeyExperience, &cached); err == nil {
		return cached, nil
	}

	experiences, err := s.experiences.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ExperienceDTO, 0, len(experiences))
	for i := range experiences {
		exp := &experiences[i]
		item := dto.ExperienceDTO{
			ID:          exp.ID,
			Company:     exp.Company,
			Role:        exp.Role,
			Duration:    exp.Duration,
			Description: exp.Description,
		}
		linked, err := s.projects.ListByIDs(ctx, exp.ProjectIDs)
		if err != nil {
			return nil, err
		}
		for j := range linked {
			item.Projects = append(item.Projects, mapProject(&linked[j]))
		}
		result = append(result, item)
	}
	s.cacheSet(ctx, cacheKeyExperience, result)
	return result, nil
}

// ListEducation returns all education entries.
func (s *PortfolioService) ListEducation(ctx context.Context) ([]dto.EducationDTO, error) {
	var cached []dto.EducationDTO
	if err := s.cache.GetJSON(ctx, cacheKeyEducation, &cached); err == nil {
		return cached, nil
	}

	entries, err := s.education.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EducationDTO, 0, len(entries))
	for i := range entries {
		result = append(result, mapEducation(&entries[i]))
	}
	s.cacheSet(ctx, cacheKeyEducation, result)
	return result, nil
}

// ---------------- Protected mutations ----------------

// UpdateProfile updates the profile record.
func (s *PortfolioService) UpdateProfile(ctx context.Context, id int64, payload dto.ProfileDTO, actor string) (*dto.ProfileDTO, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Profile")
		}
		return nil, err
	}

	profile.Name = payload.Name
	profile.Title = payload.Title
	profile.Summary = payload.Summary
	profile.Location = payload.Location
	profile.Email = payload.Email
	profile.Phone = payload.Phone
	profile.Github = payload.Github
	profile.Linkedin = payload.Linkedin

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyProfile)
	s.publish(ctx, events.EventContentUpdated, "profile", profile.ID, actor)
	return mapProfile(profile), nil
}

// AddSkill creates a skill.
func (s *PortfolioService) AddSkill(ctx context.Context, payload dto.SkillDTO, actor string) (*dto.SkillDTO, error) {
	skill := &domain.Skill{Name: payload.Name, Level: payload.Level, Category: payload.Category}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeySkills)
	s.publish(ctx, events.EventContentCreated, "skill", skill.ID, actor)
	result := mapSkill(skill)
	return &result, nil
}

// UpdateSkill updates a skill.
func (s *PortfolioService) UpdateSkill(ctx context.Context, id int64, payload dto.SkillDTO, actor string) (*dto.SkillDTO, error) {
	skill := &domain.Skill{ID: id, Name: payload.Name, Level: payload.Level, Category: payload.Category}
	if err := s.skills.Update(ctx, skill); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Skill")
		}
		return nil, err
	}
	s.invalidate(ctx, cacheKeySkills)
	s.publish(ctx, events.EventContentUpdated, "skill", id, actor)
	result := mapSkill(skill)
	return &result, nil
}

// DeleteSkill removes a skill.
func (s *PortfolioService) DeleteSkill(ctx context.Context, id int64, actor string) error {
	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Skill")
		}
		return err
	}
	s.invalidate(ctx, cacheKeySkills)
	s.publish(ctx, events.EventContentDeleted, "skill", id, actor)
	return nil
}

// AddProject creates a project.
func (s *PortfolioService) AddProject(ctx context.Context, payload dto.ProjectDTO, actor string) (*dto.ProjectDTO, error) {
	project := &domain.Project{
		Name:        payload.Name,
		Description: payload.Description,
		GithubURL:   payload.GithubURL,
		TechStack:   payload.TechStack,
		Highlights:  payload.Highlights,
		LiveDemoURL: payload.LiveDemoURL,
		CompanyID:   payload.CompanyID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyProjects, cacheKeyExperience, cacheKeyProfile)
	s.publish(ctx, events.EventContentCreated, "project", project.ID, actor)
	result := mapProject(project)
	return &result, nil
}

// UpdateProject updates a project.
func (s *PortfolioService) UpdateProject(ctx context.Context, id int64, payload dto.ProjectDTO, actor string) (*dto.ProjectDTO, error) {
	project := &domain.Project{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		GithubURL:   payload.GithubURL,
		TechStack:   payload.TechStack,
		Highlights:  payload.Highlights,
		LiveDemoURL: payload.LiveDemoURL,
		CompanyID:   payload.CompanyID,
	}
	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Project")
		}
		return nil, err
	}
	s.invalidate(ctx, cacheKeyProjects, cacheKeyExperience, cacheKeyProfile)
	s.publish(ctx, events.EventContentUpdated, "project", id, actor)
	result := mapProject(project)
	return &result, nil
}

// DeleteProject removes a project.
func (s *PortfolioService) DeleteProject(ctx context.Context, id int64, actor string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Project")
		}
		return err
	}
	s.invalidate(ctx, cacheKeyProjects, cacheKeyExperience, cacheKeyProfile)
	s.publish(ctx, events.EventContentDeleted, "project", id, actor)
	return nil
}

// AddExperience creates an experience entry.
func (s *PortfolioService) AddExperience(ctx context.Context, payload dto.ExperienceDTO, actor string) (*dto.ExperienceDTO, error) {
	exp := &domain.Experience{
		Company:     payload.Company,
		Role:        payload.Role,
		Duration:    payload.Duration,
		Description: payload.Description,
	}
	if err := s.experiences.Create(ctx, exp); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyExperience, cacheKeyProfile)
	s.publish(ctx, events.EventContentCreated, "experience", exp.ID, actor)
	return &dto.ExperienceDTO{
		ID:          exp.ID,
		Company:     exp.Company,
		Role:        exp.Role,
		Duration:    exp.Duration,
		Description: exp.Description,
	}, nil
}

// UpdateExperience updates an experience entry.
func (s *PortfolioService) UpdateExperience(ctx context.Context, id int64, payload dto.ExperienceDTO, actor string) (*dto.ExperienceDTO, error) {
	exp := &domain.Experience{
		ID:          id,
		Company:     payload.Company,
		Role:        payload.Role,
		Duration:    payload.Duration,
		Description: payload.Description,
	}
	if err := s.experiences.Update(ctx, exp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Experience")
		}
		return nil, err
	}
	s.invalidate(ctx, cacheKeyExperience, cacheKeyProfile)
	s.publish(ctx, events.EventContentUpdated, "experience", id, actor)
	return &dto.ExperienceDTO{
		ID:          exp.ID,
		Company:     exp.Company,
		Role:        exp.Role,
		Duration:    exp.Duration,
		Description: exp.Description,
	}, nil
}

// DeleteExperience removes an experience entry and its project links.
func (s *PortfolioService) DeleteExperience(ctx context.Context, id int64, actor string) error {
	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Experience")
		}
		return err
	}
	s.invalidate(ctx, cacheKeyExperience, cacheKeyProfile)
	s.publish(ctx, events.EventContentDeleted, "experience", id, actor)
	return nil
}

// AddEducation creates an education entry.
func (s *PortfolioService) AddEducation(ctx context.Context, payload dto.EducationDTO, actor string) (*dto.EducationDTO, error) {
	edu := &domain.Education{
		Institute:  payload.Institute,
		Degree:     payload.Degree,
		CGPA:       payload.CGPA,
		Percentage: payload.Percentage,
		Board:      payload.Board,
		Duration:   payload.Duration,
	}
	if err := s.education.Create(ctx, edu); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyEducation, cacheKeyProfile)
	s.publish(ctx, events.EventContentCreated, "education", edu.ID, actor)
	result := mapEducation(edu)
	return &result, nil
}

// UpdateEducation updates an education entry.
func (s *PortfolioService) UpdateEducation(ctx context.Context, id int64, payload dto.EducationDTO, actor string) (*dto.EducationDTO, error) {
	edu := &domain.Education{
		ID:         id,
		Institute:  payload.Institute,
		Degree:     payload.Degree,
		CGPA:       payload.CGPA,
		Percentage: payload.Percentage,
		Board:      payload.Board,
		Duration:   payload.Duration,
	}
	if err := s.education.Update(ctx, edu); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Education")
		}
		return nil, err
	}
	s.invalidate(ctx, cacheKeyEducation, cacheKeyProfile)
	s.publish(ctx, events.EventContentUpdated, "education", id, actor)
	result := mapEducation(edu)
	return &result, nil
}

// DeleteEducation removes an education entry.
func (s *PortfolioService) DeleteEducation(ctx context.Context, id int64, actor string) error {
	if err := s.education.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Education")
		}
		return err
	}
	s.invalidate(ctx, cacheKeyEducation, cacheKeyProfile)
	s.publish(ctx, events.EventContentDeleted, "education", id, actor)
	return nil
}

// InvalidateAll drops every cached read. Called after a resume reload.
func (s *PortfolioService) InvalidateAll(ctx context.Context) {
	s.invalidate(ctx, cacheKeyProfile, cacheKeySkills, cacheKeyProjects, cacheKeyExperience, cacheKeyEducation)
}

// ---------------- Helpers ----------------

func (s *PortfolioService) cacheSet(ctx context.Context, key string, value any) {
	if s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *PortfolioService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Debug("cache invalidation failed", zap.Error(err))
	}
}

func (s *PortfolioService) publish(ctx context.Context, eventType events.EventType, resource string, id int64, actor string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, resource, id, actor))
}

func mapProfile(p *domain.Profile) *dto.ProfileDTO {
	return &dto.ProfileDTO{
		ID:       p.ID,
		Name:     p.Name,
		Title:    p.Title,
		Summary:  p.Summary,
		Location: p.Location,
		Email:    p.Email,
		Phone:    p.Phone,
		Github:   p.Github,
		Linkedin: p.Linkedin,
	}
}

func mapSkill(s *domain.Skill) dto.SkillDTO {
	return dto.SkillDTO{ID: s.ID, Name: s.Name, Level: s.Level, Category: s.Category}
}

func mapProject(p *domain.Project) dto.ProjectDTO {
	return dto.ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		GithubURL:   p.GithubURL,
		TechStack:   p.TechStack,
		Highlights:  p.Highlights,
		LiveDemoURL: p.LiveDemoURL,
		CompanyID:   p.CompanyID,
	}
}

func mapEducation(e *domain.Education) dto.EducationDTO {
	return dto.EducationDTO{
		ID:         e.ID,
		Institute:  e.Institute,
		Degree:     e.Degree,
		CGPA:       e.CGPA,
		Percentage: e.Percentage,
		Board:      e.Board,
		Duration:   e.Duration,
	}
}
