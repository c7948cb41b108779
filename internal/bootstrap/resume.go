package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/repository"
)

// resumeFile mirrors the resume.json layout: skills grouped by category
// key, projects carrying an optional companyId that links them to the
// experience entry with the matching id.
type resumeFile struct {
	Profile *struct {
		Name     string `json:"name"`
		Title    string `json:"title"`
		Location string `json:"location"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Github   string `json:"github"`
		Linkedin string `json:"linkedin"`
		Summary  string `json:"summary"`
	} `json:"profile"`
	Skills   map[string][]string `json:"skills"`
	Projects []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		GithubURL   string   `json:"githubUrl"`
		TechStack   string   `json:"techStack"`
		Highlights  []string `json:"highlights"`
		LiveDemoURL string   `json:"liveDemoUrl"`
		CompanyID   *int64   `json:"companyId"`
	} `json:"projects"`
	Experiences []struct {
		ID          *int64 `json:"id"`
		Company     string `json:"company"`
		Role        string `json:"role"`
		Duration    string `json:"duration"`
		Description string `json:"description"`
	} `json:"experiences"`
	Education []struct {
		Institute  string   `json:"institute"`
		Degree     string   `json:"degree"`
		CGPA       *float64 `json:"cgpa"`
		Percentage string   `json:"percentage"`
		Board      string   `json:"board"`
		Duration   string   `json:"duration"`
	} `json:"education"`
}

// ResumeImporter seeds portfolio data from a JSON resume file.
type ResumeImporter struct {
	profiles    repository.ProfileRepository
	skills      repository.SkillRepository
	projects    repository.ProjectRepository
	experiences repository.ExperienceRepository
	education   repository.EducationRepository
	file        string
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// ResumeDependencies bundles repo requirements for the importer.
type ResumeDependencies struct {
	ProfileRepo    repository.ProfileRepository
	SkillRepo      repository.SkillRepository
	ProjectRepo    repository.ProjectRepository
	ExperienceRepo repository.ExperienceRepository
	EducationRepo  repository.EducationRepository
}

// NewResumeImporter builds the importer.
func NewResumeImporter(deps ResumeDependencies, file string, dispatcher events.Dispatcher, logger *zap.Logger) *ResumeImporter {
	return &ResumeImporter{
		profiles:    deps.ProfileRepo,
		skills:      deps.SkillRepo,
		projects:    deps.ProjectRepo,
		experiences: deps.ExperienceRepo,
		education:   deps.EducationRepo,
		file:        file,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// ImportIfEmpty seeds the store on first startup only.
func (i *ResumeImporter) ImportIfEmpty(ctx context.Context) error {
	count, err := i.profiles.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return i.importFile(ctx)
}

// Reload clears all portfolio data and re-imports the resume file.
func (i *ResumeImporter) Reload(ctx context.Context, actor string) error {
	if err := i.clearAll(ctx); err != nil {
		return err
	}
	if err := i.importFile(ctx); err != nil {
		return err
	}
	if i.dispatcher != nil {
		_ = i.dispatcher.Publish(ctx, events.NewEvent(events.EventResumeReloaded, "resume", 0, actor))
	}
	return nil
}

func (i *ResumeImporter) clearAll(ctx context.Context) error {
	if err := i.experiences.DeleteAll(ctx); err != nil {
		return err
	}
	if err := i.projects.DeleteAll(ctx); err != nil {
		return err
	}
	if err := i.education.DeleteAll(ctx); err != nil {
		return err
	}
	if err := i.skills.DeleteAll(ctx); err != nil {
		return err
	}
	return i.profiles.DeleteAll(ctx)
}

func (i *ResumeImporter) importFile(ctx context.Context) error {
	content, err := os.ReadFile(i.file)
	if err != nil {
		return fmt.Errorf("read resume file: %w", err)
	}

	var resume resumeFile
	if err := json.Unmarshal(content, &resume); err != nil {
		return fmt.Errorf("parse resume file: %w", err)
	}

	for category, names := range resume.Skills {
		for _, name := range names {
			skill := &domain.Skill{Name: name, Category: category}
			if err := i.skills.Create(ctx, skill); err != nil {
				return err
			}
		}
	}

	projectsByCompany := make(map[int64][]int64)
	for _, p := range resume.Projects {
		project := &domain.Project{
			Name:        p.Name,
			Description: p.Description,
			GithubURL:   p.GithubURL,
			TechStack:   p.TechStack,
			Highlights:  p.Highlights,
			LiveDemoURL: p.LiveDemoURL,
			CompanyID:   p.CompanyID,
		}
		if err := i.projects.Create(ctx, project); err != nil {
			return err
		}
		if p.CompanyID != nil {
			projectsByCompany[*p.CompanyID] = append(projectsByCompany[*p.CompanyID], project.ID)
		}
	}

	for _, e := range resume.Experiences {
		exp := &domain.Experience{
			Company:     e.Company,
			Role:        e.Role,
			Duration:    e.Duration,
			Description: e.Description,
		}
		if err := i.experiences.Create(ctx, exp); err != nil {
			return err
		}
		if e.ID != nil {
			if linked := projectsByCompany[*e.ID]; len(linked) > 0 {
				if err := i.experiences.ReplaceProjects(ctx, exp.ID, linked); err != nil {
					return err
				}
				i.logger.Debug("linked projects to experience",
					zap.Int64("experience_id", exp.ID), zap.Int("projects", len(linked)))
			}
		}
	}

	for _, e := range resume.Education {
		edu := &domain.Education{
			Institute:  e.Institute,
			Degree:     e.Degree,
			CGPA:       e.CGPA,
			Percentage: e.Percentage,
			Board:      e.Board,
			Duration:   e.Duration,
		}
		if err := i.education.Create(ctx, edu); err != nil {
			return err
		}
	}

	if resume.Profile != nil {
		profile := &domain.Profile{
			Name:     resume.Profile.Name,
			Title:    resume.Profile.Title,
			Summary:  resume.Profile.Summary,
			Location: resume.Profile.Location,
			Email:    resume.Profile.Email,
			Phone:    resume.Profile.Phone,
			Github:   resume.Profile.Github,
			Linkedin: resume.Profile.Linkedin,
		}
		if err := i.profiles.Create(ctx, profile); err != nil {
			return err
		}
	}

	i.logger.Info("resume data imported", zap.String("file", i.file))
	return nil
}
