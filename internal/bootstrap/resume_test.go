package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
)

type memProfileRepo struct {
	profiles []domain.Profile
	nextID   int64
}

func (r *memProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	r.nextID++
	p.ID = r.nextID
	r.profiles = append(r.profiles, *p)
	return nil
}

func (r *memProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	for i := range r.profiles {
		if r.profiles[i].ID == p.ID {
			r.profiles[i] = *p
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memProfileRepo) GetFirst(_ context.Context) (*domain.Profile, error) {
	if len(r.profiles) == 0 {
		return nil, pgx.ErrNoRows
	}
	clone := r.profiles[0]
	return &clone, nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	for i := range r.profiles {
		if r.profiles[i].ID == id {
			clone := r.profiles[i]
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memProfileRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.profiles)), nil
}

func (r *memProfileRepo) DeleteAll(_ context.Context) error {
	r.profiles = nil
	return nil
}

type memSkillRepo struct {
	skills []domain.Skill
	nextID int64
}

func (r *memSkillRepo) Create(_ context.Context, s *domain.Skill) error {
	r.nextID++
	s.ID = r.nextID
	r.skills = append(r.skills, *s)
	return nil
}

func (r *memSkillRepo) Update(_ context.Context, s *domain.Skill) error {
	for i := range r.skills {
		if r.skills[i].ID == s.ID {
			r.skills[i] = *s
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memSkillRepo) Delete(_ context.Context, id int64) error {
	for i := range r.skills {
		if r.skills[i].ID == id {
			r.skills = append(r.skills[:i], r.skills[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memSkillRepo) List(_ context.Context) ([]domain.Skill, error) {
	return append([]domain.Skill{}, r.skills...), nil
}

func (r *memSkillRepo) DeleteAll(_ context.Context) error {
	r.skills = nil
	return nil
}

type memProjectRepo struct {
	projects []domain.Project
	nextID   int64
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.nextID++
	p.ID = r.nextID
	r.projects = append(r.projects, *p)
	return nil
}

func (r *memProjectRepo) Update(_ context.Context, p *domain.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = *p
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memProjectRepo) Delete(_ context.Context, id int64) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memProjectRepo) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			clone := r.projects[i]
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	return append([]domain.Project{}, r.projects...), nil
}

func (r *memProjectRepo) ListByIDs(_ context.Context, ids []int64) ([]domain.Project, error) {
	var result []domain.Project
	for _, id := range ids {
		for i := range r.projects {
			if r.projects[i].ID == id {
				result = append(result, r.projects[i])
			}
		}
	}
	return result, nil
}

func (r *memProjectRepo) DeleteAll(_ context.Context) error {
	r.projects = nil
	return nil
}

type memExperienceRepo struct {
	experiences []domain.Experience
	links       map[int64][]int64
	nextID      int64
}

func newMemExperienceRepo() *memExperienceRepo {
	return &memExperienceRepo{links: make(map[int64][]int64)}
}

func (r *memExperienceRepo) Create(_ context.Context, e *domain.Experience) error {
	r.nextID++
	e.ID = r.nextID
	r.experiences = append(r.experiences, *e)
	return nil
}

func (r *memExperienceRepo) Update(_ context.Context, e *domain.Experience) error {
	for i := range r.experiences {
		if r.experiences[i].ID == e.ID {
			r.experiences[i] = *e
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memExperienceRepo) Delete(_ context.Context, id int64) error {
	for i := range r.experiences {
		if r.experiences[i].ID == id {
			r.experiences = append(r.experiences[:i], r.experiences[i+1:]...)
			delete(r.links, id)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memExperienceRepo) List(_ context.Context) ([]domain.Experience, error) {
	result := append([]domain.Experience{}, r.experiences...)
	for i := range result {
		result[i].ProjectIDs = append([]int64{}, r.links[result[i].ID]...)
	}
	return result, nil
}

func (r *memExperienceRepo) ReplaceProjects(_ context.Context, expID int64, projectIDs []int64) error {
	r.links[expID] = append([]int64{}, projectIDs...)
	return nil
}

func (r *memExperienceRepo) DeleteAll(_ context.Context) error {
	r.experiences = nil
	r.links = make(map[int64][]int64)
	return nil
}

type memEducationRepo struct {
	entries []domain.Education
	nextID  int64
}

func (r *memEducationRepo) Create(_ context.Context, e *domain.Education) error {
	r.nextID++
	e.ID = r.nextID
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memEducationRepo) Update(_ context.Context, e *domain.Education) error {
	for i := range r.entries {
		if r.entries[i].ID == e.ID {
			r.entries[i] = *e
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memEducationRepo) Delete(_ context.Context, id int64) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memEducationRepo) List(_ context.Context) ([]domain.Education, error) {
	return append([]domain.Education{}, r.entries...), nil
}

func (r *memEducationRepo) DeleteAll(_ context.Context) error {
	r.entries = nil
	return nil
}

const sampleResume = `{
  "profile": {
    "name": "Jordan Rivera",
    "title": "Backend Engineer",
    "email": "jordan@example.com",
    "summary": "Builds services."
  },
  "skills": {
    "Languages": ["Go", "SQL"],
    "Infrastructure": ["PostgreSQL"]
  },
  "projects": [
    {"name": "Sync Engine", "techStack": "Go", "companyId": 1},
    {"name": "Telemetry API", "companyId": 1},
    {"name": "Side Project"}
  ],
  "experiences": [
    {"id": 1, "company": "Northwind", "role": "Engineer", "duration": "2022 - Present"},
    {"id": 2, "company": "Veloz", "role": "Engineer", "duration": "2019 - 2022"}
  ],
  "education": [
    {"institute": "University of Lisbon", "degree": "BSc", "cgpa": 8.7}
  ]
}`

type importerFixture struct {
	importer    *ResumeImporter
	profiles    *memProfileRepo
	skills      *memSkillRepo
	projects    *memProjectRepo
	experiences *memExperienceRepo
	education   *memEducationRepo
	dispatcher  events.Dispatcher
}

func newImporterFixture(t *testing.T, resumeJSON string) *importerFixture {
	t.Helper()
	file := filepath.Join(t.TempDir(), "resume.json")
	if err := os.WriteFile(file, []byte(resumeJSON), 0o600); err != nil {
		t.Fatalf("write resume file: %v", err)
	}

	f := &importerFixture{
		profiles:    &memProfileRepo{},
		skills:      &memSkillRepo{},
		projects:    &memProjectRepo{},
		experiences: newMemExperienceRepo(),
		education:   &memEducationRepo{},
		dispatcher:  events.NewInMemoryDispatcher(),
	}
	f.importer = NewResumeImporter(ResumeDependencies{
		ProfileRepo:    f.profiles,
		SkillRepo:      f.skills,
		ProjectRepo:    f.projects,
		ExperienceRepo: f.experiences,
		EducationRepo:  f.education,
	}, file, f.dispatcher, zap.NewNop())
	return f
}

func TestImportIfEmptySeedsStore(t *testing.T) {
	f := newImporterFixture(t, sampleResume)
	ctx := context.Background()

	if err := f.importer.ImportIfEmpty(ctx); err != nil {
		t.Fatalf("ImportIfEmpty: %v", err)
	}

	if len(f.profiles.profiles) != 1 {
		t.Fatalf("expected 1 profile got %d", len(f.profiles.profiles))
	}
	if f.profiles.profiles[0].Name != "Jordan Rivera" {
		t.Fatalf("unexpected profile %+v", f.profiles.profiles[0])
	}

	if len(f.skills.skills) != 3 {
		t.Fatalf("expected 3 skills got %d", len(f.skills.skills))
	}
	categories := map[string]int{}
	for _, s := range f.skills.skills {
		categories[s.Category]++
	}
	if categories["Languages"] != 2 || categories["Infrastructure"] != 1 {
		t.Fatalf("unexpected category grouping %v", categories)
	}

	if len(f.projects.projects) != 3 {
		t.Fatalf("expected 3 projects got %d", len(f.projects.projects))
	}
	if len(f.experiences.experiences) != 2 {
		t.Fatalf("expected 2 experiences got %d", len(f.experiences.experiences))
	}
	if len(f.education.entries) != 1 {
		t.Fatalf("expected 1 education entry got %d", len(f.education.entries))
	}
}

func TestImportLinksProjectsByCompanyID(t *testing.T) {
	f := newImporterFixture(t, sampleResume)
	ctx := context.Background()

	if err := f.importer.ImportIfEmpty(ctx); err != nil {
		t.Fatalf("ImportIfEmpty: %v", err)
	}

	var northwindID int64
	for _, e := range f.experiences.experiences {
		if e.Company == "Northwind" {
			northwindID = e.ID
		}
	}
	if northwindID == 0 {
		t.Fatal("Northwind experience not created")
	}

	linked := f.experiences.links[northwindID]
	if len(linked) != 2 {
		t.Fatalf("expected 2 projects linked to Northwind, got %v", linked)
	}

	var velozID int64
	for _, e := range f.experiences.experiences {
		if e.Company == "Veloz" {
			velozID = e.ID
		}
	}
	if len(f.experiences.links[velozID]) != 0 {
		t.Fatalf("Veloz must have no linked projects, got %v", f.experiences.links[velozID])
	}
}

func TestImportIfEmptySkipsSeededStore(t *testing.T) {
	f := newImporterFixture(t, sampleResume)
	ctx := context.Background()

	if err := f.profiles.Create(ctx, &domain.Profile{Name: "Existing"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := f.importer.ImportIfEmpty(ctx); err != nil {
		t.Fatalf("ImportIfEmpty: %v", err)
	}
	if len(f.profiles.profiles) != 1 || f.profiles.profiles[0].Name != "Existing" {
		t.Fatalf("existing data must be left untouched, got %+v", f.profiles.profiles)
	}
	if len(f.skills.skills) != 0 {
		t.Fatal("import must be skipped when a profile exists")
	}
}

func TestReloadReplacesDataAndPublishes(t *testing.T) {
	f := newImporterFixture(t, sampleResume)
	ctx := context.Background()

	var reloads []events.Event
	f.dispatcher.Subscribe(events.EventResumeReloaded, func(_ context.Context, e events.Event) error {
		reloads = append(reloads, e)
		return nil
	})

	if err := f.importer.ImportIfEmpty(ctx); err != nil {
		t.Fatalf("ImportIfEmpty: %v", err)
	}
	if err := f.skills.Create(ctx, &domain.Skill{Name: "Stale", Category: "Leftover"}); err != nil {
		t.Fatalf("seed stale skill: %v", err)
	}

	if err := f.importer.Reload(ctx, "admin"); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if len(f.skills.skills) != 3 {
		t.Fatalf("expected reload to reset skills to 3, got %d", len(f.skills.skills))
	}
	for _, s := range f.skills.skills {
		if s.Name == "Stale" {
			t.Fatal("stale skill survived reload")
		}
	}
	if len(reloads) != 1 {
		t.Fatalf("expected 1 reload event got %d", len(reloads))
	}
	if reloads[0].Actor != "admin" {
		t.Fatalf("unexpected actor %q", reloads[0].Actor)
	}
}

func TestReloadFailsOnMissingFile(t *testing.T) {
	f := newImporterFixture(t, sampleResume)
	f.importer.file = filepath.Join(t.TempDir(), "absent.json")

	if err := f.importer.Reload(context.Background(), "admin"); err == nil {
		t.Fatal("expected error for missing resume file")
	}
}
