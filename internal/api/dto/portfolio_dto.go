package dto

// ProfileDTO is the transfer shape for the personal profile, including the
// nested experience and education lists the public endpoint returns.
type ProfileDTO struct {
	ID            int64           `json:"id,omitempty"`
	Name          string          `json:"name"`
	Title         string          `json:"title,omitempty"`
	Summary       string          `json:"summary,omitempty"`
	Location      string          `json:"location,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Github        string          `json:"github,omitempty"`
	Linkedin      string          `json:"linkedin,omitempty"`
	Experiences   []ExperienceDTO `json:"experiences,omitempty"`
	EducationList []EducationDTO  `json:"educationList,omitempty"`
}

// SkillDTO is the transfer shape for a skill.
type SkillDTO struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// ProjectDTO is the transfer shape for a project.
type ProjectDTO struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	TechStack   string   `json:"techStack,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	LiveDemoURL string   `json:"liveDemoUrl,omitempty"`
	CompanyID   *int64   `json:"companyId,omitempty"`
}

// ExperienceDTO is the transfer shape for a work history entry with its
// linked projects.
type ExperienceDTO struct {
	ID          int64        `json:"id,omitempty"`
	Company     string       `json:"company"`
	Role        string       `json:"role,omitempty"`
	Duration    string       `json:"duration,omitempty"`
	Description string       `json:"description,omitempty"`
	Projects    []ProjectDTO `json:"projects,omitempty"`
}

// EducationDTO is the transfer shape for an education entry.
type EducationDTO struct {
	ID         int64    `json:"id,omitempty"`
	Institute  string   `json:"institute"`
	Degree     string   `json:"degree,omitempty"`
	CGPA       *float64 `json:"cgpa,omitempty"`
	Percentage string   `json:"percentage,omitempty"`
	Board      string   `json:"board,omitempty"`
	Duration   string   `json:"duration,omitempty"`
}
