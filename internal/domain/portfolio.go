package domain

import "time"

// Profile is the single personal profile exposed by the portfolio.
type Profile struct {
	ID        int64
	Name      string
	Title     string
	Summary   string
	Location  string
	Email     string
	Phone     string
	Github    string
	Linkedin  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Skill is a named competency grouped under a category.
type Skill struct {
	ID        int64
	Name      string
	Level     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project describes a portfolio project. CompanyID links the project to the
// experience entry it was built under; nil for personal projects.
type Project struct {
	ID          int64
	Name        string
	Description string
	GithubURL   string
	TechStack   string
	Highlights  []string
	LiveDemoURL string
	CompanyID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Experience is a work history entry. ProjectIDs carries the linked
// projects resolved through the experience_project join table.
type Experience struct {
	ID          int64
	Company     string
	Role        string
	Duration    string
	Description string
	ProjectIDs  []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Education is a schooling entry.
type Education struct {
	ID         int64
	Institute  string
	Degree     string
	CGPA       *float64
	Percentage string
	Board      string
	Duration   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
