package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// ProjectRepository defines persistence access for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Project, error)
	DeleteAll(ctx context.Context) error
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository returns a Postgres-backed implementation.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `id, name, description, github_url, tech_stack, highlights, live_demo_url, company_id, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO project (name, description, github_url, tech_stack, highlights, live_demo_url, company_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.GithubURL,
		project.TechStack,
		project.Highlights,
		project.LiveDemoURL,
		project.CompanyID,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE project SET name=$1, description=$2, github_url=$3, tech_stack=$4,
            highlights=$5, live_demo_url=$6, company_id=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		project.Name,
		project.Description,
		project.GithubURL,
		project.TechStack,
		project.Highlights,
		project.LiveDemoURL,
		project.CompanyID,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM project WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	if err := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM project WHERE id=$1`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.GithubURL,
		&p.TechStack,
		&p.Highlights,
		&p.LiveDemoURL,
		&p.CompanyID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return r.scanMany(ctx, `SELECT `+projectColumns+` FROM project ORDER BY id`)
}

func (r *projectRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.scanMany(ctx, `SELECT `+projectColumns+` FROM project WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *projectRepository) scanMany(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.GithubURL,
			&p.TechStack,
			&p.Highlights,
			&p.LiveDemoURL,
			&p.CompanyID,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM project`)
	return err
}
