package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// ExperienceRepository defines persistence access for work experience
// entries and their project links.
type ExperienceRepository interface {
	Create(ctx context.Context, exp *domain.Experience) error
	Update(ctx context.Context, exp *domain.Experience) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Experience, error)
	ReplaceProjects(ctx context.Context, expID int64, projectIDs []int64) error
	DeleteAll(ctx context.Context) error
}

type experienceRepository struct {
	pool *pgxpool.Pool
}

// NewExperienceRepository returns a Postgres-backed implementation.
func NewExperienceRepository(pool *pgxpool.Pool) ExperienceRepository {
	return &experienceRepository{pool: pool}
}

func (r *experienceRepository) Create(ctx context.Context, exp *domain.Experience) error {
	const query = `
        INSERT INTO experience (company, role, duration, description)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		exp.Company,
		exp.Role,
		exp.Duration,
		exp.Description,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)
}

func (r *experienceRepository) Update(ctx context.Context, exp *domain.Experience) error {
	const query = `
        UPDATE experience SET company=$1, role=$2, duration=$3, description=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query, exp.Company, exp.Role, exp.Duration, exp.Description, exp.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *experienceRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM experience_project WHERE experience_id=$1`, id); err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM experience WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *experienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	const query = `
        SELECT id, company, role, duration, description, created_at, updated_at
        FROM experience ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.Duration, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range experiences {
		ids, err := r.projectIDs(ctx, experiences[i].ID)
		if err != nil {
			return nil, err
		}
		experiences[i].ProjectIDs = ids
	}
	return experiences, nil
}

func (r *experienceRepository) projectIDs(ctx context.Context, expID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT project_id FROM experience_project WHERE experience_id=$1 ORDER BY project_id`, expID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *experienceRepository) ReplaceProjects(ctx context.Context, expID int64, projectIDs []int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM experience_project WHERE experience_id=$1`, expID); err != nil {
		return err
	}
	for _, projectID := range projectIDs {
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO experience_project (experience_id, project_id) VALUES ($1, $2)`, expID, projectID); err != nil {
			return err
		}
	}
	return nil
}

func (r *experienceRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM experience_project`); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM experience`)
	return err
}
