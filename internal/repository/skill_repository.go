package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// SkillRepository defines persistence access for skills.
type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	Update(ctx context.Context, skill *domain.Skill) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Skill, error)
	DeleteAll(ctx context.Context) error
}

type skillRepository struct {
	pool *pgxpool.Pool
}

// NewSkillRepository returns a Postgres-backed implementation.
func NewSkillRepository(pool *pgxpool.Pool) SkillRepository {
	return &skillRepository{pool: pool}
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	const query = `
        INSERT INTO skill (name, level, category)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		skill.Name,
		skill.Level,
		skill.Category,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	const query = `
        UPDATE skill SET name=$1, level=$2, category=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, skill.Name, skill.Level, skill.Category, skill.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM skill WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *skillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	const query = `
        SELECT id, name, level, category, created_at, updated_at
        FROM skill ORDER BY category, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM skill`)
	return err
}
