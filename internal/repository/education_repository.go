package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// EducationRepository defines persistence access for education entries.
type EducationRepository interface {
	Create(ctx context.Context, edu *domain.Education) error
	Update(ctx context.Context, edu *domain.Education) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Education, error)
	DeleteAll(ctx context.Context) error
}

type educationRepository struct {
	pool *pgxpool.Pool
}

// NewEducationRepository returns a Postgres-backed implementation.
func NewEducationRepository(pool *pgxpool.Pool) EducationRepository {
	return &educationRepository{pool: pool}
}

func (r *educationRepository) Create(ctx context.Context, edu *domain.Education) error {
	const query = `
        INSERT INTO education (institute, degree, cgpa, percentage, board, duration)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		edu.Institute,
		edu.Degree,
		edu.CGPA,
		edu.Percentage,
		edu.Board,
		edu.Duration,
	).Scan(&edu.ID, &edu.CreatedAt, &edu.UpdatedAt)
}

func (r *educationRepository) Update(ctx context.Context, edu *domain.Education) error {
	const query = `
        UPDATE education SET institute=$1, degree=$2, cgpa=$3, percentage=$4,
            board=$5, duration=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		edu.Institute,
		edu.Degree,
		edu.CGPA,
		edu.Percentage,
		edu.Board,
		edu.Duration,
		edu.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *educationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *educationRepository) List(ctx context.Context) ([]domain.Education, error) {
	const query = `
        SELECT id, institute, degree, cgpa, percentage, board, duration, created_at, updated_at
        FROM education ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.Institute, &e.Degree, &e.CGPA, &e.Percentage, &e.Board, &e.Duration, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *educationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM education`)
	return err
}
