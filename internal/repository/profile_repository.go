package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// ProfileRepository defines persistence access for the profile record.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	GetFirst(ctx context.Context) (*domain.Profile, error)
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

const profileColumns = `id, name, title, summary, location, email, phone, github, linkedin, created_at, updated_at`

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profile (name, title, summary, location, email, phone, github, linkedin)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.Name,
		profile.Title,
		profile.Summary,
		profile.Location,
		profile.Email,
		profile.Phone,
		profile.Github,
		profile.Linkedin,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	const query = `
        UPDATE profile SET name=$1, title=$2, summary=$3, location=$4, email=$5,
            phone=$6, github=$7, linkedin=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		profile.Name,
		profile.Title,
		profile.Summary,
		profile.Location,
		profile.Email,
		profile.Phone,
		profile.Github,
		profile.Linkedin,
		profile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) GetFirst(ctx context.Context) (*domain.Profile, error) {
	return r.scanOne(ctx, `SELECT `+profileColumns+` FROM profile ORDER BY id LIMIT 1`)
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.scanOne(ctx, `SELECT `+profileColumns+` FROM profile WHERE id=$1`, id)
}

func (r *profileRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Summary,
		&p.Location,
		&p.Email,
		&p.Phone,
		&p.Github,
		&p.Linkedin,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profile`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *profileRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profile`)
	return err
}
