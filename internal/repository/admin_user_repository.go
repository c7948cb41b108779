package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// AdminUserRepository defines persistence access for admin accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, user *domain.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type adminUserRepository struct {
	pool *pgxpool.Pool
}

// NewAdminUserRepository returns a Postgres-backed implementation.
func NewAdminUserRepository(pool *pgxpool.Pool) AdminUserRepository {
	return &adminUserRepository{pool: pool}
}

func (r *adminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	const query = `
        INSERT INTO admin_user (username, password_hash, email, phone_number, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.PhoneNumber,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	const query = `
        SELECT id, username, password_hash, email, phone_number, role, created_at, updated_at
        FROM admin_user WHERE username=$1`

	var user domain.AdminUser
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.PhoneNumber,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT 1 FROM admin_user WHERE username=$1`
	var one int
	err := r.pool.QueryRow(ctx, query, username).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *adminUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM admin_user WHERE email=$1`
	var one int
	err := r.pool.QueryRow(ctx, query, email).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_user`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
