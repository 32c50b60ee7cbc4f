package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	UpsertPasswordResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt, createdAt time.Time) error
	GetPasswordResetToken(ctx context.Context, token string) (PasswordResetTokenRecord, error)
	DeletePasswordResetTokenByToken(ctx context.Context, token string) error
}

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type PasswordResetTokenRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user User) (User, error) {
	const query = `
		INSERT INTO users (id, email, name, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, email, name, password, role, created_at
	`

	var out User
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
	).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.PasswordHash,
		&out.Role,
		&out.CreatedAt,
	)
	return out, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
		SELECT id, email, name, password, role, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.PasswordHash,
		&out.Role,
		&out.CreatedAt,
	)
	return out, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	const query = `
		SELECT id, email, name, password, role, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.PasswordHash,
		&out.Role,
		&out.CreatedAt,
	)
	return out, err
}

func (r *repository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, userID, passwordHash)
	return err
}

func (r *repository) UpsertPasswordResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt, createdAt time.Time) error {
	const query = `
		INSERT INTO password_reset_tokens (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at
	`
	_, err := r.db.ExecContext(ctx, query, userID, token, expiresAt, createdAt)
	return err
}

func (r *repository) GetPasswordResetToken(ctx context.Context, token string) (PasswordResetTokenRecord, error) {
	const query = `
		SELECT id, user_id, token, created_at, expires_at
		FROM password_reset_tokens
		WHERE token = $1
		LIMIT 1
	`

	var out PasswordResetTokenRecord
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&out.ID,
		&out.UserID,
		&out.Token,
		&out.CreatedAt,
		&out.ExpiresAt,
	)
	return out, err
}

func (r *repository) DeletePasswordResetTokenByToken(ctx context.Context, token string) error {
	const query = `DELETE FROM password_reset_tokens WHERE token = $1`
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}
