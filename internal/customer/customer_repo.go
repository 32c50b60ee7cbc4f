package customer

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        sql.NullString
	AvatarURL    sql.NullString
	PasswordHash string
}

//go:generate mockgen -source=customer_repo.go -destination=../mock/customer/customer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) (Profile, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repository struct {
	db queryer
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	const query = `
		SELECT id, email, name, phone, avatar_url, password
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var out Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.Phone,
		&out.AvatarURL,
		&out.PasswordHash,
	)
	return out, err
}

func (r *repository) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) (Profile, error) {
	const query = `
		UPDATE users
		SET name = COALESCE(NULLIF($2, ''), name),
		    phone = COALESCE(NULLIF($3, ''), phone),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, name, phone, avatar_url, password
	`

	var out Profile
	err := r.db.QueryRowContext(ctx, query, id, name, phone).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.Phone,
		&out.AvatarURL,
		&out.PasswordHash,
	)
	return out, err
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	return err
}

func (r *repository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	const query = `
		UPDATE users
		SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, avatarURL)
	return err
}
