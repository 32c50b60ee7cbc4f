package customer

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-venusa-api/internal/cloudinary"
	"go-venusa-api/internal/pkg/apperror"
)

type Service interface {
	GetProfile(ctx context.Context, customerID string) (CustomerResponse, error)
	UpdateProfile(ctx context.Context, customerID string, req UpdateProfileRequest) (CustomerResponse, error)
	UploadAvatar(ctx context.Context, customerID string, file multipart.File, filename string) (CustomerResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	images cloudinary.Service
}

func NewService(db *sql.DB, r Repository, images cloudinary.Service) Service {
	return &service{
		db:     db,
		repo:   r,
		images: images,
	}
}

func (s *service) GetProfile(ctx context.Context, customerID string) (CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return CustomerResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid customer id", 400)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, ErrCustomerNotFound
		}
		return CustomerResponse{}, err
	}
	return toCustomerResponse(p), nil
}

func (s *service) UpdateProfile(ctx context.Context, customerID string, req UpdateProfileRequest) (CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return CustomerResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid customer id", 400)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, ErrCustomerNotFound
		}
		return CustomerResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CustomerResponse{}, err
	}
	defer tx.Rollback()

	repoTx := s.repo.WithTx(tx)

	updated := existing
	if req.Name != nil || req.Phone != nil {
		name := ""
		if req.Name != nil {
			name = *req.Name
		}
		phone := ""
		if req.Phone != nil {
			phone = *req.Phone
		}
		updated, err = repoTx.UpdateProfile(ctx, id, name, phone)
		if err != nil {
			return CustomerResponse{}, err
		}
	}

	if req.Password != nil && *req.Password != "" {
		if req.CurrentPassword == nil || *req.CurrentPassword == "" {
			return CustomerResponse{}, ErrCurrentPasswordMissing
		}
		if err := bcrypt.CompareHashAndPassword(
			[]byte(existing.PasswordHash),
			[]byte(*req.CurrentPassword),
		); err != nil {
			return CustomerResponse{}, ErrCurrentPasswordWrong
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return CustomerResponse{}, err
		}
		if err := repoTx.UpdatePassword(ctx, id, string(hashed)); err != nil {
			return CustomerResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return CustomerResponse{}, err
	}

	return toCustomerResponse(updated), nil
}

func (s *service) UploadAvatar(ctx context.Context, customerID string, file multipart.File, filename string) (CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return CustomerResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid customer id", 400)
	}

	url, err := s.images.UploadImage(ctx, file, "avatar-"+id.String())
	if err != nil {
		return CustomerResponse{}, apperror.Wrap(err, apperror.CodeUpstreamError, "avatar upload failed", 502)
	}

	if err := s.repo.UpdateAvatarURL(ctx, id, url); err != nil {
		return CustomerResponse{}, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, err
	}
	return toCustomerResponse(p), nil
}

func toCustomerResponse(p Profile) CustomerResponse {
	resp := CustomerResponse{
		ID:    p.ID.String(),
		Name:  p.Name,
		Email: p.Email,
	}
	if p.Phone.Valid {
		resp.Phone = p.Phone.String
	}
	if p.AvatarURL.Valid {
		resp.AvatarURL = p.AvatarURL.String
	}
	return resp
}
