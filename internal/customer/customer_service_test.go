package customer_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"go-venusa-api/internal/customer"
	cloudinaryMock "go-venusa-api/internal/mock/cloudinary"
	customerMock "go-venusa-api/internal/mock/customer"
)

func newCustomerService(t *testing.T) (customer.Service, sqlmock.Sqlmock, *customerMock.MockRepository, *cloudinaryMock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := customerMock.NewMockRepository(ctrl)
	images := cloudinaryMock.NewMockService(ctrl)
	return customer.NewService(db, repo, images), dbMock, repo, images
}

func TestCustomerService_UpdateProfile(t *testing.T) {
	svc, dbMock, repo, _ := newCustomerService(t)
	ctx := context.Background()

	pw, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	userID := uuid.New()
	existing := customer.Profile{
		ID:           userID,
		Email:        "shopper@example.com",
		Name:         "Asha",
		PasswordHash: string(pw),
	}

	t.Run("success_update_name_only", func(t *testing.T) {
		name := "Asha Rao"
		repo.EXPECT().GetByID(ctx, userID).Return(existing, nil)

		dbMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			UpdateProfile(ctx, userID, "Asha Rao", "").
			Return(customer.Profile{ID: userID, Email: existing.Email, Name: "Asha Rao"}, nil)
		dbMock.ExpectCommit()

		resp, err := svc.UpdateProfile(ctx, userID.String(), customer.UpdateProfileRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", resp.Name)
	})

	t.Run("password_change_requires_current_password", func(t *testing.T) {
		newPw := "newpassword"
		repo.EXPECT().GetByID(ctx, userID).Return(existing, nil)

		dbMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		dbMock.ExpectRollback()

		_, err := svc.UpdateProfile(ctx, userID.String(), customer.UpdateProfileRequest{Password: &newPw})
		assert.ErrorIs(t, err, customer.ErrCurrentPasswordMissing)
	})

	t.Run("wrong_current_password", func(t *testing.T) {
		newPw := "newpassword"
		wrong := "not-the-password"
		repo.EXPECT().GetByID(ctx, userID).Return(existing, nil)

		dbMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		dbMock.ExpectRollback()

		_, err := svc.UpdateProfile(ctx, userID.String(), customer.UpdateProfileRequest{
			Password:        &newPw,
			CurrentPassword: &wrong,
		})
		assert.ErrorIs(t, err, customer.ErrCurrentPasswordWrong)
	})

	t.Run("success_password_change", func(t *testing.T) {
		newPw := "newpassword"
		current := "oldpassword"
		repo.EXPECT().GetByID(ctx, userID).Return(existing, nil)

		dbMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().
			UpdatePassword(ctx, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(newPw)))
				return nil
			})
		dbMock.ExpectCommit()

		_, err := svc.UpdateProfile(ctx, userID.String(), customer.UpdateProfileRequest{
			Password:        &newPw,
			CurrentPassword: &current,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown_customer", func(t *testing.T) {
		missing := uuid.New()
		repo.EXPECT().GetByID(ctx, missing).Return(customer.Profile{}, sql.ErrNoRows)

		_, err := svc.UpdateProfile(ctx, missing.String(), customer.UpdateProfileRequest{})
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("invalid_customer_id", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, "not-a-uuid", customer.UpdateProfileRequest{})
		assert.Error(t, err)
	})
}

func TestCustomerService_GetProfile(t *testing.T) {
	svc, _, repo, _ := newCustomerService(t)
	ctx := context.Background()

	userID := uuid.New()
	repo.EXPECT().GetByID(ctx, userID).Return(customer.Profile{
		ID:        userID,
		Email:     "shopper@example.com",
		Name:      "Asha",
		Phone:     sql.NullString{String: "9999999999", Valid: true},
		AvatarURL: sql.NullString{String: "https://cdn.example.com/a.png", Valid: true},
	}, nil)

	resp, err := svc.GetProfile(ctx, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, "9999999999", resp.Phone)
	assert.Equal(t, "https://cdn.example.com/a.png", resp.AvatarURL)
}

func TestCustomerService_UploadAvatar(t *testing.T) {
	svc, _, repo, images := newCustomerService(t)
	ctx := context.Background()
	userID := uuid.New()

	images.EXPECT().
		UploadImage(ctx, gomock.Any(), "avatar-"+userID.String()).
		Return("https://cdn.example.com/avatar.png", nil)
	repo.EXPECT().UpdateAvatarURL(ctx, userID, "https://cdn.example.com/avatar.png").Return(nil)
	repo.EXPECT().GetByID(ctx, userID).Return(customer.Profile{
		ID:        userID,
		Email:     "shopper@example.com",
		AvatarURL: sql.NullString{String: "https://cdn.example.com/avatar.png", Valid: true},
	}, nil)

	resp, err := svc.UploadAvatar(ctx, userID.String(), nil, "avatar.png")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", resp.AvatarURL)
}
