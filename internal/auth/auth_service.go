package auth

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	autherrors "go-venusa-api/internal/auth/errors"
	"go-venusa-api/internal/email"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo     Repository
	emailSvc email.Service
}

func NewService(repo Repository, emailSvc email.Service) *Service {
	return &Service{
		repo:     repo,
		emailSvc: emailSvc,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	fullName := strings.TrimSpace(req.FirstName + " " + req.LastName)

	user, err := s.repo.Create(ctx, User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         fullName,
		PasswordHash: string(hashed),
		Role:         "CUSTOMER",
	})
	if err != nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	return AuthResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *Service) Login(ctx context.Context, loginEmail, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(loginEmail)))
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user.ID.String(), user.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	refreshToken, err := s.generateToken(user.ID.String(), user.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := s.generateToken(user.ID.String(), user.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(user.ID.String(), user.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	return &AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// RequestPasswordReset never reveals whether the email exists.
func (s *Service) RequestPasswordReset(ctx context.Context, resetEmail string) (ActionStatusResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(resetEmail)))
	if err != nil {
		if err == sql.ErrNoRows {
			return ActionStatusResponse{Success: true, EmailSent: false}, nil
		}
		return ActionStatusResponse{}, err
	}

	now := time.Now()
	resetToken := uuid.NewString()
	expiresAt := now.Add(30 * time.Minute)

	if err := s.repo.UpsertPasswordResetToken(ctx, user.ID, resetToken, expiresAt, now); err != nil {
		return ActionStatusResponse{}, err
	}

	baseURL := os.Getenv("WEBSTORE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", baseURL, resetToken)

	if err := s.emailSvc.SendResetPasswordEmail(ctx, user.Email, user.Name, resetURL); err != nil {
		return ActionStatusResponse{}, err
	}

	return ActionStatusResponse{Success: true, EmailSent: true}, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) (ActionStatusResponse, error) {
	resetRecord, err := s.repo.GetPasswordResetToken(ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return ActionStatusResponse{}, autherrors.ErrResetTokenInvalid
		}
		return ActionStatusResponse{}, err
	}

	if time.Now().After(resetRecord.ExpiresAt) {
		_ = s.repo.DeletePasswordResetTokenByToken(ctx, token)
		return ActionStatusResponse{}, autherrors.ErrResetTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ActionStatusResponse{}, autherrors.ErrTokenGenerationFailed
	}

	if err := s.repo.UpdatePassword(ctx, resetRecord.UserID, string(hashed)); err != nil {
		return ActionStatusResponse{}, err
	}

	if err := s.repo.DeletePasswordResetTokenByToken(ctx, token); err != nil {
		return ActionStatusResponse{}, err
	}

	return ActionStatusResponse{
		Success: true,
		Message: "Password has been reset successfully.",
	}, nil
}

func (s *Service) generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
