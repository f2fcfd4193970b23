package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"qbrain-backend/internal/config"
	"qbrain-backend/internal/domains/auth/model"
	"qbrain-backend/pkg/jwt"
)

type ServiceInterface interface {
	// Login so email + bcrypt hash trong config, trả JWT role admin
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	admin config.AdminConfig
	jwt   *jwt.Manager
}

func NewAuthService(admin config.AdminConfig, jwtManager *jwt.Manager) ServiceInterface {
	return &authService{admin: admin, jwt: jwtManager}
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	// 1. Login bị tắt khi chưa cấu hình
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		return nil, model.ErrLoginDisabled
	}

	// 2. Luôn chạy bcrypt kể cả khi email sai
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(s.admin.Email)),
		[]byte(strings.ToLower(req.Email)),
	) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !emailOK || passErr != nil {
		return nil, model.ErrInvalidCredentials
	}

	// 3. Generate access token
	token, expiresAt, err := s.jwt.GenerateAccessToken(model.AdminSubject, req.Email, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Email:       req.Email,
		Role:        model.RoleAdmin,
	}, nil
}

// HashPassword tạo bcrypt hash cho ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), model.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
