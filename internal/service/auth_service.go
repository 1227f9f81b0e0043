package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/auth"
	"blogapi/internal/repository"
)

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match. A single sentinel covers both causes so the
// caller cannot tell which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, expiration time.Time, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials against the identity store and issues a
// signed bearer token valid for three hours.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiration, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}

	return token, expiration, nil
}
