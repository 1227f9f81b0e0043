package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

const bcryptCost = 10

// UserService handles identity seeding. Users are created here once and
// never mutated afterward.
type UserService interface {
	EnsureDefaultUser(ctx context.Context, username, password string) (created bool, err error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// EnsureDefaultUser creates the default login if it does not exist yet.
// Returns false with a nil error when the user is already present.
func (s *userService) EnsureDefaultUser(ctx context.Context, username, password string) (bool, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	email := fmt.Sprintf("%s@admin.com", username)
	user := &model.User{
		Username:           username,
		NormalizedUsername: strings.ToUpper(username),
		Email:              email,
		NormalizedEmail:    strings.ToUpper(email),
		EmailConfirmed:     true,
		PasswordHash:       string(hash),
		SecurityStamp:      uuid.New().String(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create default user: %w", err)
	}
	return true, nil
}
