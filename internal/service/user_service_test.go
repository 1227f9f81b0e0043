package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/model"
)

func TestUserService_EnsureDefaultUser(t *testing.T) {
	t.Run("creates missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "admin").Return(nil, gorm.ErrRecordNotFound)

		var seeded *model.User
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				seeded = args.Get(1).(*model.User)
			}).Return(nil)

		service := NewUserService(mockRepo)
		created, err := service.EnsureDefaultUser(context.Background(), "admin", "password123")

		require.NoError(t, err)
		assert.True(t, created)
		require.NotNil(t, seeded)

		assert.Equal(t, "admin", seeded.Username)
		assert.Equal(t, "ADMIN", seeded.NormalizedUsername)
		assert.Equal(t, "admin@admin.com", seeded.Email)
		assert.Equal(t, "ADMIN@ADMIN.COM", seeded.NormalizedEmail)
		assert.True(t, seeded.EmailConfirmed)

		_, err = uuid.Parse(seeded.SecurityStamp)
		assert.NoError(t, err)

		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.PasswordHash), []byte("password123")))

		mockRepo.AssertExpectations(t)
	})

	t.Run("leaves existing user untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.User{Username: "admin"}, nil)

		service := NewUserService(mockRepo)
		created, err := service.EnsureDefaultUser(context.Background(), "admin", "password123")

		require.NoError(t, err)
		assert.False(t, created)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
