package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

func TestUserServiceCreateHashesPassword(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())

	id, err := svc.CreateUser(context.Background(), dto.CreateUserDTO{
		Name:     "Operator",
		Email:    "operator@example.com",
		Password: "secret-password",
		Role:     "RW",
		Active:   utils.Ptr(true),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	stored, err := userRepo.FindUserByEmail(context.Background(), "operator@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-password")))
}

func TestUserServiceUpdateWithoutPassword(t *testing.T) {
	userRepo := newMockUserRepo()
	userRepo.add(&entities.User{
		ID: 1, Email: "viewer@example.com", Password: "irrelevant",
		Role: "RO", Active: true,
	})

	svc := NewUserService(userRepo, zap.NewNop())

	err := svc.UpdateUser(context.Background(), 1, dto.UpdateUserDTO{
		Name:   "Renamed Viewer",
		Active: utils.Ptr(false),
	})
	require.NoError(t, err)
}

func TestUserServiceFindUnknownUser(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), zap.NewNop())

	_, err := svc.FindUser(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
