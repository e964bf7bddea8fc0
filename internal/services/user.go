package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		list = append(list, userToDTO(&users[i]))
	}
	return list, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	result := userToDTO(user)
	return &result, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (uint64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id, err := s.userRepository.CreateUser(ctx, payload, string(hash))
	if err != nil {
		s.logger.Error("creating user failed", zap.String("email", payload.Email), zap.Error(err))
		return 0, err
	}
	s.logger.Info("user created", zap.Uint64("id", id), zap.String("role", payload.Role))
	return id, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error {
	var passwordHash string
	if payload.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		passwordHash = string(hash)
	}

	return s.userRepository.UpdateUser(ctx, id, payload, passwordHash)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepository.DeleteUser(ctx, id)
}

func userToDTO(user *entities.User) dto.UserDTO {
	result := dto.UserDTO{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Active: user.Active,
	}
	if user.CreatedAt != nil {
		result.CreatedAt = user.CreatedAt.Format(time.DateTime)
	}
	if user.UpdatedAt != nil {
		result.UpdatedAt = user.UpdatedAt.Format(time.DateTime)
	}
	return result
}
