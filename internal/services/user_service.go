// file: internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
	"jobtrust/internal/validation"
)

type userService struct {
	repo   repositories.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// CreateUser registers an account. The password is stored as a bcrypt hash.
func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.repo.GetUserByUsername(ctx, username); err != nil {
		return nil, NewInternalError("failed to check username", err)
	} else if existing != nil {
		return nil, EntityAlreadyExistsError("user", "username")
	}
	if existing, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		return nil, NewInternalError("failed to check email", err)
	} else if existing != nil {
		return nil, EntityAlreadyExistsError("user", "email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewInternalError("failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Avatar:   req.Avatar,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		// lost a race with a concurrent signup
		return nil, EntityAlreadyExistsError("user", "username")
	}
	if err != nil {
		return nil, NewInternalError("failed to create user", err)
	}

	s.logger.Info("User created", zap.String("user_id", user.ID))
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("user ID is required", nil)
	}

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, EntityNotFoundError("user", id)
	}
	return user, nil
}

// UpdateAvatar replaces the avatar. A nil avatar clears it.
func (s *userService) UpdateAvatar(ctx context.Context, req *UpdateAvatarRequest) (*models.User, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}

	user, err := s.repo.UpdateUserAvatar(ctx, req.UserID, trimOptional(req.Avatar))
	if err != nil {
		return nil, NewInternalError("failed to update avatar", err)
	}
	if user == nil {
		return nil, EntityNotFoundError("user", req.UserID)
	}

	s.logger.Info("User avatar updated", zap.String("user_id", user.ID))
	return user, nil
}
