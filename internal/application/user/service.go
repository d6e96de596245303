// Package user provides the application layer for user management
package user

import (
	"context"
	"errors"
	"time"

	"github.com/hauqxngo/NomNom/internal/domain/user"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	apperrors "github.com/hauqxngo/NomNom/pkg/errors"
	"go.uber.org/zap"
)

// Service implements user management use cases
type Service struct {
	users   outbound.UserRepository
	recipes outbound.RecipeRepository
	logger  *zap.Logger
}

// NewService creates a new user service
func NewService(users outbound.UserRepository, recipes outbound.RecipeRepository, logger *zap.Logger) *Service {
	return &Service{
		users:   users,
		recipes: recipes,
		logger:  logger.Named("user-service"),
	}
}

// RegisterCommand contains user registration data
type RegisterCommand struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,max=128"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
}

// UpdateProfileCommand contains profile edit data. The current password must
// be re-entered to authorize the edit.
type UpdateProfileCommand struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
}

// DTO represents user data returned to callers
type DTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates a new user account. A duplicate email is a recoverable
// conflict, not a fatal error.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*DTO, error) {
	s.logger.Info("Registering new user", zap.String("email", cmd.Email))

	newUser, err := user.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Password, cmd.ImageURL)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.users.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperrors.NewEmailAlreadyExistsError(newUser.Email())
		}
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.Uint("user_id", newUser.ID()),
		zap.String("email", newUser.Email()),
	)

	dto := entityToDTO(newUser)
	return &dto, nil
}

// Authenticate validates a user's credentials. An unknown email or a wrong
// password returns (nil, nil): a normal outcome, never an error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*DTO, error) {
	entity, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("find user by email", err)
	}

	if err := entity.CheckPassword(password); err != nil {
		s.logger.Warn("Invalid password attempt", zap.String("email", email))
		return nil, nil
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// GetByID retrieves a user by ID
func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	entity, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewUserNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("find user", err)
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// UpdateProfile updates the user's profile after re-verifying the current
// password. On a password mismatch no fields are changed.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, cmd UpdateProfileCommand) (*DTO, error) {
	entity, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewUserNotFoundError(userID)
		}
		return nil, apperrors.NewDatabaseError("find user", err)
	}

	if err := entity.CheckPassword(cmd.Password); err != nil {
		return nil, apperrors.NewForbiddenError("Wrong password, please try again.")
	}

	if err := entity.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Email, cmd.ImageURL); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.users.Update(ctx, entity); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperrors.NewEmailAlreadyExistsError(cmd.Email)
		}
		return nil, apperrors.NewDatabaseError("update user", err)
	}

	s.logger.Info("User profile updated", zap.Uint("user_id", userID))

	dto := entityToDTO(entity)
	return &dto, nil
}

// Delete removes the user and every recipe they own in one transaction.
func (s *Service) Delete(ctx context.Context, userID uint) error {
	if err := s.users.DeleteWithRecipes(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperrors.NewUserNotFoundError(userID)
		}
		return apperrors.NewDatabaseError("delete user", err)
	}

	s.logger.Info("User account deleted", zap.Uint("user_id", userID))
	return nil
}

// entityToDTO converts a user entity to a DTO
func entityToDTO(entity *user.User) DTO {
	return DTO{
		ID:        entity.ID(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		FullName:  entity.FullName(),
		Email:     entity.Email(),
		ImageURL:  entity.ImageURL(),
		CreatedAt: entity.CreatedAt(),
	}
}
