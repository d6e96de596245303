package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/hauqxngo/NomNom/internal/domain/user"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"gorm.io/gorm"
)

// UserRepository implements the user repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. The unique index on email turns a duplicate
// registration into user.ErrEmailTaken so callers can surface it as a
// recoverable conflict.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return user.ErrEmailTaken
		}
		return result.Error
	}

	u.SetID(model.ID)
	return nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return user.ErrEmailTaken
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}

	return nil
}

// DeleteWithRecipes deletes the user and all recipes they own in a single
// transaction. Recipes go first so the foreign key holds throughout.
func (r *UserRepository) DeleteWithRecipes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&RecipeModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&UserModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return user.ErrNotFound
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// isDuplicateKey detects unique-constraint violations across the sqlite and
// postgres drivers.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
