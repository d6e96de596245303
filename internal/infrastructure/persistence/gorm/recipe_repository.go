package gorm

import (
	"context"
	"errors"

	"github.com/hauqxngo/NomNom/internal/domain/recipe"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	rec.SetID(model.ID)
	return nil
}

// Update updates an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	// Save skips zero-valued fields through Updates; use a full-column
	// update so toggling done back to false persists.
	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ?", model.ID).
		Select("Title", "SourceURL", "Ingredients", "Instructions", "ImageURL", "Done", "DoneOn", "Leftovers").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recipe.ErrNotFound
	}

	return nil
}

// Delete deletes a recipe by ID
func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recipe.ErrNotFound
	}

	return nil
}

// FindByID finds a recipe by ID
func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, recipe.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindByOwnerID finds the owner's recipes, newest first
func (r *RecipeRepository) FindByOwnerID(ctx context.Context, ownerID uint) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_on DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}

	return recipes, nil
}

// CountByOwnerID counts the owner's recipes
func (r *RecipeRepository) CountByOwnerID(ctx context.Context, ownerID uint) (int64, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("user_id = ?", ownerID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
