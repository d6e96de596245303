// Package recipe provides the application layer for recipe management
package recipe

import (
	"context"
	"errors"
	"time"

	"github.com/hauqxngo/NomNom/internal/domain/recipe"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	apperrors "github.com/hauqxngo/NomNom/pkg/errors"
	"go.uber.org/zap"
)

// Service implements recipe management use cases
type Service struct {
	recipes     outbound.RecipeRepository
	suggestions outbound.SuggestionService
	logger      *zap.Logger
}

// NewService creates a new recipe service
func NewService(recipes outbound.RecipeRepository, suggestions outbound.SuggestionService, logger *zap.Logger) *Service {
	return &Service{
		recipes:     recipes,
		suggestions: suggestions,
		logger:      logger.Named("recipe-service"),
	}
}

// CreateCommand contains recipe creation data
type CreateCommand struct {
	Title        string `json:"title" validate:"required,max=100"`
	SourceURL    string `json:"source_url" validate:"omitempty,url"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	Leftovers    bool   `json:"leftovers"`
}

// UpdateCommand contains recipe edit data
type UpdateCommand struct {
	Title        string `json:"title" validate:"required,max=100"`
	SourceURL    string `json:"source_url" validate:"omitempty,url"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	Leftovers    bool   `json:"leftovers"`
}

// DTO represents recipe data returned to callers
type DTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	SourceURL    string     `json:"source_url,omitempty"`
	Ingredients  string     `json:"ingredients"`
	Instructions string     `json:"instructions"`
	ImageURL     string     `json:"image_url"`
	CreatedOn    time.Time  `json:"created_on"`
	Done         bool       `json:"done"`
	DoneOn       *time.Time `json:"done_on,omitempty"`
	Leftovers    bool       `json:"leftovers"`
	OwnerID      uint       `json:"user_id"`
}

// Create saves a new recipe owned by the given user
func (s *Service) Create(ctx context.Context, ownerID uint, cmd CreateCommand) (*DTO, error) {
	entity, err := recipe.NewRecipe(ownerID, cmd.Title, cmd.SourceURL, cmd.Ingredients, cmd.Instructions, cmd.ImageURL, cmd.Leftovers)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.recipes.Create(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("create recipe", err)
	}

	s.logger.Info("Recipe created",
		zap.Uint("recipe_id", entity.ID()),
		zap.Uint("user_id", ownerID),
	)

	dto := entityToDTO(entity)
	return &dto, nil
}

// ListForOwner returns the owner's recipes, newest first
func (s *Service) ListForOwner(ctx context.Context, ownerID uint) ([]*DTO, error) {
	entities, err := s.recipes.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]*DTO, len(entities))
	for i, entity := range entities {
		dto := entityToDTO(entity)
		dtos[i] = &dto
	}

	return dtos, nil
}

// Get retrieves a recipe by ID
func (s *Service) Get(ctx context.Context, id uint) (*DTO, error) {
	entity, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// Update edits a recipe. The caller must own it.
func (s *Service) Update(ctx context.Context, callerID, recipeID uint, cmd UpdateCommand) (*DTO, error) {
	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if !entity.OwnedBy(callerID) {
		return nil, apperrors.NewNotOwnerError()
	}

	if err := entity.Update(cmd.Title, cmd.SourceURL, cmd.Ingredients, cmd.Instructions, cmd.ImageURL, cmd.Leftovers); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.recipes.Update(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("update recipe", err)
	}

	s.logger.Info("Recipe updated", zap.Uint("recipe_id", recipeID))

	dto := entityToDTO(entity)
	return &dto, nil
}

// Delete removes a recipe. The caller must own it; on a denied attempt the
// recipe is untouched.
func (s *Service) Delete(ctx context.Context, callerID, recipeID uint) error {
	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if !entity.OwnedBy(callerID) {
		return apperrors.NewNotOwnerError()
	}

	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		return apperrors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Recipe deleted",
		zap.Uint("recipe_id", recipeID),
		zap.Uint("user_id", callerID),
	)
	return nil
}

// ToggleDone flips the cooked flag. The caller must own the recipe.
func (s *Service) ToggleDone(ctx context.Context, callerID, recipeID uint) (*DTO, error) {
	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if !entity.OwnedBy(callerID) {
		return nil, apperrors.NewNotOwnerError()
	}

	entity.ToggleDone()

	if err := s.recipes.Update(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("update recipe", err)
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// Suggest fetches a single random suggestion from the external search API.
// An empty upstream result list surfaces as a not-found class error.
func (s *Service) Suggest(ctx context.Context, tags string) (*outbound.Suggestion, error) {
	suggestion, err := s.suggestions.Suggest(ctx, tags)
	if err != nil {
		return nil, err
	}

	return suggestion, nil
}

// SaveSuggestion persists a fetched suggestion as a recipe owned by the user
func (s *Service) SaveSuggestion(ctx context.Context, ownerID uint, suggestion *outbound.Suggestion) (*DTO, error) {
	return s.Create(ctx, ownerID, CreateCommand{
		Title:     suggestion.Title,
		SourceURL: suggestion.SourceURL,
		ImageURL:  suggestion.ImageURL,
	})
}

// CountForOwner returns how many recipes the owner has saved
func (s *Service) CountForOwner(ctx context.Context, ownerID uint) (int64, error) {
	count, err := s.recipes.CountByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, apperrors.NewDatabaseError("count recipes", err)
	}
	return count, nil
}

func (s *Service) findRecipe(ctx context.Context, id uint) (*recipe.Recipe, error) {
	entity, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return nil, apperrors.NewRecipeNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("find recipe", err)
	}
	return entity, nil
}

// entityToDTO converts a recipe entity to a DTO
func entityToDTO(entity *recipe.Recipe) DTO {
	return DTO{
		ID:           entity.ID(),
		Title:        entity.Title(),
		SourceURL:    entity.SourceURL(),
		Ingredients:  entity.Ingredients(),
		Instructions: entity.Instructions(),
		ImageURL:     entity.ImageURL(),
		CreatedOn:    entity.CreatedOn(),
		Done:         entity.Done(),
		DoneOn:       entity.DoneOn(),
		Leftovers:    entity.Leftovers(),
		OwnerID:      entity.OwnerID(),
	}
}
