// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/hauqxngo/NomNom/internal/domain/recipe"
	"github.com/hauqxngo/NomNom/internal/domain/user"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	Update(ctx context.Context, user *user.User) error
	// DeleteWithRecipes removes the user and every recipe they own in a
	// single transaction. Either everything is deleted or nothing is.
	DeleteWithRecipes(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*recipe.Recipe, error)
	// FindByOwnerID returns the owner's recipes newest first.
	FindByOwnerID(ctx context.Context, ownerID uint) ([]*recipe.Recipe, error)
	CountByOwnerID(ctx context.Context, ownerID uint) (int64, error)
}

// SessionRepository defines the interface for server-side session state
type SessionRepository interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	// Lookup returns (0, false, nil) for an unknown or expired session.
	Lookup(ctx context.Context, sessionID string) (uint, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// SuggestionService defines the interface for the external recipe search API
type SuggestionService interface {
	// Suggest fetches a single random recipe suggestion matching the tags.
	Suggest(ctx context.Context, tags string) (*Suggestion, error)
}

// Suggestion is a recipe fetched from the external search API. It is not
// persisted until the user explicitly saves it.
type Suggestion struct {
	Title          string `json:"title"`
	ImageURL       string `json:"image"`
	ReadyInMinutes int    `json:"ready_in_minutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"source_url"`
}
