// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/hauqxngo/NomNom/internal/domain/recipe"
	"github.com/hauqxngo/NomNom/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		ImageURL:     u.ImageURL(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(model *UserModel) *user.User {
	return user.Reconstitute(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.PasswordHash,
		model.ImageURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:           r.ID(),
		Title:        r.Title(),
		SourceURL:    r.SourceURL(),
		Ingredients:  r.Ingredients(),
		Instructions: r.Instructions(),
		ImageURL:     r.ImageURL(),
		CreatedOn:    r.CreatedOn(),
		Done:         r.Done(),
		DoneOn:       r.DoneOn(),
		Leftovers:    r.Leftovers(),
		UserID:       r.OwnerID(),
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	return recipe.Reconstitute(
		model.ID,
		model.UserID,
		model.Title,
		model.SourceURL,
		model.Ingredients,
		model.Instructions,
		model.ImageURL,
		model.CreatedOn,
		model.Done,
		model.DoneOn,
		model.Leftovers,
	)
}
