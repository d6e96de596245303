package webserver

import (
	"net/http"

	recipeapp "github.com/hauqxngo/NomNom/internal/application/recipe"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"github.com/hauqxngo/NomNom/pkg/errors"
)

type saveSuggestionRequest struct {
	Title          string `json:"title" validate:"required,max=100"`
	ImageURL       string `json:"image_url" validate:"omitempty,url"`
	ReadyInMinutes int    `json:"ready_in_minutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"source_url" validate:"omitempty,url"`
}

// SearchRecipes fetches one random suggestion from the upstream recipe
// API, optionally filtered by comma-separated tags. Open to anonymous
// visitors.
func (h *Handlers) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	tags := r.URL.Query().Get("tags")

	suggestion, err := h.recipes.Suggest(r.Context(), tags)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, suggestion)
}

// ShowNewRecipe describes the recipe creation endpoint
func (h *Handlers) ShowNewRecipe(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"fields": []string{"title", "source_url", "ingredients", "instructions", "image_url", "leftovers"},
	})
}

// CreateRecipe saves a new recipe owned by the current user
func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	var cmd recipeapp.CreateCommand
	if err := h.decode(r, &cmd); err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.recipes.Create(r.Context(), auth.UserID, cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, dto)
}

// ListUserRecipes returns a user's recipes, newest first
func (h *Handlers) ListUserRecipes(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := h.users.GetByID(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	dtos, err := h.recipes.ListForOwner(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, dtos)
}

// RandomRecipe fetches one suggestion for the current user to consider
// saving. Only the account owner can request suggestions under their
// own path.
func (h *Handlers) RandomRecipe(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if id != auth.UserID {
		respondError(w, r, errors.NewNotOwnerError())
		return
	}

	suggestion, err := h.recipes.Suggest(r.Context(), r.URL.Query().Get("tags"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, suggestion)
}

// SaveRandomRecipe persists a previously fetched suggestion as a recipe
// owned by the current user
func (h *Handlers) SaveRandomRecipe(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if id != auth.UserID {
		respondError(w, r, errors.NewNotOwnerError())
		return
	}

	var req saveSuggestionRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.recipes.SaveSuggestion(r.Context(), auth.UserID, &outbound.Suggestion{
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		SourceURL:      req.SourceURL,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, dto)
}

// ShowRecipe returns a single recipe
func (h *Handlers) ShowRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.recipes.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, dto)
}

// ToggleDone flips a recipe's done flag. Marking done records the
// timestamp; un-marking clears it.
func (h *Handlers) ToggleDone(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.recipes.ToggleDone(r.Context(), auth.UserID, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, dto)
}

// ShowEditRecipe returns a recipe's current data for editing. Only the
// owner may edit.
func (h *Handlers) ShowEditRecipe(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.recipes.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if dto.OwnerID != auth.UserID {
		respondError(w, r, errors.NewNotOwnerError())
		return
	}

	respondData(w, http.StatusOK, dto)
}

// EditRecipe updates a recipe's editable fields. Ownership and creation
// time never change.
func (h *Handlers) EditRecipe(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var cmd recipeapp.UpdateCommand
	if err := h.decode(r, &cmd); err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.recipes.Update(r.Context(), auth.UserID, id, cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, dto)
}

// ShowDeleteRecipe returns the recipe about to be deleted so the client
// can confirm
func (h *Handlers) ShowDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	h.ShowEditRecipe(w, r)
}

// DeleteRecipe removes a recipe. Only the owner may delete.
func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.recipes.Delete(r.Context(), auth.UserID, id); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Recipe deleted")
}
