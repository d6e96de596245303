package webserver

import (
	"net/http"

	userapp "github.com/hauqxngo/NomNom/internal/application/user"
	"go.uber.org/zap"
)

// ShowUser returns a user's page data: the profile plus how many
// recipes they have saved.
func (h *Handlers) ShowUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	count, err := h.recipes.CountForOwner(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"user":         dto,
		"recipe_count": count,
	})
}

// ShowProfile returns the current user's editable profile
func (h *Handlers) ShowProfile(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	dto, err := h.users.GetByID(r.Context(), auth.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, dto)
}

// UpdateProfile edits the current user's profile. The current password
// must be re-entered; a wrong password rejects the whole edit.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	var cmd userapp.UpdateProfileCommand
	if err := h.decode(r, &cmd); err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.users.UpdateProfile(r.Context(), auth.UserID, cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, dto)
}

// DeleteUser removes the current user's account together with every
// recipe they own, then ends the session.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	if err := h.users.Delete(r.Context(), auth.UserID); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.sessions.Logout(r.Context(), w, r); err != nil {
		h.logger.Warn("Failed to clear session after account deletion", zap.Error(err))
	}

	respondMessage(w, http.StatusOK, "Account deleted")
}
