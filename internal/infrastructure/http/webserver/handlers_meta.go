package webserver

import (
	"net/http"

	"github.com/hauqxngo/NomNom/pkg/errors"
)

// Home is the landing endpoint. A logged-in user gets their recipe
// list; anonymous visitors get a welcome payload.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	if !auth.Authenticated {
		respondData(w, http.StatusOK, map[string]interface{}{
			"name":    "NomNom",
			"tagline": "Keep track of the recipes you want to cook",
		})
		return
	}

	user, err := h.users.GetByID(r.Context(), auth.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	dtos, err := h.recipes.ListForOwner(r.Context(), auth.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"recipes": dtos,
	})
}

// About returns static application information
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"name":        "NomNom",
		"description": "A recipe tracker for saving, editing and discovering recipes",
	})
}

// NotFound replies to any unmatched route
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody(errors.CodeNotFound, "The page you requested does not exist"))
}
