package webserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	recipeapp "github.com/hauqxngo/NomNom/internal/application/recipe"
	userapp "github.com/hauqxngo/NomNom/internal/application/user"
	"github.com/hauqxngo/NomNom/pkg/errors"
	"go.uber.org/zap"
)

// Handlers exposes the HTTP endpoints for accounts, recipes and
// suggestions. Every gated endpoint checks the authenticated session
// first and resource ownership second.
type Handlers struct {
	users    *userapp.Service
	recipes  *recipeapp.Service
	sessions *SessionManager
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandlers creates the endpoint handlers
func NewHandlers(users *userapp.Service, recipes *recipeapp.Service, sessions *SessionManager, logger *zap.Logger) *Handlers {
	return &Handlers{
		users:    users,
		recipes:  recipes,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger.Named("handlers"),
	}
}

// decode unmarshals and validates a JSON request body
func (h *Handlers) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("Invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// idParam parses the {id} route parameter
func idParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("Invalid ID in URL")
	}
	return uint(id), nil
}
