package webserver

import (
	"net/http"
	"strings"

	userapp "github.com/hauqxngo/NomNom/internal/application/user"
	"github.com/hauqxngo/NomNom/pkg/errors"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ShowRegister describes the registration endpoint. An already
// authenticated visitor is sent back to the home page.
func (h *Handlers) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if AuthFromContext(r.Context()).Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"fields": []string{"first_name", "last_name", "email", "password", "image_url"},
	})
}

// Register creates a new account and logs the new user in. The email
// must not already be taken. Registering while logged in replaces the
// current session.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var cmd userapp.RegisterCommand
	if err := h.decode(r, &cmd); err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.users.Register(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.sessions.Login(r.Context(), w, dto.ID); err != nil {
		h.logger.Error("Failed to create session", zap.Error(err))
		respondError(w, r, errors.NewInternalError("Failed to start session"))
		return
	}

	respondData(w, http.StatusCreated, dto)
}

// ShowLogin describes the login endpoint
func (h *Handlers) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if AuthFromContext(r.Context()).Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"fields": []string{"email", "password"},
	})
}

// Login authenticates credentials and starts a session. An unknown
// email and a wrong password are indistinguishable to the caller.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	dto, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if dto == nil {
		respondError(w, r, errors.NewInvalidCredentialsError())
		return
	}

	if err := h.sessions.Login(r.Context(), w, dto.ID); err != nil {
		h.logger.Error("Failed to create session", zap.Error(err))
		respondError(w, r, errors.NewInternalError("Failed to start session"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    dto,
		Message: "Welcome back, " + dto.FullName,
	})
}

// Logout ends the session. Logging out while anonymous succeeds.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), w, r); err != nil {
		h.logger.Error("Failed to end session", zap.Error(err))
		respondError(w, r, errors.NewInternalError("Failed to end session"))
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	respondMessage(w, http.StatusOK, "Logged out")
}
