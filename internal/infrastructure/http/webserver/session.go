// Package webserver provides the HTTP server, routing and session handling
package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hauqxngo/NomNom/internal/infrastructure/config"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"go.uber.org/zap"
)

// AuthContext carries the authenticated user for a single request. It is
// re-derived from session state on every inbound request; there is no
// ambient global user.
type AuthContext struct {
	UserID        uint
	Authenticated bool
}

type contextKey string

const authContextKey contextKey = "auth"

// SessionManager issues and resolves session cookies backed by a
// server-side session repository.
type SessionManager struct {
	store      outbound.SessionRepository
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *zap.Logger
}

// NewSessionManager creates a session manager
func NewSessionManager(store outbound.SessionRepository, cfg *config.SessionConfig, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
		logger:     logger.Named("sessions"),
	}
}

// Login transitions the session to Authenticated(userID) and sets the
// cookie. The cookie carries only the opaque session ID.
func (m *SessionManager) Login(ctx context.Context, w http.ResponseWriter, userID uint) error {
	sessionID := uuid.NewString()

	if err := m.store.Save(ctx, sessionID, userID, m.ttl); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})

	m.logger.Debug("Session created", zap.Uint("user_id", userID))
	return nil
}

// Logout transitions the session to Anonymous. Logging out while already
// anonymous is a no-op, not an error.
func (m *SessionManager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil && cookie.Value != "" {
		if err := m.store.Delete(ctx, cookie.Value); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return nil
}

// Middleware re-derives the AuthContext from session state for every
// inbound request and attaches it to the request context.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := AuthContext{}

		if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
			userID, ok, err := m.store.Lookup(r.Context(), cookie.Value)
			if err != nil {
				m.logger.Warn("Session lookup failed", zap.Error(err))
			} else if ok {
				auth = AuthContext{UserID: userID, Authenticated: true}
			}
		}

		ctx := context.WithValue(r.Context(), authContextKey, auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthFromContext returns the request's AuthContext. A request that never
// passed through the session middleware is Anonymous.
func AuthFromContext(ctx context.Context) AuthContext {
	if auth, ok := ctx.Value(authContextKey).(AuthContext); ok {
		return auth
	}
	return AuthContext{}
}
