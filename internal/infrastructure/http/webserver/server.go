package webserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hauqxngo/NomNom/internal/infrastructure/config"
	"github.com/hauqxngo/NomNom/pkg/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server is the HTTP server hosting the recipe tracker
type Server struct {
	httpServer *http.Server
	router     chi.Router
	logger     *zap.Logger
}

// NewServer builds the router and wires every endpoint
func NewServer(cfg *config.Config, handlers *Handlers, sessions *SessionManager, health *healthcheck.HealthCheck, logger *zap.Logger) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(metricsMiddleware)

	if cfg.RateLimit.Enable {
		limiter := newIPRateLimiter(float64(cfg.RateLimit.RequestsPerMin)/60.0, cfg.RateLimit.BurstSize)
		r.Use(limiter.middleware)
	}

	r.Use(sessions.Middleware)

	// Open to anonymous visitors
	r.Get("/", handlers.Home)
	r.Get("/about", handlers.About)
	r.Get("/register", handlers.ShowRegister)
	r.Post("/register", handlers.Register)
	r.Get("/login", handlers.ShowLogin)
	r.Post("/login", handlers.Login)
	r.Get("/logout", handlers.Logout)
	r.Get("/recipes", handlers.SearchRecipes)

	r.Get("/health", health.Handler())
	r.Handle("/metrics", promhttp.Handler())

	// Session required; ownership is enforced per handler
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/users/profile", handlers.ShowProfile)
		r.Post("/users/profile", handlers.UpdateProfile)
		r.Post("/users/delete", handlers.DeleteUser)
		r.Get("/users/{id}", handlers.ShowUser)
		r.Get("/users/{id}/recipes", handlers.ListUserRecipes)
		r.Get("/users/{id}/recipes/random", handlers.RandomRecipe)
		r.Post("/users/{id}/recipes/random", handlers.SaveRandomRecipe)

		r.Get("/recipes/new", handlers.ShowNewRecipe)
		r.Post("/recipes/new", handlers.CreateRecipe)
		r.Get("/recipes/{id}", handlers.ShowRecipe)
		r.Get("/recipes/{id}/done", handlers.ToggleDone)
		r.Get("/recipes/{id}/edit", handlers.ShowEditRecipe)
		r.Post("/recipes/{id}/edit", handlers.EditRecipe)
		r.Get("/recipes/{id}/delete", handlers.ShowDeleteRecipe)
		r.Post("/recipes/{id}/delete", handlers.DeleteRecipe)
	})

	r.NotFound(handlers.NotFound)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		router: r,
		logger: logger,
	}
}

// Router exposes the underlying router, mainly for tests
func (s *Server) Router() chi.Router {
	return s.router
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
