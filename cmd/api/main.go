// NomNom is a recipe tracker: accounts, saved recipes and random
// recipe suggestions from an external API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	recipeapp "github.com/hauqxngo/NomNom/internal/application/recipe"
	userapp "github.com/hauqxngo/NomNom/internal/application/user"
	"github.com/hauqxngo/NomNom/internal/infrastructure/config"
	"github.com/hauqxngo/NomNom/internal/infrastructure/http/webserver"
	gormrepo "github.com/hauqxngo/NomNom/internal/infrastructure/persistence/gorm"
	"github.com/hauqxngo/NomNom/internal/infrastructure/persistence/postgres"
	"github.com/hauqxngo/NomNom/internal/infrastructure/persistence/sqlite"
	"github.com/hauqxngo/NomNom/internal/infrastructure/session"
	"github.com/hauqxngo/NomNom/internal/infrastructure/suggestion"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"github.com/hauqxngo/NomNom/pkg/healthcheck"
	applogger "github.com/hauqxngo/NomNom/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := applogger.New(applogger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting NomNom",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	if err := run(cfg, log); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := openDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("database setup: %w", err)
	}

	userRepo := gormrepo.NewUserRepository(db)
	recipeRepo := gormrepo.NewRecipeRepository(db)

	sessionStore, closeStore, err := openSessionStore(cfg, log)
	if err != nil {
		return fmt.Errorf("session store setup: %w", err)
	}
	defer closeStore()

	suggestionClient := suggestion.NewClient(&cfg.Suggestion, log)

	userService := userapp.NewService(userRepo, recipeRepo, log)
	recipeService := recipeapp.NewService(recipeRepo, suggestionClient, log)

	health := healthcheck.New(cfg.App.Version, log.Named("healthcheck"))
	health.Register("database", healthcheck.NewDatabaseChecker(db))
	if redisStore, ok := sessionStore.(*session.RedisStore); ok {
		health.Register("redis", healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
			start := time.Now()
			check := healthcheck.Check{LastChecked: start, Status: healthcheck.StatusHealthy}
			if err := redisStore.Ping(ctx); err != nil {
				check.Status = healthcheck.StatusUnhealthy
				check.Message = err.Error()
			}
			check.Duration = time.Since(start) / time.Millisecond
			return check
		}))
	}

	sessions := webserver.NewSessionManager(sessionStore, &cfg.Session, log)
	handlers := webserver.NewHandlers(userService, recipeService, sessions, log)
	server := webserver.NewServer(cfg, handlers, sessions, health, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(ctx)
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		level := gormlogger.Warn
		if cfg.IsDevelopment() {
			level = gormlogger.Info
		}
		return sqlite.SetupDatabase(cfg.Database.SQLitePath, level)
	default:
		return postgres.SetupDatabase(cfg, log)
	}
}

func openSessionStore(cfg *config.Config, log *zap.Logger) (outbound.SessionRepository, func(), error) {
	if cfg.Redis.Enabled {
		store, err := session.NewRedisStore(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	log.Info("Redis disabled, using in-memory session store")
	store := session.NewMemoryStore()
	return store, func() { _ = store.Close() }, nil
}
