package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/blog-api/internal/api"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/service"
	"github.com/blog-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid command-line flags")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = log.Level(logger.ParseLevel(cfg.Log.Level))

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if opts.MigrateDown {
		if err := db.MigrateDown(cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to roll back migration")
		}
		return
	}

	// Run migrations
	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories and services
	repos := repository.New(db)
	services := service.NewServices(repos, db, cfg, log)

	if opts.CreateAdmin {
		user, err := services.Auth.CreateUser(context.Background(), &models.CreateUserRequest{
			Email:    opts.Email,
			Name:     opts.Name,
			Password: opts.Password,
			IsAdmin:  true,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create admin user")
		}
		log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("Admin user created")
		return
	}

	log.Info().Msg("Starting blog API server...")

	// Initialize router
	router := api.NewRouter(services, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msgf("Server listening on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
