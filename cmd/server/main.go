package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/company-site-api/internal/api"
	"github.com/company-site-api/internal/config"
	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/media"
	"github.com/company-site-api/internal/repository"
	"github.com/company-site-api/internal/service"
	"github.com/company-site-api/pkg/logger"
	gfshutdown "github.com/gelmium/graceful-shutdown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("env", cfg.Env).Msg("Starting company site API server...")

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run migrations
	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize image storage
	store, err := media.NewStore(cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize media store")
	}

	// Initialize services
	services := service.NewServices(repos, store, db, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

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
		log.Info().Str("port", cfg.Server.Port).Str("uploads", store.Root()).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown: drain HTTP first, then release the pool
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info().Msg("Shutting down server...")
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				return db.Close()
			},
		},
	)

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("Server exited")
	os.Exit(exitCode)
}
