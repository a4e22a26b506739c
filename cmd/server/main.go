package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/api"
	"github.com/internship-hub-portal/internal/apiclient"
	"github.com/internship-hub-portal/internal/config"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/repository"
	"github.com/internship-hub-portal/internal/service"
	"github.com/internship-hub-portal/internal/session"
	"github.com/internship-hub-portal/pkg/logger"
	"github.com/joho/godotenv"
)

// maxLiveSessions bounds the in-memory session managers. Evicted clients
// are re-resolved from the store on their next request.
const maxLiveSessions = 10000

func main() {
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(config.LogConfig{})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info().Msg("Starting Internship Hub portal server...")
	if envErr != nil {
		log.Debug().Msg("No .env file found, relying on existing environment")
	}

	// Initialize store
	store, closeStore, err := kvstore.Open(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("Failed to open store")
	}
	defer closeStore()
	log.Info().Str("driver", cfg.Store.Driver).Msg("Store ready")

	m := metrics.New()

	// External REST API
	backend := apiclient.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout}, nil, log)

	// Sessions are scoped per browser client
	sessions := session.NewRegistry(api.NewSessionFactory(store, backend, session.Options{
		StrictRoles: cfg.Session.StrictRoles,
		Metrics:     m,
	}, log), maxLiveSessions)

	// Initialize repositories and services
	repos := repository.New(store, log)
	services := service.NewServices(repos, cfg, m, log)

	// Initialize router
	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Deps{
		Services: services,
		Sessions: sessions,
		Store:    store,
		Backend:  backend,
		Metrics:  m,
	}, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Str("backend", cfg.Backend.BaseURL).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
