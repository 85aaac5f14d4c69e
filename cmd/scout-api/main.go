package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"contact-scout/internal/api"
	"contact-scout/internal/api/handlers"
	"contact-scout/internal/config"
	"contact-scout/internal/db"
	"contact-scout/internal/logger"
	"contact-scout/internal/match"
	"contact-scout/internal/repository"
	"contact-scout/internal/scheduler"
	"contact-scout/internal/search"
	"contact-scout/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration first (before logger)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger with configuration
	logger.Init(cfg.Logger)

	logger.Info().
		Str("environment", cfg.Logger.Environment).
		Str("log_level", cfg.Logger.Level).
		Msg("configuration loaded successfully")

	matcher, err := match.New(service.MatcherConfig(cfg.Matching))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid matching configuration")
	}

	// The cache database is optional; without DATABASE_URL the server
	// matches and looks up without caching.
	var database *db.Database
	var cacheRepo *repository.SearchCacheRepository
	if cfg.Database.URL != "" {
		logger.Info().Msg("running database migrations")
		if err := db.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}

		ctx := context.Background()
		database, err = db.NewDatabase(ctx, cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer database.Close()

		logger.Info().Msg("database connected successfully")
		cacheRepo = repository.NewSearchCacheRepository(database, cfg.Search.CacheTTL)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, search cache disabled")
	}

	searchClient := search.NewClient(cfg.Search)

	var cache service.SearchCache
	if cacheRepo != nil {
		cache = cacheRepo
	}
	lookupService := service.NewLookupService(searchClient, cache, matcher)

	matchHandler := handlers.NewMatchHandler(matcher)
	lookupHandler := handlers.NewLookupHandler(lookupService)
	systemHandler := handlers.NewSystemHandler(database, matcher.Config(), cfg.Database.HealthTimeout)

	if cacheRepo != nil {
		cronScheduler := scheduler.NewScheduler(cacheRepo)
		if err := cronScheduler.Start(); err != nil {
			logger.Fatal().Err(err).Msg("failed to start scheduler")
		}
		defer cronScheduler.Stop()
	}

	// Set up Gin router
	if cfg.Logger.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.LoggingMiddleware())
	router.Use(api.ErrorHandlerMiddleware())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/match", matchHandler.Match)
		v1.POST("/lookup", lookupHandler.Lookup)

		system := v1.Group("/system")
		{
			system.GET("/health", systemHandler.Health)
			system.GET("/info", systemHandler.Info)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
