// @title           JobTrust API
// @version         1.0
// @description     Job listings with community trust reports, company trust scores and platform statistics.

// @license.name  MIT

// @BasePath  /api/v1

// @securityDefinitions.apikey AdminBearer
// @in header
// @name Authorization
// @description HS256 token with claim role=admin, sent as "Bearer <token>"

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobtrust/internal/cache"
	"jobtrust/internal/config"
	"jobtrust/internal/repositories"
	"jobtrust/internal/response"
	"jobtrust/internal/router"
	"jobtrust/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Application failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting JobTrust",
		zap.String("environment", cfg.Server.Environment),
		zap.String("version", cfg.Server.Version),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("cache_provider", cfg.Cache.Provider),
	)

	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.Store.ConnectTimeout+cfg.Cache.ConnectTimeout)
	defer cancel()

	store, err := repositories.NewStore(startupCtx, &cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cacheInstance, err := cache.New(startupCtx, &cfg.Cache, logger.Named("cache"))
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	serviceCollection, err := services.NewServiceCollection(store, cacheInstance, cfg, logger)
	if err != nil {
		_ = cacheInstance.Close()
		_ = store.Close()
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	responseBuilder := response.NewBuilder(
		response.ConfigForEnvironment(cfg.Server.Environment, cfg.Server.Version),
		logger.Named("response"),
	)
	handler := router.SetupRouter(serviceCollection, responseBuilder, router.Options{}, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", server.Addr),
			zap.String("health_check", "/health"),
			zap.String("metrics", "/metrics"),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case sig := <-quit:
		logger.Info("Shutting down application", zap.String("signal", sig.String()))
	case err := <-serverErr:
		_ = serviceCollection.Shutdown(context.Background())
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	} else {
		logger.Info("Server shutdown completed")
	}

	if err := serviceCollection.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to release resources: %w", err)
	}
	return nil
}

// initLogger initializes the structured logger based on environment.
// LOG_LEVEL overrides the environment's default level.
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	switch {
	case cfg.IsProduction():
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case cfg.IsDevelopment():
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	default:
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if cfg.Logging.Level != "" {
		if err := zapConfig.Level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Logging.Level, err)
		}
	}
	switch cfg.Logging.Format {
	case "json", "console":
		zapConfig.Encoding = cfg.Logging.Format
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
