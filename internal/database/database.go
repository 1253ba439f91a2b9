package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"jobtrust/internal/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Connect opens the database with exponential backoff, then applies
// migrations. It gives up after cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg *config.StoreConfig, logger *zap.Logger) (*Manager, error) {
	logger.Info("Connecting to database", zap.Duration("timeout", cfg.ConnectTimeout))

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = cfg.ConnectTimeout

	var manager *Manager
	operation := func() error {
		m, err := NewManager(ctx, cfg, logger)
		if err != nil {
			return err
		}
		manager = m
		return nil
	}

	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(b, ctx),
		func(err error, d time.Duration) {
			logger.Warn("Database connection attempt failed",
				zap.Error(err),
				zap.Duration("backoff", d))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	if err := manager.Migrate(); err != nil {
		manager.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return manager, nil
}
