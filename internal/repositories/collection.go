// file: internal/repositories/collection.go
package repositories

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobtrust/internal/config"
	"jobtrust/internal/database"
)

// NewStore builds the store selected by cfg.Driver and seeds it when asked
func NewStore(ctx context.Context, cfg *config.StoreConfig, logger *zap.Logger) (Store, error) {
	var store Store

	switch cfg.Driver {
	case config.StoreDriverMemory:
		store = NewMemoryStore(logger.Named("store"))
	case config.StoreDriverPostgres:
		db, err := database.Connect(ctx, cfg, logger.Named("database"))
		if err != nil {
			return nil, err
		}
		store = NewPostgresStore(db, logger.Named("store"))
	default:
		return nil, fmt.Errorf("unsupported store driver: %q", cfg.Driver)
	}

	now := time.Now().UTC()
	if cfg.SeedDemoData {
		if err := Seed(ctx, store, now, logger); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}
	if cfg.SeedDataDir != "" {
		if _, err := ImportDir(ctx, store, cfg.SeedDataDir, now, logger.Named("import")); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to import datasets: %w", err)
		}
	}

	logger.Info("Entity store initialized",
		zap.String("driver", cfg.Driver),
		zap.Bool("seeded", cfg.SeedDemoData),
		zap.String("data_dir", cfg.SeedDataDir),
	)
	return store, nil
}
