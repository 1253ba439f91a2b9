package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"jobtrust/internal/config"
)

// Manager wraps the Postgres connection pool with query timing and logging
type Manager struct {
	db     *sql.DB
	logger *zap.Logger
	config *config.StoreConfig
	mu     sync.RWMutex
}

// NewManager opens the pool and verifies it with a ping
func NewManager(ctx context.Context, cfg *config.StoreConfig, logger *zap.Logger) (*Manager, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	configureConnectionPool(db, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	registerPoolCollector(db)

	logger.Info("Database manager initialized",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
	)

	return &Manager{
		db:     db,
		logger: logger,
		config: cfg,
	}, nil
}

func configureConnectionPool(db *sql.DB, cfg *config.StoreConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(10 * time.Minute)
}

// DB returns the underlying pool
func (m *Manager) DB() *sql.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

// Migrate applies the embedded migrations. It uses a separate connection
// so closing the migrator does not close the main pool.
func (m *Manager) Migrate() error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	migrationDB, err := sql.Open("postgres", m.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migration connection: %w", err)
	}
	defer migrationDB.Close()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	currentVersion, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	m.logger.Info("Migrations completed",
		zap.Uint("from_version", currentVersion),
		zap.Uint("to_version", newVersion),
	)
	return nil
}

// ExecContext executes a statement with timing
func (m *Manager) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := m.DB().ExecContext(ctx, query, args...)
	m.observe(ctx, "exec", query, start, err)
	return result, err
}

// QueryContext runs a query returning rows
func (m *Manager) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := m.DB().QueryContext(ctx, query, args...)
	m.observe(ctx, "query", query, start, err)
	return rows, err
}

// QueryRowContext runs a single-row query. Scan errors surface at the caller.
func (m *Manager) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := m.DB().QueryRowContext(ctx, query, args...)
	m.observe(ctx, "query_row", query, start, nil)
	return row
}

// WithTransaction runs fn inside a transaction, committing on success
func (m *Manager) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	start := time.Now()
	tx, err := m.DB().BeginTx(ctx, nil)
	if err != nil {
		m.observe(ctx, "begin_tx", "BEGIN", start, err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				m.logger.Error("Failed to roll back transaction", zap.Error(rbErr))
			}
		}
		m.observe(ctx, "tx", "TRANSACTION", start, err)
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (m *Manager) observe(ctx context.Context, op, query string, start time.Time, err error) {
	duration := time.Since(start)
	recordQuery(op, duration, err)

	if duration > m.config.SlowQuery {
		m.logger.Warn("Slow query detected",
			zap.String("type", op),
			zap.Duration("duration", duration),
			zap.String("query", truncateQuery(query)),
		)
	}
	if err != nil && !errors.Is(err, context.Canceled) && ctx.Err() == nil {
		m.logger.Error("Query execution failed",
			zap.String("type", op),
			zap.Error(err),
			zap.String("query", truncateQuery(query)),
		)
	}
}

// Close closes the pool
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		m.logger.Info("Closing database connection")
		err := m.db.Close()
		m.db = nil
		return err
	}
	return nil
}

// Stats returns pool statistics
func (m *Manager) Stats() sql.DBStats {
	return m.DB().Stats()
}

func truncateQuery(query string) string {
	const maxLength = 200
	if len(query) <= maxLength {
		return query
	}
	return query[:maxLength] + "..."
}
