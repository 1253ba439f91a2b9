// file: internal/services/service_collection.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"jobtrust/internal/cache"
	"jobtrust/internal/config"
	"jobtrust/internal/repositories"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ServiceCollection holds every service wired to one store and cache
type ServiceCollection struct {
	JobService      JobService
	SavedJobService SavedJobService
	ReportService   ReportService
	CompanyService  CompanyService
	CourseService   CourseService
	UserService     UserService
	StatsService    StatsService

	Store  repositories.Store
	Cache  cache.Cache
	Config *config.Config
	Logger *zap.Logger

	startTime time.Time
}

// ServiceHealth represents the health of the collection's dependencies
type ServiceHealth struct {
	Status       string                   `json:"status"`
	Timestamp    time.Time                `json:"timestamp"`
	Uptime       string                   `json:"uptime"`
	Dependencies map[string]ServiceStatus `json:"dependencies"`
	Issues       []string                 `json:"issues,omitempty"`
}

// ServiceStatus represents the status of one dependency
type ServiceStatus struct {
	Name         string                 `json:"name"`
	Status       string                 `json:"status"`
	ResponseTime string                 `json:"responseTime"`
	Error        string                 `json:"error,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// NewServiceCollection wires all services to store and c
func NewServiceCollection(
	store repositories.Store,
	c cache.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) (*ServiceCollection, error) {
	if store == nil {
		return nil, fmt.Errorf("entity store is required")
	}
	if c == nil {
		return nil, fmt.Errorf("cache is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	sc := &ServiceCollection{
		JobService:      NewJobService(store, store, logger.Named("jobs")),
		SavedJobService: NewSavedJobService(store, logger.Named("saved_jobs")),
		ReportService:   NewReportService(store, store, cfg.Features, logger.Named("reports")),
		CompanyService:  NewCompanyService(store, logger.Named("companies")),
		CourseService:   NewCourseService(store),
		UserService:     NewUserService(store, logger.Named("users")),
		StatsService:    NewStatsService(store, store, cfg.Features, nil),
		Store:           store,
		Cache:           c,
		Config:          cfg,
		Logger:          logger,
		startTime:       time.Now(),
	}

	logger.Info("Service collection initialized",
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("cache_provider", cfg.Cache.Provider),
		zap.String("weekly_stats_mode", cfg.Features.WeeklyStatsMode),
		zap.Bool("leaderboard_fallback", cfg.Features.LeaderboardFallback),
	)
	return sc, nil
}

// HealthCheck checks the store and the cache
func (sc *ServiceCollection) HealthCheck(ctx context.Context) *ServiceHealth {
	health := &ServiceHealth{
		Status:       StatusHealthy,
		Timestamp:    time.Now().UTC(),
		Uptime:       time.Since(sc.startTime).Round(time.Second).String(),
		Dependencies: make(map[string]ServiceStatus, 2),
	}

	store := checkDependency(ctx, "store", sc.Store.Health)
	store.Metadata = map[string]interface{}{"driver": sc.Config.Store.Driver}
	health.Dependencies["store"] = store

	cacheStatus := checkDependency(ctx, "cache", sc.Cache.Health)
	if stats, err := sc.Cache.Stats(ctx); err == nil {
		cacheStatus.Metadata = map[string]interface{}{
			"provider": stats.Provider,
			"keys":     stats.Keys,
		}
	}
	health.Dependencies["cache"] = cacheStatus

	// a store failure is fatal, a cache failure only degrades rate limiting
	if store.Status != StatusHealthy {
		health.Status = StatusUnhealthy
		health.Issues = append(health.Issues, fmt.Sprintf("store: %s", store.Error))
	}
	if cacheStatus.Status != StatusHealthy {
		if health.Status == StatusHealthy {
			health.Status = StatusDegraded
		}
		health.Issues = append(health.Issues, fmt.Sprintf("cache: %s", cacheStatus.Error))
	}

	sc.Logger.Debug("Health check completed",
		zap.String("status", health.Status),
		zap.Int("issues", len(health.Issues)),
	)
	return health
}

func checkDependency(ctx context.Context, name string, check func(context.Context) error) ServiceStatus {
	start := time.Now()
	status := ServiceStatus{Name: name, Status: StatusHealthy}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := check(checkCtx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
	}
	status.ResponseTime = time.Since(start).String()
	return status
}

// Shutdown closes the cache and then the store
func (sc *ServiceCollection) Shutdown(ctx context.Context) error {
	sc.Logger.Info("Shutting down service collection")

	var result *multierror.Error
	if err := sc.Cache.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("cache close: %w", err))
	}
	if err := sc.Store.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("store close: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		sc.Logger.Error("Errors occurred during shutdown", zap.Error(err))
		return err
	}

	sc.Logger.Info("Service collection shutdown completed")
	return nil
}
