package database

import (
	"context"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus represents the current health of the pool
type HealthStatus struct {
	Status          string        `json:"status"`
	ResponseTime    time.Duration `json:"response_time"`
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
	Error           string        `json:"error,omitempty"`
}

// Health pings the database and reports pool usage. A slow ping or an
// exhausted pool is reported as degraded.
func (m *Manager) Health(ctx context.Context) *HealthStatus {
	db := m.DB()
	if db == nil {
		return &HealthStatus{Status: StatusUnhealthy, Error: "database connection is closed"}
	}

	start := time.Now()
	err := db.PingContext(ctx)
	status := &HealthStatus{
		Status:       StatusHealthy,
		ResponseTime: time.Since(start),
	}

	stats := db.Stats()
	status.OpenConnections = stats.OpenConnections
	status.InUse = stats.InUse

	switch {
	case err != nil:
		status.Status = StatusUnhealthy
		status.Error = err.Error()
	case status.ResponseTime > time.Second:
		status.Status = StatusDegraded
	case stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections:
		status.Status = StatusDegraded
	}

	return status
}
