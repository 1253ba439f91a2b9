package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queryDuration tracks statement latency by operation and outcome
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobtrust_db_query_duration_seconds",
		Help:    "Database statement duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"operation", "result"})

	// queryErrors counts failed statements by operation
	queryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobtrust_db_query_errors_total",
		Help: "Total failed database statements by operation",
	}, []string{"operation"})
)

func recordQuery(op string, duration time.Duration, err error) {
	result := "ok"
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		result = "error"
		queryErrors.WithLabelValues(op).Inc()
	}
	queryDuration.WithLabelValues(op, result).Observe(duration.Seconds())
}

// registerPoolCollector exposes sql.DBStats. It reports false when a
// collector for another pool is already registered.
func registerPoolCollector(db *sql.DB) bool {
	err := prometheus.Register(collectors.NewDBStatsCollector(db, "jobtrust"))
	return err == nil
}
