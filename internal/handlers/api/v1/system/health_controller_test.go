package system

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrust/internal/cache"
	"jobtrust/internal/handlers/api/v1/apitest"
	"jobtrust/internal/repositories"
	"jobtrust/internal/services"
)

func TestHealth(t *testing.T) {
	env := apitest.NewEnv(t)
	controller := NewHealthController(env.Services, env.Logger, env.Builder)
	h := env.Handler(func(r *mux.Router) { r.HandleFunc("/health", controller.Health) })

	rec := apitest.Do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health services.ServiceHealth
	body := apitest.Decode(t, rec, &health)
	assert.True(t, body.Success)
	assert.Equal(t, services.StatusHealthy, health.Status)
	assert.Contains(t, health.Dependencies, "store")
	assert.Contains(t, health.Dependencies, "cache")
}

type brokenCache struct{ cache.Cache }

func (brokenCache) Health(context.Context) error { return errors.New("dial tcp: connection refused") }

type brokenStore struct{ repositories.Store }

func (brokenStore) Health(context.Context) error { return errors.New("database is closed") }

func TestHealthDependencies(t *testing.T) {
	tests := []struct {
		name       string
		breakEnv   func(sc *services.ServiceCollection)
		wantCode   int
		wantStatus string
	}{
		{"cache down degrades", func(sc *services.ServiceCollection) { sc.Cache = brokenCache{sc.Cache} }, http.StatusOK, services.StatusDegraded},
		{"store down is unhealthy", func(sc *services.ServiceCollection) { sc.Store = brokenStore{sc.Store} }, http.StatusServiceUnavailable, services.StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := apitest.NewEnv(t)
			tt.breakEnv(env.Services)
			controller := NewHealthController(env.Services, env.Logger, env.Builder)
			h := env.Handler(func(r *mux.Router) { r.HandleFunc("/health", controller.Health) })

			rec := apitest.Do(t, h, http.MethodGet, "/health", nil)
			require.Equal(t, tt.wantCode, rec.Code)

			var health services.ServiceHealth
			apitest.Decode(t, rec, &health)
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Len(t, health.Issues, 1)
		})
	}
}
