package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrust/internal/config"
	"jobtrust/internal/handlers/api/v1/apitest"
	"jobtrust/internal/middleware"
	"jobtrust/internal/models"
)

func newServer(t *testing.T, opts ...func(*config.Config)) (*apitest.Env, http.Handler) {
	t.Helper()
	env := apitest.NewEnv(t, opts...)
	return env, SetupRouter(env.Services, env.Builder, Options{Registry: prometheus.NewRegistry()}, env.Logger)
}

func TestRoutingEnvelope(t *testing.T) {
	env, h := newServer(t)
	company := env.Company(t, "Acme", 91, models.CompanySizeLarge)
	env.Job(t, company.ID, "Go Developer", models.JobStatusVerified, apitest.Now)

	t.Run("api route", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/api/v1/jobs", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := apitest.Decode(t, rec, nil)
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.RequestID)
		assert.Equal(t, body.RequestID, rec.Header().Get(middleware.HeaderXRequestID))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/api/v1/nothing", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", apitest.Decode(t, rec, nil).Error.Type)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPut, "/api/v1/saved-jobs", nil)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "GET, POST, DELETE", rec.Header().Get("Allow"))
	})

	t.Run("health", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `jobtrust_http_requests_total{method="GET",route="/api/v1/jobs",status="200"} 1`)
	})

	t.Run("swagger document", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/swagger/doc.json", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/top-reporters")
	})
}

func TestAdminRoutes(t *testing.T) {
	const secret = "router-secret"
	env, h := newServer(t, func(c *config.Config) { c.Security.AdminJWTSecret = secret })
	company := env.Company(t, "Acme", 91, models.CompanySizeLarge)
	job := env.Job(t, company.ID, "Go Developer", models.JobStatusPending, apitest.Now)

	patch := func(token string) int {
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/jobs/"+job.ID+"/status", strings.NewReader(`{"status":"verified"}`))
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, patch(""))

	userToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, patch(userToken))

	adminToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin", "sub": "mod-1", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, patch(adminToken))

	// public routes stay open
	rec := apitest.Do(t, h, http.MethodGet, "/api/v1/jobs/"+job.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitedAPI(t *testing.T) {
	_, h := newServer(t, func(c *config.Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.Requests = 3
		c.RateLimit.WriteRequests = 1
	})

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, apitest.Do(t, h, http.MethodGet, "/api/v1/stats", nil).Code)
	}
	rec := apitest.Do(t, h, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMIT", apitest.Decode(t, rec, nil).Error.Type)
}
