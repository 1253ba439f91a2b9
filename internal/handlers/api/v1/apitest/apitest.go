// Package apitest wires real services over the memory store for
// controller tests.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobtrust/internal/cache"
	"jobtrust/internal/config"
	"jobtrust/internal/middleware"
	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

// Now is the fixed clock used by the memory store in tests
var Now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Env is a fully wired service layer
type Env struct {
	Config   *config.Config
	Store    *repositories.MemoryStore
	Services *services.ServiceCollection
	Builder  *response.Builder
	Logger   *zap.Logger
}

// NewEnv builds an Env. Options run against the default config before
// services are wired.
func NewEnv(t testing.TB, opts ...func(*config.Config)) *Env {
	t.Helper()

	cfg, err := config.Defaults()
	require.NoError(t, err)
	cfg.Cache.CleanupInterval = 0
	cfg.RateLimit.Enabled = false
	for _, opt := range opts {
		opt(cfg)
	}

	logger := zap.NewNop()
	store := repositories.NewMemoryStore(logger, repositories.WithClock(func() time.Time { return Now }))
	c := cache.NewMemoryCache(&cfg.Cache, logger)

	sc, err := services.NewServiceCollection(store, c, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown(context.Background()) })

	return &Env{
		Config:   cfg,
		Store:    store,
		Services: sc,
		Builder:  response.NewBuilder(response.DefaultConfig(), logger),
		Logger:   logger,
	}
}

// Handler mounts routes registered by register behind the request id and
// response builder middleware
func (e *Env) Handler(register func(r *mux.Router)) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(e.Builder.WriteNotFound)
	register(r)
	return middleware.RequestID(e.Logger)(response.Middleware(e.Builder)(r))
}

// Open is an admin middleware that lets every request through
func Open(next http.Handler) http.Handler { return next }

// Do sends a request. Strings are sent verbatim; anything else non-nil is
// encoded as JSON.
func Do(t testing.TB, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Envelope mirrors the response envelope with a raw data member
type Envelope struct {
	Success   bool                  `json:"success"`
	Data      json.RawMessage       `json:"data"`
	Error     *response.ErrorDetail `json:"error"`
	Meta      *response.ResponseMeta `json:"meta"`
	RequestID string                `json:"request_id"`
}

// Decode parses the envelope and, when data is non-nil, its data member
func Decode(t testing.TB, rec *httptest.ResponseRecorder, data interface{}) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

// ===============================
// FIXTURES
// ===============================

// Company stores a company with the given trust score
func (e *Env) Company(t testing.TB, name string, score int, size models.CompanySize) *models.Company {
	t.Helper()
	c, err := e.Store.CreateCompany(context.Background(), &models.Company{
		Name:       name,
		Size:       size,
		TrustScore: score,
		CreatedAt:  Now,
	})
	require.NoError(t, err)
	return c
}

// Job stores a job for companyID
func (e *Env) Job(t testing.TB, companyID, title string, status models.JobStatus, posted time.Time) *models.Job {
	t.Helper()
	j, err := e.Store.CreateJob(context.Background(), &models.Job{
		Title:           title,
		Description:     "Build things",
		CompanyID:       companyID,
		Location:        "Nairobi",
		JobType:         models.JobTypeRemote,
		ExperienceLevel: models.ExperienceMid,
		Status:          status,
		PostedAt:        posted,
	})
	require.NoError(t, err)
	return j
}

// User stores a user
func (e *Env) User(t testing.TB, username string) *models.User {
	t.Helper()
	u, err := e.Store.CreateUser(context.Background(), &models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hash",
		CreatedAt: Now,
	})
	require.NoError(t, err)
	return u
}
