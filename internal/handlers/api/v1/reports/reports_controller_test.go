package reports

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrust/internal/config"
	"jobtrust/internal/handlers/api/v1/apitest"
	"jobtrust/internal/models"
)

func setup(t *testing.T, opts ...func(*config.Config)) (*apitest.Env, http.Handler) {
	t.Helper()
	env := apitest.NewEnv(t, opts...)
	controller := NewReportController(env.Services, env.Logger, env.Builder)
	return env, env.Handler(func(r *mux.Router) { controller.RegisterRoutes(r) })
}

func TestFileReport(t *testing.T) {
	env, h := setup(t)
	company := env.Company(t, "Acme", 90, models.CompanySizeLarge)
	job := env.Job(t, company.ID, "Data Entry", models.JobStatusPending, apitest.Now)
	reporter := env.User(t, "otieno")

	t.Run("created and counted", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/job-reports", map[string]interface{}{
			"jobId":      job.ID,
			"reporterId": reporter.ID,
			"reason":     "Requests payment or personal info",
			"evidence":   []string{"screenshot.png"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var report models.JobReport
		apitest.Decode(t, rec, &report)
		assert.Equal(t, models.ReportStatusPending, report.Status)
		assert.Equal(t, models.ReasonRequestsPayment, report.Reason)

		stored, err := env.Store.GetJob(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.ReportCount)
	})

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"unknown reason", map[string]interface{}{"jobId": job.ID, "reporterId": reporter.ID, "reason": "Boring"}, http.StatusBadRequest},
		{"missing reporter", map[string]interface{}{"jobId": job.ID, "reason": "Spam or scam"}, http.StatusBadRequest},
		{"unknown job", map[string]interface{}{"jobId": "missing", "reporterId": reporter.ID, "reason": "Spam or scam"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := apitest.Do(t, h, http.MethodPost, "/job-reports", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("failed reports do not count", func(t *testing.T) {
		stored, err := env.Store.GetJob(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.ReportCount)
	})

	t.Run("other without description", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/job-reports", map[string]interface{}{
			"jobId": job.ID, "reporterId": reporter.ID, "reason": "Other",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		stored, err := env.Store.GetJob(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.ReportCount)
	})

	t.Run("list", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/job-reports", nil)
		var reports []models.JobReport
		body := apitest.Decode(t, rec, &reports)
		assert.Len(t, reports, 2)
		assert.Equal(t, 2, body.Meta.Count)
	})
}

func TestConcurrentReports(t *testing.T) {
	env, h := setup(t)
	company := env.Company(t, "Acme", 90, models.CompanySizeLarge)
	job := env.Job(t, company.ID, "Data Entry", models.JobStatusPending, apitest.Now)
	reporter := env.User(t, "otieno")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			apitest.Do(t, h, http.MethodPost, "/job-reports", map[string]interface{}{
				"jobId": job.ID, "reporterId": reporter.ID, "reason": "Spam or scam",
			})
		}()
	}
	wg.Wait()

	stored, err := env.Store.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, n, stored.ReportCount)
}

func TestTopReporters(t *testing.T) {
	t.Run("ranks reporters", func(t *testing.T) {
		env, h := setup(t)
		company := env.Company(t, "Acme", 90, models.CompanySizeLarge)
		job := env.Job(t, company.ID, "Data Entry", models.JobStatusPending, apitest.Now)
		alice := env.User(t, "alice")
		bob := env.User(t, "bob")

		for _, id := range []string{bob.ID, alice.ID, alice.ID} {
			rec := apitest.Do(t, h, http.MethodPost, "/job-reports", map[string]interface{}{
				"jobId": job.ID, "reporterId": id, "reason": "Spam or scam",
			})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := apitest.Do(t, h, http.MethodGet, "/top-reporters?limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var entries []models.LeaderboardEntry
		apitest.Decode(t, rec, &entries)
		require.Len(t, entries, 1)
		assert.Equal(t, "alice", entries[0].DisplayName)
		assert.Equal(t, 2, entries[0].ReportCount)
	})

	t.Run("bad limit", func(t *testing.T) {
		_, h := setup(t)
		rec := apitest.Do(t, h, http.MethodGet, "/top-reporters?limit=ten", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty without fallback", func(t *testing.T) {
		_, h := setup(t)
		rec := apitest.Do(t, h, http.MethodGet, "/top-reporters", nil)
		assert.JSONEq(t, "[]", string(apitest.Decode(t, rec, nil).Data))
	})

	t.Run("fallback when enabled", func(t *testing.T) {
		_, h := setup(t, func(c *config.Config) { c.Features.LeaderboardFallback = true })
		rec := apitest.Do(t, h, http.MethodGet, "/top-reporters", nil)
		var entries []models.LeaderboardEntry
		apitest.Decode(t, rec, &entries)
		require.Len(t, entries, 3)
		assert.Equal(t, "Sarah Chen", entries[0].DisplayName)
		assert.Equal(t, []string{"1", "2", "3"}, []string{entries[0].UserID, entries[1].UserID, entries[2].UserID})
	})
}
