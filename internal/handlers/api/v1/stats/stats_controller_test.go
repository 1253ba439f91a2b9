package stats

import (
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrust/internal/handlers/api/v1/apitest"
	"jobtrust/internal/models"
)

func TestGetStats(t *testing.T) {
	env := apitest.NewEnv(t)
	controller := NewStatsController(env.Services, env.Logger, env.Builder)
	h := env.Handler(func(r *mux.Router) { controller.RegisterRoutes(r) })

	t.Run("empty platform", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var summary models.StatsSummary
		apitest.Decode(t, rec, &summary)
		assert.Zero(t, summary.TotalJobs)
		assert.Equal(t, 100.0, summary.SuccessRate)
	})

	t.Run("counts", func(t *testing.T) {
		trusted := env.Company(t, "Acme", 95, models.CompanySizeLarge)
		env.Company(t, "Middling", 60, models.CompanySizeMedium)
		env.Job(t, trusted.ID, "A", models.JobStatusVerified, apitest.Now)
		env.Job(t, trusted.ID, "B", models.JobStatusFake, apitest.Now)
		env.Job(t, trusted.ID, "C", models.JobStatusPending, apitest.Now.Add(-30*24*time.Hour))

		rec := apitest.Do(t, h, http.MethodGet, "/stats", nil)
		var summary models.StatsSummary
		apitest.Decode(t, rec, &summary)
		assert.Equal(t, 3, summary.TotalJobs)
		assert.Equal(t, 1, summary.VerifiedCompanies)
		assert.Equal(t, 1, summary.FakeJobsDetected)
		assert.Equal(t, 66.7, summary.SuccessRate)
	})
}
