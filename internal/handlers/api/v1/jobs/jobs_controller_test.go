package jobs

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

func setup(t *testing.T) (*apitest.Env, http.Handler) {
	t.Helper()
	env := apitest.NewEnv(t)
	controller := NewJobController(env.Services, env.Logger, env.Builder)
	return env, env.Handler(func(r *mux.Router) { controller.RegisterRoutes(r, apitest.Open) })
}

func TestListJobs(t *testing.T) {
	env, h := setup(t)
	trusted := env.Company(t, "Acme", 95, models.CompanySizeLarge)
	shady := env.Company(t, "Shady", 40, models.CompanySizeStartup)
	older := env.Job(t, trusted.ID, "Backend Engineer", models.JobStatusVerified, apitest.Now.Add(-48*time.Hour))
	newer := env.Job(t, trusted.ID, "Frontend Engineer", models.JobStatusPending, apitest.Now.Add(-time.Hour))
	env.Job(t, shady.ID, "Crypto Closer", models.JobStatusSuspicious, apitest.Now)

	t.Run("filters by trust score and sorts by recency", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/jobs?trustScoreMin=90", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var jobs []models.JobWithCompany
		body := apitest.Decode(t, rec, &jobs)
		require.Len(t, jobs, 2)
		assert.Equal(t, newer.ID, jobs[0].ID)
		assert.Equal(t, older.ID, jobs[1].ID)
		assert.Equal(t, "Acme", jobs[0].Company.Name)
		require.NotNil(t, body.Meta)
		assert.Equal(t, 2, body.Meta.Count)
	})

	t.Run("comma separated statuses", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/jobs?status=suspicious,fake", nil)
		var jobs []models.JobWithCompany
		apitest.Decode(t, rec, &jobs)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Crypto Closer", jobs[0].Title)
	})

	t.Run("search matches company name", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/jobs?search=shady", nil)
		var jobs []models.JobWithCompany
		apitest.Decode(t, rec, &jobs)
		assert.Len(t, jobs, 1)
	})

	t.Run("unknown values are ignored", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/jobs?jobType=spaceship&page=2", nil)
		var jobs []models.JobWithCompany
		apitest.Decode(t, rec, &jobs)
		assert.Len(t, jobs, 3)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/jobs?location=Mars", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", string(apitest.Decode(t, rec, nil).Data))
	})
}

func TestGetJob(t *testing.T) {
	env, h := setup(t)
	company := env.Company(t, "Acme", 88, models.CompanySizeMedium)
	job := env.Job(t, company.ID, "Data Analyst", models.JobStatusVerified, apitest.Now)

	rec := apitest.Do(t, h, http.MethodGet, "/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.JobWithCompany
	apitest.Decode(t, rec, &got)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, 88, got.Company.TrustScore)

	rec = apitest.Do(t, h, http.MethodGet, "/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", apitest.Decode(t, rec, nil).Error.Type)
}

func TestCreateJob(t *testing.T) {
	env, h := setup(t)
	company := env.Company(t, "Acme", 90, models.CompanySizeLarge)

	t.Run("created", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/jobs", map[string]interface{}{
			"title":           "Platform Engineer",
			"description":     "Run the platform",
			"companyId":       company.ID,
			"location":        "Remote",
			"jobType":         "remote",
			"experienceLevel": "senior",
			"skills":          []string{"Go", " go ", "Kubernetes"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var job models.Job
		apitest.Decode(t, rec, &job)
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, models.JobStatusPending, job.Status)
		assert.Equal(t, []string{"Go", "Kubernetes"}, job.Skills)
		assert.Zero(t, job.ReportCount)
	})

	t.Run("validation errors list fields", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/jobs", map[string]interface{}{
			"title":     "Go",
			"companyId": company.ID,
			"jobType":   "spaceship",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := apitest.Decode(t, rec, nil)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Type)

		fields := map[string]bool{}
		for _, f := range body.Error.Fields {
			fields[f.Field] = true
		}
		assert.True(t, fields["title"])
		assert.True(t, fields["jobType"])
		assert.True(t, fields["location"])
	})

	t.Run("unknown company", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/jobs", map[string]interface{}{
			"title":           "Platform Engineer",
			"description":     "Run the platform",
			"companyId":       "nope",
			"location":        "Remote",
			"jobType":         "remote",
			"experienceLevel": "senior",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/jobs", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestModerationRoutes(t *testing.T) {
	env, h := setup(t)
	company := env.Company(t, "Acme", 90, models.CompanySizeLarge)
	job := env.Job(t, company.ID, "Support Agent", models.JobStatusPending, apitest.Now)

	rec := apitest.Do(t, h, http.MethodPatch, "/jobs/"+job.ID+"/status", map[string]string{"status": "fake"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Job
	apitest.Decode(t, rec, &updated)
	assert.Equal(t, models.JobStatusFake, updated.Status)

	rec = apitest.Do(t, h, http.MethodPatch, "/jobs/"+job.ID+"/status", map[string]string{"status": "banned"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = apitest.Do(t, h, http.MethodPatch, "/jobs/missing/status", map[string]string{"status": "verified"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = apitest.Do(t, h, http.MethodDelete, "/jobs/"+job.ID+"/report-count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reset models.Job
	apitest.Decode(t, rec, &reset)
	assert.Zero(t, reset.ReportCount)
}
