package companies

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrust/internal/handlers/api/v1/apitest"
	"jobtrust/internal/models"
)

func TestCompanyRoutes(t *testing.T) {
	env := apitest.NewEnv(t)
	controller := NewCompanyController(env.Services, env.Logger, env.Builder)
	h := env.Handler(func(r *mux.Router) { controller.RegisterRoutes(r, apitest.Open) })

	var created models.Company
	t.Run("create applies default trust score", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/companies", map[string]interface{}{
			"name":    "Savannah Labs",
			"size":    "startup",
			"website": "https://savannah.example",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		apitest.Decode(t, rec, &created)
		assert.Equal(t, models.DefaultTrustScore, created.TrustScore)
		assert.Equal(t, models.CompanySizeStartup, created.Size)
	})

	t.Run("create rejects bad size and score", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPost, "/companies", map[string]interface{}{
			"name":       "Nope",
			"size":       "galactic",
			"trustScore": 150,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, apitest.Decode(t, rec, nil).Error.Fields, 2)
	})

	t.Run("get", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodGet, "/companies/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = apitest.Do(t, h, http.MethodGet, "/companies/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("patch trust data", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPatch, "/companies/"+created.ID, map[string]interface{}{
			"trustScore":   93,
			"reportedJobs": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated models.Company
		apitest.Decode(t, rec, &updated)
		assert.Equal(t, 93, updated.TrustScore)
		assert.Equal(t, 2, updated.ReportedJobs)
		assert.Zero(t, updated.VerifiedJobs)
	})

	t.Run("patch needs a change", func(t *testing.T) {
		rec := apitest.Do(t, h, http.MethodPatch, "/companies/"+created.ID, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = apitest.Do(t, h, http.MethodPatch, "/companies/missing", map[string]interface{}{"trustScore": 10})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		env.Company(t, "Acme", 70, models.CompanySizeLarge)
		rec := apitest.Do(t, h, http.MethodGet, "/companies", nil)
		var companies []models.Company
		apitest.Decode(t, rec, &companies)
		assert.Len(t, companies, 2)
	})
}
