package repositories

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"jobtrust/internal/config"
	"jobtrust/internal/database"
	"jobtrust/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildJobWhere(t *testing.T) {
	t.Run("empty filters", func(t *testing.T) {
		where, args := buildJobWhere(models.JobFilters{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("placeholders are numbered in order", func(t *testing.T) {
		threshold := 90
		where, args := buildJobWhere(models.JobFilters{
			Search:        "React",
			JobTypes:      []models.JobType{models.JobTypeRemote},
			TrustScoreMin: &threshold,
		})
		assert.Contains(t, where, "$1")
		assert.Contains(t, where, "j.job_type = ANY($2)")
		assert.Contains(t, where, "c.trust_score >= $3")
		require.Len(t, args, 3)
		assert.Equal(t, "react", args[0])
		assert.Equal(t, 90, args[2])
	})
}

// newPostgresTestStore connects to TEST_DATABASE_URL and truncates all tables
func newPostgresTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg, err := config.Defaults()
	require.NoError(t, err)
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.Store.DatabaseURL = url
	cfg.Store.ConnectTimeout = 10 * time.Second

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Store, zap.NewNop())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `TRUNCATE job_reports, saved_jobs, jobs, companies, courses, users`)
	require.NoError(t, err)

	store := NewPostgresStore(db, zap.NewNop())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgresStore(t *testing.T) {
	s := newPostgresTestStore(t)
	ctx := context.Background()

	a := mustCompany(t, s, "A", 98)
	b := mustCompany(t, s, "B", 62)
	base := time.Now().UTC().Truncate(time.Second)
	older := mustJob(t, s, a.ID, "Older Frontend", base.Add(-48*time.Hour))
	newer := mustJob(t, s, b.ID, "Newer Backend", base.Add(-time.Hour))

	t.Run("list and filter", func(t *testing.T) {
		res, err := s.ListJobs(ctx, models.JobFilters{})
		require.NoError(t, err)
		require.Len(t, res.Jobs, 2)
		assert.Equal(t, newer.ID, res.Jobs[0].ID)

		threshold := 90
		res, err = s.ListJobs(ctx, models.JobFilters{TrustScoreMin: &threshold, Search: "front"})
		require.NoError(t, err)
		require.Len(t, res.Jobs, 1)
		assert.Equal(t, older.ID, res.Jobs[0].ID)
		assert.Equal(t, a.ID, res.Jobs[0].Company.ID)
	})

	t.Run("trust score clamped", func(t *testing.T) {
		c, err := s.UpdateCompanyTrustScore(ctx, a.ID, 500)
		require.NoError(t, err)
		assert.Equal(t, 100, c.TrustScore)
	})

	t.Run("saved jobs", func(t *testing.T) {
		_, err := s.SaveJob(ctx, "u1", older.ID)
		require.NoError(t, err)
		_, err = s.SaveJob(ctx, "u1", older.ID)
		assert.ErrorIs(t, err, ErrDuplicate)
		_, err = s.SaveJob(ctx, "u1", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, s.UnsaveJob(ctx, "u1", "missing"))
	})

	t.Run("concurrent reports keep count in sync", func(t *testing.T) {
		const workers = 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.CreateJobReport(ctx, &models.JobReport{JobID: newer.ID, ReporterID: "u1", Reason: models.ReasonSpamOrScam})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		j, err := s.GetJob(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, workers, j.ReportCount)

		_, err = s.CreateJobReport(ctx, &models.JobReport{JobID: "missing", ReporterID: "u1", Reason: models.ReasonOther})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
