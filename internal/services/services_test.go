package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobtrust/internal/config"
	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() *repositories.MemoryStore {
	return repositories.NewMemoryStore(zap.NewNop(), repositories.WithClock(func() time.Time { return testNow }))
}

func seedCompany(t *testing.T, s repositories.Store, name string, score int, created time.Time) *models.Company {
	t.Helper()
	c, err := s.CreateCompany(context.Background(), &models.Company{
		Name:       name,
		Size:       models.CompanySizeMedium,
		TrustScore: score,
		CreatedAt:  created,
	})
	require.NoError(t, err)
	return c
}

func seedJob(t *testing.T, s repositories.Store, companyID string, status models.JobStatus, posted time.Time) *models.Job {
	t.Helper()
	j, err := s.CreateJob(context.Background(), &models.Job{
		Title:           "Engineer",
		CompanyID:       companyID,
		Location:        "Remote",
		JobType:         models.JobTypeRemote,
		ExperienceLevel: models.ExperienceMid,
		Status:          status,
		PostedAt:        posted,
	})
	require.NoError(t, err)
	return j
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ===============================
// JOBS
// ===============================

func TestJobService(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewJobService(store, store, zap.NewNop())
	company := seedCompany(t, store, "Acme", 92, testNow)

	t.Run("create validates company", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, &CreateJobRequest{
			Title:           "Backend Engineer",
			Description:     "Go services",
			CompanyID:       "missing",
			Location:        "Nairobi",
			JobType:         "remote",
			ExperienceLevel: "senior",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "companyId", GetFieldErrors(err)[0].Field)
	})

	t.Run("create rejects unknown enum values", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, &CreateJobRequest{
			Title:           "Backend Engineer",
			Description:     "Go services",
			CompanyID:       company.ID,
			Location:        "Nairobi",
			JobType:         "freelance",
			ExperienceLevel: "senior",
		})
		require.Error(t, err)
		assert.Equal(t, "jobType", GetFieldErrors(err)[0].Field)
	})

	var created *models.Job
	t.Run("create defaults to pending with zero reports", func(t *testing.T) {
		var err error
		created, err = svc.CreateJob(ctx, &CreateJobRequest{
			Title:           "  Backend Engineer ",
			Description:     "Go services",
			CompanyID:       company.ID,
			Location:        "Nairobi",
			JobType:         "Remote",
			ExperienceLevel: "senior",
			Skills:          []string{"Go", " go ", "", "SQL"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", created.Title)
		assert.Equal(t, models.JobStatusPending, created.Status)
		assert.Equal(t, models.JobTypeRemote, created.JobType)
		assert.Equal(t, 0, created.ReportCount)
		assert.Equal(t, []string{"Go", "SQL"}, created.Skills)
	})

	t.Run("get joins company", func(t *testing.T) {
		got, err := svc.GetJob(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Company)
		assert.Equal(t, company.ID, got.Company.ID)

		_, err = svc.GetJob(ctx, "missing")
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("list drops orphans", func(t *testing.T) {
		seedJob(t, store, "ghost-company", models.JobStatusPending, testNow)

		jobs, err := svc.ListJobs(ctx, models.JobFilters{})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, created.ID, jobs[0].ID)
	})

	t.Run("list with no match is empty not nil", func(t *testing.T) {
		jobs, err := svc.ListJobs(ctx, models.JobFilters{Search: "no such job"})
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("status update", func(t *testing.T) {
		job, err := svc.UpdateJobStatus(ctx, &UpdateJobStatusRequest{JobID: created.ID, Status: "verified"})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusVerified, job.Status)

		_, err = svc.UpdateJobStatus(ctx, &UpdateJobStatusRequest{JobID: created.ID, Status: "deleted"})
		assert.True(t, IsValidationError(err))

		_, err = svc.UpdateJobStatus(ctx, &UpdateJobStatusRequest{JobID: "missing", Status: "fake"})
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("reset report count", func(t *testing.T) {
		require.NoError(t, store.IncrementJobReports(ctx, created.ID))
		job, err := svc.ResetReportCount(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, job.ReportCount)

		_, err = svc.ResetReportCount(ctx, "missing")
		assert.True(t, IsNotFoundError(err))
	})
}

// ===============================
// SAVED JOBS
// ===============================

func TestSavedJobService(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewSavedJobService(store, zap.NewNop())
	company := seedCompany(t, store, "Acme", 90, testNow)
	job := seedJob(t, store, company.ID, models.JobStatusPending, testNow)

	saved, err := svc.SaveJob(ctx, &SaveJobRequest{UserID: "u1", JobID: job.ID})
	require.NoError(t, err)
	assert.Equal(t, job.ID, saved.JobID)

	_, err = svc.SaveJob(ctx, &SaveJobRequest{UserID: "u1", JobID: job.ID})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))

	_, err = svc.SaveJob(ctx, &SaveJobRequest{UserID: "u1", JobID: "missing"})
	assert.True(t, IsNotFoundError(err))

	_, err = svc.SaveJob(ctx, &SaveJobRequest{JobID: job.ID})
	assert.True(t, IsValidationError(err))

	list, err := svc.ListSavedJobs(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, company.ID, list[0].Company.ID)

	_, err = svc.ListSavedJobs(ctx, " ")
	assert.True(t, IsValidationError(err))

	require.NoError(t, svc.UnsaveJob(ctx, &SaveJobRequest{UserID: "u1", JobID: job.ID}))
	require.NoError(t, svc.UnsaveJob(ctx, &SaveJobRequest{UserID: "u1", JobID: job.ID}), "unsave is idempotent")

	list, err = svc.ListSavedJobs(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ===============================
// REPORTS
// ===============================

func TestFileReport(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewReportService(store, store, config.FeatureConfig{LeaderboardLimit: 10}, zap.NewNop())
	company := seedCompany(t, store, "Shady", 40, testNow)
	job := seedJob(t, store, company.ID, models.JobStatusSuspicious, testNow)

	tests := []struct {
		name      string
		req       *FileReportRequest
		wantField string
		notFound  bool
	}{
		{"missing reporter", &FileReportRequest{JobID: job.ID, Reason: "Spam or scam"}, "reporterId", false},
		{"unknown reason", &FileReportRequest{JobID: job.ID, ReporterID: "u1", Reason: "boring"}, "reason", false},
		{"too much evidence", &FileReportRequest{JobID: job.ID, ReporterID: "u1", Reason: "Other", Description: strPtr("x"), Evidence: make([]string, 11)}, "evidence", false},
		{"missing job", &FileReportRequest{JobID: "missing", ReporterID: "u1", Reason: "Spam or scam"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FileReport(ctx, tt.req)
			require.Error(t, err)
			if tt.notFound {
				assert.True(t, IsNotFoundError(err))
				return
			}
			require.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantField, GetFieldErrors(err)[0].Field)
		})
	}

	got, err := store.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReportCount, "failed reports write nothing")

	t.Run("valid report increments count", func(t *testing.T) {
		report, err := svc.FileReport(ctx, &FileReportRequest{
			JobID:      job.ID,
			ReporterID: "u1",
			Reason:     "requests PAYMENT or personal info",
			Evidence:   []string{"https://example.com/screenshot.png"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReasonRequestsPayment, report.Reason)
		assert.Equal(t, models.ReportStatusPending, report.Status)
		assert.Equal(t, testNow, report.ReportedAt)

		got, err := store.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ReportCount)
	})

	t.Run("other without description is accepted", func(t *testing.T) {
		report, err := svc.FileReport(ctx, &FileReportRequest{JobID: job.ID, ReporterID: "u1", Reason: "other", Description: strPtr("  ")})
		require.NoError(t, err)
		assert.Equal(t, models.ReasonOther, report.Reason)
		assert.Nil(t, report.Description)

		got, err := store.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ReportCount)
	})

	t.Run("concurrent reports keep count in sync", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.FileReport(ctx, &FileReportRequest{JobID: job.ID, ReporterID: "u2", Reason: "Spam or scam"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		reports, err := svc.ListReports(ctx)
		require.NoError(t, err)
		got, err := store.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, len(reports), got.ReportCount)
		assert.Equal(t, 27, got.ReportCount)
	})
}

func TestTopReporters(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store returns empty list", func(t *testing.T) {
		store := newTestStore()
		svc := NewReportService(store, store, config.FeatureConfig{}, zap.NewNop())
		entries, err := svc.TopReporters(ctx, 0)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("fallback flag restores demo entries", func(t *testing.T) {
		store := newTestStore()
		svc := NewReportService(store, store, config.FeatureConfig{LeaderboardFallback: true}, zap.NewNop())
		entries, err := svc.TopReporters(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "1", entries[0].UserID)
		assert.Equal(t, "Sarah Chen", entries[0].DisplayName)
		assert.Equal(t, 23, entries[0].ReportCount)
		assert.Equal(t, "2", entries[1].UserID)

		// callers must not be able to corrupt the shared list
		entries[0].ReportCount = 0
		again, _ := svc.TopReporters(ctx, 2)
		assert.Equal(t, 23, again[0].ReportCount)
	})

	t.Run("grouped sorted and tie broken by first seen", func(t *testing.T) {
		store := newTestStore()
		svc := NewReportService(store, store, config.FeatureConfig{LeaderboardFallback: true}, zap.NewNop())
		company := seedCompany(t, store, "Shady", 40, testNow)
		job := seedJob(t, store, company.ID, models.JobStatusPending, testNow)

		alice, err := store.CreateUser(ctx, &models.User{Username: "alice", Email: "alice@example.com", Password: "x"})
		require.NoError(t, err)

		// filing order: ghost, alice, bob, alice, bob, carol
		for _, reporter := range []string{"ghost", alice.ID, "bob", alice.ID, "bob", "carol"} {
			_, err := svc.FileReport(ctx, &FileReportRequest{JobID: job.ID, ReporterID: reporter, Reason: "Other", Description: strPtr("odd")})
			require.NoError(t, err)
		}

		entries, err := svc.TopReporters(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, alice.ID, entries[0].UserID)
		assert.Equal(t, "alice", entries[0].DisplayName)
		assert.Equal(t, 2, entries[0].ReportCount)
		assert.Equal(t, "bob", entries[1].UserID)
		assert.Equal(t, UnknownReporterName, entries[1].DisplayName)
		assert.Equal(t, "ghost", entries[2].UserID)
		assert.Equal(t, "carol", entries[3].UserID)

		limited, err := svc.TopReporters(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("limit is capped", func(t *testing.T) {
		store := newTestStore()
		svc := NewReportService(store, store, config.FeatureConfig{LeaderboardFallback: true}, zap.NewNop())
		entries, err := svc.TopReporters(ctx, 10_000)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

// ===============================
// STATS
// ===============================

func TestStatsService(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return testNow }

	t.Run("empty store", func(t *testing.T) {
		store := newTestStore()
		svc := NewStatsService(store, store, config.FeatureConfig{WeeklyStatsMode: config.WeeklyStatsRolling}, clock)
		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalJobs)
		assert.Equal(t, 100.0, stats.SuccessRate)
		assert.Equal(t, models.WeeklyStats{}, stats.WeeklyStats)
	})

	store := newTestStore()
	old := testNow.Add(-30 * 24 * time.Hour)
	recent := testNow.Add(-2 * 24 * time.Hour)

	trusted := seedCompany(t, store, "Trusted", 90, old)
	seedCompany(t, store, "Almost", 89, recent)
	seedCompany(t, store, "New", 95, recent)

	seedJob(t, store, trusted.ID, models.JobStatusVerified, recent)
	seedJob(t, store, trusted.ID, models.JobStatusVerified, old)
	seedJob(t, store, trusted.ID, models.JobStatusSuspicious, recent)
	seedJob(t, store, trusted.ID, models.JobStatusFake, old)
	seedJob(t, store, trusted.ID, models.JobStatusPending, recent)
	seedJob(t, store, trusted.ID, models.JobStatusPending, recent)

	t.Run("rolling window", func(t *testing.T) {
		svc := NewStatsService(store, store, config.FeatureConfig{WeeklyStatsMode: config.WeeklyStatsRolling}, clock)
		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, stats.TotalJobs)
		assert.Equal(t, 2, stats.VerifiedCompanies)
		assert.Equal(t, 2, stats.FakeJobsDetected)
		assert.Equal(t, 66.7, stats.SuccessRate)
		assert.Equal(t, models.WeeklyStats{JobsVerified: 1, FakeJobsDetected: 1, NewCompanies: 2}, stats.WeeklyStats)
	})

	t.Run("static placeholders", func(t *testing.T) {
		svc := NewStatsService(store, store, config.FeatureConfig{WeeklyStatsMode: config.WeeklyStatsStatic}, clock)
		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, stats.TotalJobs)
		assert.Equal(t, models.WeeklyStats{JobsVerified: 156, FakeJobsDetected: 8, NewCompanies: 34}, stats.WeeklyStats)
	})

	t.Run("reflects writes immediately", func(t *testing.T) {
		svc := NewStatsService(store, store, config.FeatureConfig{}, clock)
		seedJob(t, store, trusted.ID, models.JobStatusFake, recent)
		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, stats.TotalJobs)
		assert.Equal(t, 3, stats.FakeJobsDetected)
		assert.Equal(t, 57.1, stats.SuccessRate)
	})
}

// ===============================
// COMPANIES, COURSES, USERS
// ===============================

func TestCompanyCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCompanyService(store, zap.NewNop())

	rating := 4.2
	req := &CreateCompanyRequest{
		Name:        "Acme",
		Logo:        "https://acme.example/logo.png",
		Description: "Widgets and more",
		Website:     "https://acme.example",
		Size:        "medium",
		Rating:      &rating,
	}

	created, err := svc.CreateCompany(ctx, req)
	require.NoError(t, err)

	got, err := svc.GetCompany(ctx, created.ID)
	require.NoError(t, err)

	want := &models.Company{
		ID:           created.ID,
		Name:         req.Name,
		Logo:         req.Logo,
		Description:  req.Description,
		Website:      req.Website,
		Size:         models.CompanySizeMedium,
		Rating:       &rating,
		TrustScore:   85,
		VerifiedJobs: 0,
		ReportedJobs: 0,
		CreatedAt:    testNow,
	}
	assert.Equal(t, want, got)
}

func TestCompanyService(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCompanyService(store, zap.NewNop())

	created, err := svc.CreateCompany(ctx, &CreateCompanyRequest{Name: "Acme", Size: "Startup", Website: "https://acme.example"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTrustScore, created.TrustScore)
	assert.Equal(t, models.CompanySizeStartup, created.Size)
	assert.Zero(t, created.VerifiedJobs)

	_, err = svc.CreateCompany(ctx, &CreateCompanyRequest{Name: "Acme", Size: "huge"})
	assert.True(t, IsValidationError(err))

	_, err = svc.GetCompany(ctx, "missing")
	assert.True(t, IsNotFoundError(err))

	t.Run("partial update", func(t *testing.T) {
		updated, err := svc.UpdateCompany(ctx, &UpdateCompanyRequest{CompanyID: created.ID, TrustScore: intPtr(97), ReportedJobs: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 97, updated.TrustScore)
		assert.Equal(t, 2, updated.ReportedJobs)
		assert.Equal(t, 0, updated.VerifiedJobs)
	})

	t.Run("out of range score rejected", func(t *testing.T) {
		_, err := svc.UpdateCompany(ctx, &UpdateCompanyRequest{CompanyID: created.ID, TrustScore: intPtr(101)})
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty update rejected", func(t *testing.T) {
		_, err := svc.UpdateCompany(ctx, &UpdateCompanyRequest{CompanyID: created.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing company", func(t *testing.T) {
		_, err := svc.UpdateCompany(ctx, &UpdateCompanyRequest{CompanyID: "missing", TrustScore: intPtr(50)})
		assert.True(t, IsNotFoundError(err))
	})

	list, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCourseService(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	rating := func(v float64) *float64 { return &v }
	for _, c := range []*models.Course{
		{Title: "A", Category: "Web Development", Rating: rating(4.1)},
		{Title: "B", Category: "Data", Rating: rating(4.9)},
		{Title: "C", Category: "Web Development", Rating: rating(4.8)},
	} {
		_, err := store.CreateCourse(ctx, c)
		require.NoError(t, err)
	}

	all, err := svc.ListCourses(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "B", all[0].Title)

	web, err := svc.ListCourses(ctx, " Web Development ")
	require.NoError(t, err)
	require.Len(t, web, 2)
	assert.Equal(t, "C", web[0].Title)

	none, err := svc.ListCourses(ctx, "Cooking")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewUserService(store, zap.NewNop())

	user, err := svc.CreateUser(ctx, &CreateUserRequest{Username: "jane", Email: "Jane@Example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.Password)

	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "JANE", Email: "other@example.com", Password: "correct horse"})
	assert.True(t, IsConflictError(err))

	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "other", Email: "jane@example.com", Password: "correct horse"})
	assert.True(t, IsConflictError(err))

	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "x", Email: "bad", Password: "short"})
	require.True(t, IsValidationError(err))
	assert.Len(t, GetFieldErrors(err), 3)

	t.Run("avatar update", func(t *testing.T) {
		updated, err := svc.UpdateAvatar(ctx, &UpdateAvatarRequest{UserID: user.ID, Avatar: strPtr("https://cdn.example.com/a.png")})
		require.NoError(t, err)
		require.NotNil(t, updated.Avatar)

		cleared, err := svc.UpdateAvatar(ctx, &UpdateAvatarRequest{UserID: user.ID})
		require.NoError(t, err)
		assert.Nil(t, cleared.Avatar)

		_, err = svc.UpdateAvatar(ctx, &UpdateAvatarRequest{UserID: "missing"})
		assert.True(t, IsNotFoundError(err))
	})

	_, err = svc.GetUser(ctx, "missing")
	assert.True(t, IsNotFoundError(err))
}
