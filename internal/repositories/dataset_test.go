package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobtrust/internal/config"
	"jobtrust/internal/models"
)

const companiesCSV = "\ufeffcompany_name,company_logo,company_url\n" +
	"Acme Remote,https://acme.example/logo.png,https://acme.example\n" +
	",https://nameless.example/logo.png,https://nameless.example\n" +
	"acme remote,,https://dupe.example\n"

const jobsJSON = `[
  {"position": "Go Engineer", "company": "Acme Remote", "location": "", "tags": "go, postgres,kubernetes",
   "salary_min": "90000", "salary_max": "120000", "date": "2025-05-30T08:00:00Z", "url": "https://remoteok.example/1"},
  {"title": "Support Agent", "company_name": "Brand New Co", "location": "Worldwide", "skills": ["support", "zendesk"],
   "date": 1748505600, "job_type": "part-time", "experience_level": "entry"},
  {"position": "No Company"}
]`

const coursesCSV = "Title,Description,Category,Price,Rating,Instructor,Tags\n" +
	"\"Data Structures in Go\",Learn DSA,programming,\"$1,299\",4.7/5,Ada,\"go,dsa\"\n" +
	"Free Intro,Start here,,0,,,\n"

func writeDataset(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestImportDir(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	dir := writeDataset(t, map[string]string{
		"remoteok_companies.csv": companiesCSV,
		"jobs.json":              jobsJSON,
		"gfg_courses.csv":        coursesCSV,
	})

	result, err := ImportDir(ctx, s, dir, testNow, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Companies: 2, Jobs: 2, Courses: 2, Skipped: 2}, result)

	t.Run("companies get defaults and are deduplicated by name", func(t *testing.T) {
		companies, err := s.ListCompanies(ctx)
		require.NoError(t, err)
		require.Len(t, companies, 2)

		acme := companies[0]
		assert.Equal(t, "Acme Remote", acme.Name)
		assert.Equal(t, "https://acme.example/logo.png", acme.Logo)
		assert.Equal(t, "https://acme.example", acme.Website)
		assert.Equal(t, models.DefaultTrustScore, acme.TrustScore)
		assert.Equal(t, models.CompanySizeStartup, acme.Size)

		assert.Equal(t, "Brand New Co", companies[1].Name, "job rows create missing companies")
	})

	t.Run("jobs are mapped from export columns", func(t *testing.T) {
		res, err := s.ListJobs(ctx, models.JobFilters{})
		require.NoError(t, err)
		require.Len(t, res.Jobs, 2)
		assert.Empty(t, res.Orphaned)

		goJob := res.Jobs[0]
		assert.Equal(t, "Go Engineer", goJob.Title)
		assert.Equal(t, "Acme Remote", goJob.Company.Name)
		assert.Equal(t, "Remote", goJob.Location)
		assert.Equal(t, []string{"go", "postgres", "kubernetes"}, goJob.Skills)
		require.NotNil(t, goJob.Salary)
		assert.Equal(t, "$90k - $120k", *goJob.Salary)
		assert.Equal(t, models.JobTypeRemote, goJob.JobType)
		assert.Equal(t, models.ExperienceMid, goJob.ExperienceLevel)
		assert.Equal(t, models.JobStatusPending, goJob.Status)
		assert.Equal(t, time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC), goJob.PostedAt)
		require.NotNil(t, goJob.ExternalURL)
		assert.Equal(t, "https://remoteok.example/1", *goJob.ExternalURL)

		support := res.Jobs[1]
		assert.Equal(t, "Support Agent", support.Title)
		assert.Equal(t, []string{"support", "zendesk"}, support.Skills)
		assert.Equal(t, models.JobTypePartTime, support.JobType)
		assert.Equal(t, models.ExperienceEntry, support.ExperienceLevel)
		assert.Equal(t, time.Unix(1748505600, 0).UTC(), support.PostedAt)
		assert.Nil(t, support.Salary)
		assert.Zero(t, support.ReportCount)
	})

	t.Run("courses parse loose numbers", func(t *testing.T) {
		courses, err := s.ListCourses(ctx, "")
		require.NoError(t, err)
		require.Len(t, courses, 2)

		dsa := courses[0]
		assert.Equal(t, "Data Structures in Go", dsa.Title)
		assert.Equal(t, "programming", dsa.Category)
		assert.Equal(t, 1299.0, dsa.Price)
		assert.False(t, dsa.IsFree)
		require.NotNil(t, dsa.Rating)
		assert.Equal(t, 4.7, *dsa.Rating)
		require.NotNil(t, dsa.Instructor)
		assert.Equal(t, "Ada", *dsa.Instructor)
		assert.Equal(t, []string{"go", "dsa"}, dsa.Tags)

		intro := courses[1]
		assert.Equal(t, "General", intro.Category)
		assert.True(t, intro.IsFree)
		assert.Nil(t, intro.Rating)
		assert.Empty(t, intro.Tags)
	})

	t.Run("second import writes nothing", func(t *testing.T) {
		again, err := ImportDir(ctx, s, dir, testNow, zap.NewNop())
		require.NoError(t, err)
		assert.Zero(t, again.Companies)
		assert.Zero(t, again.Jobs)
		assert.Zero(t, again.Courses)
	})
}

func TestImportDirReusesSeededCompanies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	require.NoError(t, Seed(ctx, s, testNow, zap.NewNop()))

	dir := writeDataset(t, map[string]string{
		"jobs.csv": "title,company,location\nSite Reliability Engineer,google,Zurich\n",
	})

	result, err := ImportDir(ctx, s, dir, testNow, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, result.Companies)
	assert.Equal(t, 1, result.Jobs)

	res, err := s.ListJobs(ctx, models.JobFilters{Search: "reliability"})
	require.NoError(t, err)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Google", res.Jobs[0].Company.Name)
	assert.Equal(t, 98, res.Jobs[0].Company.TrustScore)
}

func TestImportDirErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty directory imports nothing", func(t *testing.T) {
		result, err := ImportDir(ctx, newTestStore(), t.TempDir(), testNow, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{}, result)
	})

	t.Run("malformed json fails", func(t *testing.T) {
		dir := writeDataset(t, map[string]string{"companies.json": `{"company_name": "not an array"}`})
		_, err := ImportDir(ctx, newTestStore(), dir, testNow, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestNewStoreImportsDataDir(t *testing.T) {
	dir := writeDataset(t, map[string]string{"companies.csv": companiesCSV})
	cfg := &config.StoreConfig{Driver: config.StoreDriverMemory, SeedDataDir: dir}

	store, err := NewStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	companies, err := store.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}
