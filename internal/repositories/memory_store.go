// file: internal/repositories/memory_store.go
package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"jobtrust/internal/filters"
	"jobtrust/internal/models"
)

// MemoryStore keeps every entity in process memory. Maps give point
// lookups and the order slices preserve insertion order for listings.
// One RWMutex guards all state so compound commands stay atomic.
type MemoryStore struct {
	mu     sync.RWMutex
	logger *zap.Logger
	now    func() time.Time

	users      map[string]*models.User
	userOrder  []string
	companies  map[string]*models.Company
	companyIDs []string
	jobs       map[string]*models.Job
	jobOrder   []string
	saved      []*models.SavedJob
	reports    []*models.JobReport
	courses    []*models.Course
}

// MemoryStoreOption customises a MemoryStore
type MemoryStoreOption func(*MemoryStore)

// WithClock overrides the time source used for creation timestamps
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(logger *zap.Logger, opts ...MemoryStoreOption) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MemoryStore{
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		users:     make(map[string]*models.User),
		companies: make(map[string]*models.Company),
		jobs:      make(map[string]*models.Job),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Store = (*MemoryStore)(nil)

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}

func (s *MemoryStore) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t.UTC()
}

// ===============================
// USERS
// ===============================

// CreateUser inserts a user, rejecting duplicate usernames or emails
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) || strings.EqualFold(existing.Email, user.Email) {
			return nil, ErrDuplicate
		}
	}

	stored := user.Clone()
	stored.ID = newID()
	stored.CreatedAt = s.stamp(user.CreatedAt)

	s.users[stored.ID] = stored
	s.userOrder = append(s.userOrder, stored.ID)
	return stored.Clone(), nil
}

// GetUser returns the user or nil when absent
func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id].Clone(), nil
}

// GetUserByUsername looks a user up case-insensitively
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; strings.EqualFold(u.Username, username) {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

// GetUserByEmail looks a user up case-insensitively
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; strings.EqualFold(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id].Clone())
	}
	return out, nil
}

// UpdateUserAvatar replaces the avatar; avatar is the only mutable user field
func (s *MemoryStore) UpdateUserAvatar(ctx context.Context, id string, avatar *string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if avatar != nil {
		v := *avatar
		u.Avatar = &v
	} else {
		u.Avatar = nil
	}
	return u.Clone(), nil
}

// ===============================
// COMPANIES
// ===============================

// CreateCompany inserts a company. Trust score is clamped; counts start as given.
func (s *MemoryStore) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := company.Clone()
	stored.ID = newID()
	stored.TrustScore = models.ClampTrustScore(stored.TrustScore)
	stored.CreatedAt = s.stamp(company.CreatedAt)

	s.companies[stored.ID] = stored
	s.companyIDs = append(s.companyIDs, stored.ID)
	return stored.Clone(), nil
}

func (s *MemoryStore) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies[id].Clone(), nil
}

func (s *MemoryStore) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Company, 0, len(s.companyIDs))
	for _, id := range s.companyIDs {
		out = append(out, s.companies[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) UpdateCompanyTrustScore(ctx context.Context, id string, score int) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	c.TrustScore = models.ClampTrustScore(score)
	return c.Clone(), nil
}

func (s *MemoryStore) UpdateCompanyJobCounts(ctx context.Context, id string, verifiedJobs, reportedJobs int) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	c.VerifiedJobs = verifiedJobs
	c.ReportedJobs = reportedJobs
	return c.Clone(), nil
}

// ===============================
// JOBS
// ===============================

// CreateJob inserts a job. Status defaults to pending and the report
// count always starts at zero.
func (s *MemoryStore) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := job.Clone()
	stored.ID = newID()
	stored.ReportCount = 0
	stored.PostedAt = s.stamp(job.PostedAt)
	if stored.Status == "" {
		stored.Status = models.JobStatusPending
	}
	if stored.Skills == nil {
		stored.Skills = []string{}
	}

	s.jobs[stored.ID] = stored
	s.jobOrder = append(s.jobOrder, stored.ID)
	return stored.Clone(), nil
}

func (s *MemoryStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id].Clone(), nil
}

func (s *MemoryStore) GetJobWithCompany(ctx context.Context, id string) (*models.JobWithCompany, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	return &models.JobWithCompany{
		Job:     job.Clone(),
		Company: s.companies[job.CompanyID].Clone(),
	}, nil
}

// ListJobs runs the filter engine over a snapshot taken under the read lock
func (s *MemoryStore) ListJobs(ctx context.Context, f models.JobFilters) (filters.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*models.Job, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		jobs = append(jobs, s.jobs[id].Clone())
	}
	lookup := func(id string) *models.Company {
		return s.companies[id].Clone()
	}
	return filters.Apply(jobs, lookup, f), nil
}

func (s *MemoryStore) ListJobRecords(ctx context.Context) ([]*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Job, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		out = append(out, s.jobs[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	j.Status = status
	return j.Clone(), nil
}

func (s *MemoryStore) IncrementJobReports(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incrementLocked(id)
	return nil
}

func (s *MemoryStore) incrementLocked(id string) {
	if j, ok := s.jobs[id]; ok {
		j.ReportCount++
	}
}

// ResetJobReports zeroes the counter; report records are kept
func (s *MemoryStore) ResetJobReports(ctx context.Context, id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	j.ReportCount = 0
	return j.Clone(), nil
}

// ===============================
// SAVED JOBS
// ===============================

// SaveJob checks and inserts under one write lock
func (s *MemoryStore) SaveJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[jobID]; !ok {
		return nil, ErrNotFound
	}
	for _, sj := range s.saved {
		if sj.UserID == userID && sj.JobID == jobID {
			return nil, ErrDuplicate
		}
	}

	sj := &models.SavedJob{
		ID:      newID(),
		UserID:  userID,
		JobID:   jobID,
		SavedAt: s.now(),
	}
	s.saved = append(s.saved, sj)
	return sj.Clone(), nil
}

func (s *MemoryStore) UnsaveJob(ctx context.Context, userID, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sj := range s.saved {
		if sj.UserID == userID && sj.JobID == jobID {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) IsJobSaved(ctx context.Context, userID, jobID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sj := range s.saved {
		if sj.UserID == userID && sj.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ListSavedJobs(ctx context.Context, userID string) ([]*models.JobWithCompany, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.JobWithCompany, 0)
	for _, sj := range s.saved {
		if sj.UserID != userID {
			continue
		}
		job, ok := s.jobs[sj.JobID]
		if !ok {
			continue
		}
		company, ok := s.companies[job.CompanyID]
		if !ok {
			s.logger.Warn("Skipping saved job with missing company",
				zap.String("job_id", job.ID),
				zap.String("company_id", job.CompanyID),
			)
			continue
		}
		out = append(out, &models.JobWithCompany{Job: job.Clone(), Company: company.Clone()})
	}
	return out, nil
}

// ===============================
// REPORTS
// ===============================

// CreateJobReport holds the write lock across insert and increment
func (s *MemoryStore) CreateJobReport(ctx context.Context, report *models.JobReport) (*models.JobReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[report.JobID]; !ok {
		return nil, ErrNotFound
	}

	stored := report.Clone()
	stored.ID = newID()
	stored.ReportedAt = s.stamp(report.ReportedAt)
	if stored.Status == "" {
		stored.Status = models.ReportStatusPending
	}
	if stored.Evidence == nil {
		stored.Evidence = []string{}
	}

	s.reports = append(s.reports, stored)
	s.incrementLocked(stored.JobID)
	return stored.Clone(), nil
}

func (s *MemoryStore) ListJobReports(ctx context.Context) ([]*models.JobReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.JobReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r.Clone())
	}
	return out, nil
}

// ===============================
// COURSES
// ===============================

func (s *MemoryStore) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := course.Clone()
	stored.ID = newID()
	stored.CreatedAt = s.stamp(course.CreatedAt)
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	s.courses = append(s.courses, stored)
	return stored.Clone(), nil
}

func (s *MemoryStore) ListCourses(ctx context.Context, category string) ([]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if category != "" && c.Category != category {
			continue
		}
		out = append(out, c.Clone())
	}
	sortCoursesByRating(out)
	return out, nil
}

func sortCoursesByRating(courses []*models.Course) {
	rating := func(c *models.Course) float64 {
		if c.Rating == nil {
			return 0
		}
		return *c.Rating
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return rating(courses[i]) > rating(courses[j])
	})
}

// ===============================
// LIFECYCLE
// ===============================

func (s *MemoryStore) Health(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() error {
	return nil
}
