// file: internal/repositories/interfaces.go
package repositories

import (
	"context"
	"errors"

	"jobtrust/internal/filters"
	"jobtrust/internal/models"
)

// Sentinel errors returned by store commands. A plain lookup that finds
// nothing returns (nil, nil) instead of ErrNotFound.
var (
	// ErrDuplicate means a uniqueness invariant would be violated
	ErrDuplicate = errors.New("duplicate entity")
	// ErrNotFound means a command referenced a parent entity that does not exist
	ErrNotFound = errors.New("referenced entity not found")
)

// ===============================
// REPOSITORY INTERFACES
// ===============================

// UserRepository defines the contract for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserAvatar(ctx context.Context, id string, avatar *string) (*models.User, error)
}

// CompanyRepository defines the contract for company data operations
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	// ListCompanies returns companies in creation order
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	// UpdateCompanyTrustScore clamps score to [0,100]
	UpdateCompanyTrustScore(ctx context.Context, id string, score int) (*models.Company, error)
	UpdateCompanyJobCounts(ctx context.Context, id string, verifiedJobs, reportedJobs int) (*models.Company, error)
}

// JobRepository defines the contract for job data operations
type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	// GetJobWithCompany returns the job with a nil Company when the owner is missing
	GetJobWithCompany(ctx context.Context, id string) (*models.JobWithCompany, error)
	// ListJobs applies f and returns joined jobs, most recent first
	ListJobs(ctx context.Context, f models.JobFilters) (filters.Result, error)
	// ListJobRecords returns every job in insertion order without joining
	ListJobRecords(ctx context.Context) ([]*models.Job, error)
	UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error)
	// IncrementJobReports is a no-op when the job does not exist
	IncrementJobReports(ctx context.Context, id string) error
	ResetJobReports(ctx context.Context, id string) (*models.Job, error)
}

// SavedJobRepository defines the contract for bookmarks
type SavedJobRepository interface {
	// SaveJob returns ErrNotFound for a missing job and ErrDuplicate for a second save
	SaveJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error)
	// UnsaveJob succeeds when nothing was saved
	UnsaveJob(ctx context.Context, userID, jobID string) error
	IsJobSaved(ctx context.Context, userID, jobID string) (bool, error)
	// ListSavedJobs returns the user's saved jobs in save order, skipping orphans
	ListSavedJobs(ctx context.Context, userID string) ([]*models.JobWithCompany, error)
}

// ReportRepository defines the contract for job reports
type ReportRepository interface {
	// CreateJobReport inserts the report and increments the job's report
	// count as one unit. A missing job yields ErrNotFound and writes nothing.
	CreateJobReport(ctx context.Context, report *models.JobReport) (*models.JobReport, error)
	// ListJobReports returns reports in filing order
	ListJobReports(ctx context.Context) ([]*models.JobReport, error)
}

// CourseRepository defines the contract for courses
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	// ListCourses filters by exact category when non-empty, sorted by rating descending
	ListCourses(ctx context.Context, category string) ([]*models.Course, error)
}

// Store is the complete entity store
type Store interface {
	UserRepository
	CompanyRepository
	JobRepository
	SavedJobRepository
	ReportRepository
	CourseRepository

	Health(ctx context.Context) error
	Close() error
}
