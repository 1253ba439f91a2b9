// file: internal/services/interface.go
package services

import (
	"context"

	"jobtrust/internal/models"
)

// ===============================
// CORE SERVICE INTERFACES
// ===============================

// JobService defines job listing and moderation logic
type JobService interface {
	ListJobs(ctx context.Context, f models.JobFilters) ([]*models.JobWithCompany, error)
	GetJob(ctx context.Context, id string) (*models.JobWithCompany, error)
	CreateJob(ctx context.Context, req *CreateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, req *UpdateJobStatusRequest) (*models.Job, error)
	ResetReportCount(ctx context.Context, id string) (*models.Job, error)
}

// SavedJobService defines bookmark logic
type SavedJobService interface {
	ListSavedJobs(ctx context.Context, userID string) ([]*models.JobWithCompany, error)
	SaveJob(ctx context.Context, req *SaveJobRequest) (*models.SavedJob, error)
	UnsaveJob(ctx context.Context, req *SaveJobRequest) error
}

// ReportService records job reports and derives the reporter leaderboard
type ReportService interface {
	FileReport(ctx context.Context, req *FileReportRequest) (*models.JobReport, error)
	ListReports(ctx context.Context) ([]*models.JobReport, error)
	TopReporters(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// CompanyService defines company catalogue and trust management
type CompanyService interface {
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	CreateCompany(ctx context.Context, req *CreateCompanyRequest) (*models.Company, error)
	UpdateCompany(ctx context.Context, req *UpdateCompanyRequest) (*models.Company, error)
}

// CourseService lists learning resources
type CourseService interface {
	ListCourses(ctx context.Context, category string) ([]*models.Course, error)
}

// UserService defines account logic
type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateAvatar(ctx context.Context, req *UpdateAvatarRequest) (*models.User, error)
}

// StatsService computes platform-wide counters on demand
type StatsService interface {
	GetStats(ctx context.Context) (*models.StatsSummary, error)
}
