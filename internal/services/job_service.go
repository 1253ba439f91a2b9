// file: internal/services/job_service.go
package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
	"jobtrust/internal/validation"
)

type jobService struct {
	jobs      repositories.JobRepository
	companies repositories.CompanyRepository
	logger    *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(jobs repositories.JobRepository, companies repositories.CompanyRepository, logger *zap.Logger) JobService {
	return &jobService{
		jobs:      jobs,
		companies: companies,
		logger:    logger,
	}
}

// ListJobs returns the filtered listing joined with companies, newest first.
// Jobs whose company is missing are dropped and logged.
func (s *jobService) ListJobs(ctx context.Context, f models.JobFilters) ([]*models.JobWithCompany, error) {
	res, err := s.jobs.ListJobs(ctx, f)
	if err != nil {
		return nil, NewInternalError("failed to list jobs", err)
	}

	if len(res.Orphaned) > 0 {
		s.logger.Warn("Dropped jobs with missing company",
			zap.Strings("job_ids", res.Orphaned),
		)
	}

	if res.Jobs == nil {
		return []*models.JobWithCompany{}, nil
	}
	return res.Jobs, nil
}

// GetJob returns the job with its company. The company is nil when the
// owner no longer exists.
func (s *jobService) GetJob(ctx context.Context, id string) (*models.JobWithCompany, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("job ID is required", nil)
	}

	job, err := s.jobs.GetJobWithCompany(ctx, id)
	if err != nil {
		return nil, NewInternalError("failed to get job", err)
	}
	if job == nil {
		return nil, EntityNotFoundError("job", id)
	}
	if job.Company == nil {
		s.logger.Warn("Job references missing company",
			zap.String("job_id", id),
			zap.String("company_id", job.CompanyID),
		)
	}
	return job, nil
}

// CreateJob validates the posting and its owning company before inserting
func (s *jobService) CreateJob(ctx context.Context, req *CreateJobRequest) (*models.Job, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}

	company, err := s.companies.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, NewInternalError("failed to check company", err)
	}
	if company == nil {
		return nil, NewDetailedValidationError("Request validation failed", []FieldError{{
			Field:   "companyId",
			Message: "company does not exist",
			Code:    "NOT_FOUND",
		}})
	}

	jobType, _ := models.ParseJobType(req.JobType)
	level, _ := models.ParseExperienceLevel(req.ExperienceLevel)
	status := models.JobStatusPending
	if req.Status != "" {
		status, _ = models.ParseJobStatus(req.Status)
	}

	job := &models.Job{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		CompanyID:       company.ID,
		Location:        strings.TrimSpace(req.Location),
		Salary:          req.Salary,
		JobType:         jobType,
		ExperienceLevel: level,
		Skills:          cleanStrings(req.Skills),
		Status:          status,
		ExternalURL:     req.ExternalURL,
	}
	if req.PostedAt != nil {
		job.PostedAt = *req.PostedAt
	}

	created, err := s.jobs.CreateJob(ctx, job)
	if err != nil {
		return nil, NewInternalError("failed to create job", err)
	}

	s.logger.Info("Job created",
		zap.String("job_id", created.ID),
		zap.String("company_id", created.CompanyID),
	)
	return created, nil
}

func (s *jobService) UpdateJobStatus(ctx context.Context, req *UpdateJobStatusRequest) (*models.Job, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}
	status, _ := models.ParseJobStatus(req.Status)

	job, err := s.jobs.UpdateJobStatus(ctx, req.JobID, status)
	if err != nil {
		return nil, NewInternalError("failed to update job status", err)
	}
	if job == nil {
		return nil, EntityNotFoundError("job", req.JobID)
	}

	s.logger.Info("Job status updated",
		zap.String("job_id", job.ID),
		zap.String("status", string(job.Status)),
	)
	return job, nil
}

// ResetReportCount zeroes the job's counter. Report records are kept.
func (s *jobService) ResetReportCount(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.ResetJobReports(ctx, id)
	if err != nil {
		return nil, NewInternalError("failed to reset report count", err)
	}
	if job == nil {
		return nil, EntityNotFoundError("job", id)
	}

	s.logger.Info("Job report count reset", zap.String("job_id", id))
	return job, nil
}

// cleanStrings trims entries and drops blanks and duplicates, keeping order
func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
