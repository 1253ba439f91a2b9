// file: internal/services/saved_job_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
	"jobtrust/internal/validation"
)

type savedJobService struct {
	repo   repositories.SavedJobRepository
	logger *zap.Logger
}

// NewSavedJobService creates a new saved job service
func NewSavedJobService(repo repositories.SavedJobRepository, logger *zap.Logger) SavedJobService {
	return &savedJobService{repo: repo, logger: logger}
}

func (s *savedJobService) ListSavedJobs(ctx context.Context, userID string) ([]*models.JobWithCompany, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewDetailedValidationError("Request validation failed", []FieldError{{
			Field:   "userId",
			Message: "is required",
			Code:    "REQUIRED",
		}})
	}

	jobs, err := s.repo.ListSavedJobs(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to list saved jobs", err)
	}
	if jobs == nil {
		jobs = []*models.JobWithCompany{}
	}
	return jobs, nil
}

// SaveJob bookmarks a job once per user
func (s *savedJobService) SaveJob(ctx context.Context, req *SaveJobRequest) (*models.SavedJob, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}

	saved, err := s.repo.SaveJob(ctx, req.UserID, req.JobID)
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return nil, NewConflictError("job already saved", "ALREADY_SAVED").
			WithDetail("jobId", req.JobID)
	case errors.Is(err, repositories.ErrNotFound):
		return nil, EntityNotFoundError("job", req.JobID)
	case err != nil:
		return nil, NewInternalError("failed to save job", err)
	}

	s.logger.Info("Job saved",
		zap.String("user_id", req.UserID),
		zap.String("job_id", req.JobID),
	)
	return saved, nil
}

// UnsaveJob removes a bookmark. Removing a missing bookmark succeeds.
func (s *savedJobService) UnsaveJob(ctx context.Context, req *SaveJobRequest) error {
	if err := validation.ValidateStruct(req); err != nil {
		return FromValidatorError(err)
	}

	if err := s.repo.UnsaveJob(ctx, req.UserID, req.JobID); err != nil {
		return NewInternalError("failed to unsave job", err)
	}

	s.logger.Debug("Job unsaved",
		zap.String("user_id", req.UserID),
		zap.String("job_id", req.JobID),
	)
	return nil
}
