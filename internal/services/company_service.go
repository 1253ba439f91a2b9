// file: internal/services/company_service.go
package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
	"jobtrust/internal/validation"
)

type companyService struct {
	repo   repositories.CompanyRepository
	logger *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repositories.CompanyRepository, logger *zap.Logger) CompanyService {
	return &companyService{repo: repo, logger: logger}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, NewInternalError("failed to list companies", err)
	}
	if companies == nil {
		companies = []*models.Company{}
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("company ID is required", nil)
	}

	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, NewInternalError("failed to get company", err)
	}
	if company == nil {
		return nil, EntityNotFoundError("company", id)
	}
	return company, nil
}

// CreateCompany registers a company with the default trust score and zero
// job counters unless a score is supplied.
func (s *companyService) CreateCompany(ctx context.Context, req *CreateCompanyRequest) (*models.Company, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}

	size, _ := models.ParseCompanySize(req.Size)
	score := models.DefaultTrustScore
	if req.TrustScore != nil {
		score = *req.TrustScore
	}

	company, err := s.repo.CreateCompany(ctx, &models.Company{
		Name:        strings.TrimSpace(req.Name),
		Logo:        req.Logo,
		Description: req.Description,
		Website:     req.Website,
		Size:        size,
		Rating:      req.Rating,
		TrustScore:  models.ClampTrustScore(score),
	})
	if err != nil {
		return nil, NewInternalError("failed to create company", err)
	}

	s.logger.Info("Company created",
		zap.String("company_id", company.ID),
		zap.Int("trust_score", company.TrustScore),
	)
	return company, nil
}

// UpdateCompany applies the trust score and job counters that are set
func (s *companyService) UpdateCompany(ctx context.Context, req *UpdateCompanyRequest) (*models.Company, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}
	if !req.HasChanges() {
		return nil, NewValidationError("no fields to update", nil)
	}

	company, err := s.repo.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, NewInternalError("failed to get company", err)
	}
	if company == nil {
		return nil, EntityNotFoundError("company", req.CompanyID)
	}

	if req.TrustScore != nil {
		company, err = s.repo.UpdateCompanyTrustScore(ctx, req.CompanyID, *req.TrustScore)
		if err != nil {
			return nil, NewInternalError("failed to update trust score", err)
		}
	}

	if req.VerifiedJobs != nil || req.ReportedJobs != nil {
		verified, reported := company.VerifiedJobs, company.ReportedJobs
		if req.VerifiedJobs != nil {
			verified = *req.VerifiedJobs
		}
		if req.ReportedJobs != nil {
			reported = *req.ReportedJobs
		}
		company, err = s.repo.UpdateCompanyJobCounts(ctx, req.CompanyID, verified, reported)
		if err != nil {
			return nil, NewInternalError("failed to update job counts", err)
		}
	}

	if company == nil {
		return nil, EntityNotFoundError("company", req.CompanyID)
	}

	s.logger.Info("Company updated",
		zap.String("company_id", company.ID),
		zap.Int("trust_score", company.TrustScore),
		zap.Int("verified_jobs", company.VerifiedJobs),
		zap.Int("reported_jobs", company.ReportedJobs),
	)
	return company, nil
}
