// file: internal/services/types.go
package services

import (
	"time"
)

// ===============================
// JOB REQUEST TYPES
// ===============================

// CreateJobRequest carries a new job posting
type CreateJobRequest struct {
	Title           string     `json:"title" validate:"required,min=3,max=200"`
	Description     string     `json:"description" validate:"required,max=10000"`
	CompanyID       string     `json:"companyId" validate:"required"`
	Location        string     `json:"location" validate:"required,max=200"`
	Salary          *string    `json:"salary,omitempty" validate:"omitempty,max=100"`
	JobType         string     `json:"jobType" validate:"required,job_type"`
	ExperienceLevel string     `json:"experienceLevel" validate:"required,experience_level"`
	Skills          []string   `json:"skills,omitempty" validate:"omitempty,max=50,dive,required,max=50"`
	Status          string     `json:"status,omitempty" validate:"omitempty,job_status"`
	ExternalURL     *string    `json:"externalUrl,omitempty" validate:"omitempty,url"`
	PostedAt        *time.Time `json:"-"`
}

// UpdateJobStatusRequest moves a job through moderation
type UpdateJobStatusRequest struct {
	JobID  string `json:"-" validate:"required"`
	Status string `json:"status" validate:"required,job_status"`
}

// SaveJobRequest identifies a bookmark
type SaveJobRequest struct {
	UserID string `json:"userId" validate:"required"`
	JobID  string `json:"jobId" validate:"required"`
}

// ===============================
// REPORT REQUEST TYPES
// ===============================

// FileReportRequest carries a user's report against a job
type FileReportRequest struct {
	JobID       string   `json:"jobId" validate:"required"`
	ReporterID  string   `json:"reporterId" validate:"required"`
	Reason      string   `json:"reason" validate:"required,report_reason"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Evidence    []string `json:"evidence,omitempty" validate:"omitempty,max=10,dive,required,max=500"`
}

// ===============================
// COMPANY REQUEST TYPES
// ===============================

// CreateCompanyRequest carries a new company
type CreateCompanyRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Logo        string   `json:"logo" validate:"max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Size        string   `json:"size" validate:"required,company_size"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	TrustScore  *int     `json:"trustScore,omitempty" validate:"omitempty,min=0,max=100"`
}

// UpdateCompanyRequest changes trust metadata. Nil fields are left untouched.
type UpdateCompanyRequest struct {
	CompanyID    string `json:"-" validate:"required"`
	TrustScore   *int   `json:"trustScore,omitempty" validate:"omitempty,min=0,max=100"`
	VerifiedJobs *int   `json:"verifiedJobs,omitempty" validate:"omitempty,min=0"`
	ReportedJobs *int   `json:"reportedJobs,omitempty" validate:"omitempty,min=0"`
}

// HasChanges reports whether the request touches any field
func (r *UpdateCompanyRequest) HasChanges() bool {
	return r.TrustScore != nil || r.VerifiedJobs != nil || r.ReportedJobs != nil
}

// ===============================
// USER REQUEST TYPES
// ===============================

// CreateUserRequest carries signup data
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// UpdateAvatarRequest replaces or clears a user's avatar
type UpdateAvatarRequest struct {
	UserID string  `json:"-" validate:"required"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}
