package docs

import (
	"jobtrust/internal/models"
	"jobtrust/internal/services"
)

// Envelope is the standard response wrapper for all API responses
type Envelope struct {
	Success   bool   `json:"success" example:"true"`
	RequestID string `json:"request_id" example:"6f1c2a9e-4b7d-4c8e-9a51-0d3b2f7e8c11"`
	Timestamp int64  `json:"timestamp" example:"1717243200"`
	Version   string `json:"version" example:"v1"`
}

// CollectionMeta accompanies list responses
type CollectionMeta struct {
	Count int `json:"count" example:"3"`
}

// FieldError describes one invalid input field
type FieldError struct {
	Field   string `json:"field" example:"reason"`
	Message string `json:"message" example:"reason must be one of the listed report reasons"`
	Code    string `json:"code" example:"INVALID_VALUE"`
}

// ErrorBody is the error member of a failed response
type ErrorBody struct {
	Type    string       `json:"type" example:"VALIDATION_ERROR"`
	Message string       `json:"message" example:"Validation failed"`
	Code    string       `json:"code,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// ErrorResponse is returned for every 4xx and 5xx
type ErrorResponse struct {
	Envelope
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

type JobResponse struct {
	Envelope
	Data models.JobWithCompany `json:"data"`
}

type JobListResponse struct {
	Envelope
	Data []models.JobWithCompany `json:"data"`
	Meta CollectionMeta          `json:"meta"`
}

type SavedJobResponse struct {
	Envelope
	Data models.SavedJob `json:"data"`
}

type ReportResponse struct {
	Envelope
	Data models.JobReport `json:"data"`
}

type ReportListResponse struct {
	Envelope
	Data []models.JobReport `json:"data"`
	Meta CollectionMeta     `json:"meta"`
}

type LeaderboardResponse struct {
	Envelope
	Data []models.LeaderboardEntry `json:"data"`
	Meta CollectionMeta            `json:"meta"`
}

type CompanyResponse struct {
	Envelope
	Data models.Company `json:"data"`
}

type CompanyListResponse struct {
	Envelope
	Data []models.Company `json:"data"`
	Meta CollectionMeta   `json:"meta"`
}

type CourseListResponse struct {
	Envelope
	Data []models.Course `json:"data"`
	Meta CollectionMeta  `json:"meta"`
}

type StatsResponse struct {
	Envelope
	Data models.StatsSummary `json:"data"`
}

type UserResponse struct {
	Envelope
	Data models.User `json:"data"`
}

type HealthResponse struct {
	Envelope
	Data services.ServiceHealth `json:"data"`
}
