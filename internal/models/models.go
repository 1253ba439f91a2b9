// file: internal/models/models.go
package models

import (
	"time"
)

// ===============================
// USER MODELS
// ===============================

// User represents a platform account
type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	Email     string    `json:"email" db:"email"`
	Avatar    *string   `json:"avatar,omitempty" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ===============================
// COMPANY MODELS
// ===============================

// Company represents an employer that owns job postings
type Company struct {
	ID           string      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Logo         string      `json:"logo" db:"logo"`
	Description  string      `json:"description" db:"description"`
	Website      string      `json:"website" db:"website"`
	Size         CompanySize `json:"size" db:"size"`
	Rating       *float64    `json:"rating,omitempty" db:"rating"`
	TrustScore   int         `json:"trustScore" db:"trust_score"`
	VerifiedJobs int         `json:"verifiedJobs" db:"verified_jobs"`
	ReportedJobs int         `json:"reportedJobs" db:"reported_jobs"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
}

// ===============================
// JOB MODELS
// ===============================

// Job represents a single job posting
type Job struct {
	ID              string          `json:"id" db:"id"`
	Title           string          `json:"title" db:"title"`
	Description     string          `json:"description" db:"description"`
	CompanyID       string          `json:"companyId" db:"company_id"`
	Location        string          `json:"location" db:"location"`
	Salary          *string         `json:"salary,omitempty" db:"salary"`
	JobType         JobType         `json:"jobType" db:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" db:"experience_level"`
	Skills          []string        `json:"skills" db:"skills"`
	Status          JobStatus       `json:"status" db:"status"`
	ReportCount     int             `json:"reportCount" db:"report_count"`
	PostedAt        time.Time       `json:"postedAt" db:"posted_at"`
	ExternalURL     *string         `json:"externalUrl,omitempty" db:"external_url"`
}

// JobWithCompany is a job joined with its owning company for read purposes
type JobWithCompany struct {
	*Job
	Company *Company `json:"company"`
}

// SavedJob is a user's bookmark of a job
type SavedJob struct {
	ID      string    `json:"id" db:"id"`
	UserID  string    `json:"userId" db:"user_id"`
	JobID   string    `json:"jobId" db:"job_id"`
	SavedAt time.Time `json:"savedAt" db:"saved_at"`
}

// ===============================
// REPORT MODELS
// ===============================

// JobReport is a user-submitted flag against a job
type JobReport struct {
	ID          string       `json:"id" db:"id"`
	JobID       string       `json:"jobId" db:"job_id"`
	ReporterID  string       `json:"reporterId" db:"reporter_id"`
	Reason      ReportReason `json:"reason" db:"reason"`
	Description *string      `json:"description,omitempty" db:"description"`
	Evidence    []string     `json:"evidence" db:"evidence"`
	Status      ReportStatus `json:"status" db:"status"`
	ReportedAt  time.Time    `json:"reportedAt" db:"reported_at"`
}

// LeaderboardEntry is one row of the top reporters view
type LeaderboardEntry struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	ReportCount int    `json:"reportCount"`
}

// ===============================
// COURSE MODELS
// ===============================

// Course represents a learning resource listed next to jobs
type Course struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Thumbnail   string    `json:"thumbnail" db:"thumbnail"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	IsFree      bool      `json:"isFree" db:"is_free"`
	Rating      *float64  `json:"rating,omitempty" db:"rating"`
	Instructor  *string   `json:"instructor,omitempty" db:"instructor"`
	Duration    *string   `json:"duration,omitempty" db:"duration"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ===============================
// STATS MODELS
// ===============================

// WeeklyStats holds the seven-day deltas shown on the dashboard
type WeeklyStats struct {
	JobsVerified     int `json:"jobsVerified"`
	FakeJobsDetected int `json:"fakeJobsDetected"`
	NewCompanies     int `json:"newCompanies"`
}

// StatsSummary holds platform-wide counters
type StatsSummary struct {
	TotalJobs         int         `json:"totalJobs"`
	VerifiedCompanies int         `json:"verifiedCompanies"`
	FakeJobsDetected  int         `json:"fakeJobsDetected"`
	SuccessRate       float64     `json:"successRate"`
	WeeklyStats       WeeklyStats `json:"weeklyStats"`
}

// ===============================
// FILTERS
// ===============================

// JobFilters is the normalized filter set for job listings.
// Empty slices and nil pointers mean "no constraint".
type JobFilters struct {
	Search           string
	Location         string
	JobTypes         []JobType
	ExperienceLevels []ExperienceLevel
	Statuses         []JobStatus
	TrustScoreMin    *int
	CompanySizes     []CompanySize
}

// IsEmpty reports whether no filter is active
func (f JobFilters) IsEmpty() bool {
	return f.Search == "" &&
		f.Location == "" &&
		len(f.JobTypes) == 0 &&
		len(f.ExperienceLevels) == 0 &&
		len(f.Statuses) == 0 &&
		f.TrustScoreMin == nil &&
		len(f.CompanySizes) == 0
}
