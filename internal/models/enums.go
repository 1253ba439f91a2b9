package models

import "strings"

// CompanySize buckets companies by headcount
type CompanySize string

const (
	CompanySizeStartup CompanySize = "startup"
	CompanySizeMedium  CompanySize = "medium"
	CompanySizeLarge   CompanySize = "large"
)

// JobType is the employment arrangement of a job
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
	JobTypeHybrid     JobType = "hybrid"
	JobTypeOnSite     JobType = "on-site"
)

// ExperienceLevel is the seniority a job asks for
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// JobStatus is the moderation state of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusVerified   JobStatus = "verified"
	JobStatusSuspicious JobStatus = "suspicious"
	JobStatusFake       JobStatus = "fake"
)

// IsFlagged reports whether the status counts as a detected fake listing
func (s JobStatus) IsFlagged() bool {
	return s == JobStatusSuspicious || s == JobStatusFake
}

// ReportStatus is the review state of a job report
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusVerified  ReportStatus = "verified"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// ReportReason is one of the fixed reasons a user can pick when reporting
type ReportReason string

const (
	ReasonFakeCompany       ReportReason = "Suspected fake company"
	ReasonRequestsPayment   ReportReason = "Requests payment or personal info"
	ReasonUnrealisticSalary ReportReason = "Unrealistic salary/benefits"
	ReasonPoorCommunication ReportReason = "Poor communication/grammar"
	ReasonOffPlatform       ReportReason = "Requests immediate contact outside platform"
	ReasonSuspiciousOrFake  ReportReason = "Suspicious or fake"
	ReasonInaccurate        ReportReason = "Inaccurate information"
	ReasonOffensive         ReportReason = "Offensive content"
	ReasonSpamOrScam        ReportReason = "Spam or scam"
	ReasonOther             ReportReason = "Other"
)

const (
	// DefaultTrustScore is assigned to newly created companies
	DefaultTrustScore = 85
	// MinTrustScore and MaxTrustScore bound every trust score write
	MinTrustScore = 0
	MaxTrustScore = 100
	// VerifiedCompanyThreshold is the trust score at which a company counts as verified
	VerifiedCompanyThreshold = 90
)

var (
	companySizes     = []CompanySize{CompanySizeStartup, CompanySizeMedium, CompanySizeLarge}
	jobTypes         = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship, JobTypeHybrid, JobTypeOnSite}
	experienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive}
	jobStatuses      = []JobStatus{JobStatusPending, JobStatusVerified, JobStatusSuspicious, JobStatusFake}
	reportReasons    = []ReportReason{
		ReasonFakeCompany, ReasonRequestsPayment, ReasonUnrealisticSalary, ReasonPoorCommunication,
		ReasonOffPlatform, ReasonSuspiciousOrFake, ReasonInaccurate, ReasonOffensive, ReasonSpamOrScam,
		ReasonOther,
	}
)

// ParseCompanySize returns the size for s, ignoring case and surrounding space
func ParseCompanySize(s string) (CompanySize, bool) {
	return parseEnum(s, companySizes)
}

// ParseJobType returns the job type for s, ignoring case and surrounding space
func ParseJobType(s string) (JobType, bool) {
	return parseEnum(s, jobTypes)
}

// ParseExperienceLevel returns the experience level for s
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	return parseEnum(s, experienceLevels)
}

// ParseJobStatus returns the job status for s
func ParseJobStatus(s string) (JobStatus, bool) {
	return parseEnum(s, jobStatuses)
}

// ParseReportReason returns the canonical reason matching s case-insensitively
func ParseReportReason(s string) (ReportReason, bool) {
	return parseEnum(s, reportReasons)
}

// ReportReasons returns the accepted report reasons in display order
func ReportReasons() []ReportReason {
	out := make([]ReportReason, len(reportReasons))
	copy(out, reportReasons)
	return out
}

// ClampTrustScore bounds a trust score to [MinTrustScore, MaxTrustScore]
func ClampTrustScore(score int) int {
	if score < MinTrustScore {
		return MinTrustScore
	}
	if score > MaxTrustScore {
		return MaxTrustScore
	}
	return score
}

func parseEnum[T ~string](s string, allowed []T) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range allowed {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
