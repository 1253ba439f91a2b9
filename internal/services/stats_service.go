// file: internal/services/stats_service.go
package services

import (
	"context"
	"math"
	"time"

	"jobtrust/internal/config"
	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
)

// WeeklyWindow is the span covered by rolling weekly stats
const WeeklyWindow = 7 * 24 * time.Hour

// staticWeeklyStats are the dashboard placeholders served in static mode
var staticWeeklyStats = models.WeeklyStats{
	JobsVerified:     156,
	FakeJobsDetected: 8,
	NewCompanies:     34,
}

type statsService struct {
	jobs      repositories.JobRepository
	companies repositories.CompanyRepository
	mode      string
	now       func() time.Time
}

// NewStatsService creates a new stats service. now may be nil.
func NewStatsService(
	jobs repositories.JobRepository,
	companies repositories.CompanyRepository,
	features config.FeatureConfig,
	now func() time.Time,
) StatsService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &statsService{
		jobs:      jobs,
		companies: companies,
		mode:      features.WeeklyStatsMode,
		now:       now,
	}
}

// GetStats computes every counter from the current store state
func (s *statsService) GetStats(ctx context.Context) (*models.StatsSummary, error) {
	jobs, err := s.jobs.ListJobRecords(ctx)
	if err != nil {
		return nil, NewInternalError("failed to load jobs", err)
	}
	companies, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return nil, NewInternalError("failed to load companies", err)
	}

	summary := &models.StatsSummary{TotalJobs: len(jobs)}
	for _, c := range companies {
		if c.TrustScore >= models.VerifiedCompanyThreshold {
			summary.VerifiedCompanies++
		}
	}
	for _, j := range jobs {
		if j.Status.IsFlagged() {
			summary.FakeJobsDetected++
		}
	}
	summary.SuccessRate = successRate(summary.TotalJobs, summary.FakeJobsDetected)

	if s.mode == config.WeeklyStatsStatic {
		summary.WeeklyStats = staticWeeklyStats
	} else {
		summary.WeeklyStats = rollingWeeklyStats(jobs, companies, s.now().Add(-WeeklyWindow))
	}
	return summary, nil
}

// successRate is the share of unflagged jobs, one decimal, 100 when empty
func successRate(total, flagged int) float64 {
	if total == 0 {
		return 100
	}
	rate := 100 * float64(total-flagged) / float64(total)
	return math.Round(rate*10) / 10
}

func rollingWeeklyStats(jobs []*models.Job, companies []*models.Company, since time.Time) models.WeeklyStats {
	var ws models.WeeklyStats
	for _, j := range jobs {
		if j.PostedAt.Before(since) {
			continue
		}
		switch {
		case j.Status == models.JobStatusVerified:
			ws.JobsVerified++
		case j.Status.IsFlagged():
			ws.FakeJobsDetected++
		}
	}
	for _, c := range companies {
		if !c.CreatedAt.Before(since) {
			ws.NewCompanies++
		}
	}
	return ws
}
