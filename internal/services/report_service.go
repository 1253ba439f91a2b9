// file: internal/services/report_service.go
package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"jobtrust/internal/config"
	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
	"jobtrust/internal/validation"
)

// DefaultLeaderboardLimit is used when the caller passes a non-positive limit
const DefaultLeaderboardLimit = 10

// UnknownReporterName is shown for reporters without an account
const UnknownReporterName = "Unknown"

// fallbackLeaderboard is the demo leaderboard served on an empty store
// when the fallback feature is switched on.
var fallbackLeaderboard = []models.LeaderboardEntry{
	{UserID: "1", DisplayName: "Sarah Chen", ReportCount: 23},
	{UserID: "2", DisplayName: "Mike Johnson", ReportCount: 18},
	{UserID: "3", DisplayName: "Alex Rivera", ReportCount: 15},
}

type reportService struct {
	reports  repositories.ReportRepository
	users    repositories.UserRepository
	features config.FeatureConfig
	logger   *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(
	reports repositories.ReportRepository,
	users repositories.UserRepository,
	features config.FeatureConfig,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		reports:  reports,
		users:    users,
		features: features,
		logger:   logger,
	}
}

// FileReport validates the report and records it together with the job's
// counter increment. Nothing is written when the job does not exist.
func (s *reportService) FileReport(ctx context.Context, req *FileReportRequest) (*models.JobReport, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, FromValidatorError(err)
	}

	reason, _ := models.ParseReportReason(req.Reason)

	report := &models.JobReport{
		JobID:       req.JobID,
		ReporterID:  req.ReporterID,
		Reason:      reason,
		Description: trimOptional(req.Description),
		Evidence:    cleanStrings(req.Evidence),
		Status:      models.ReportStatusPending,
	}

	created, err := s.reports.CreateJobReport(ctx, report)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, EntityNotFoundError("job", req.JobID)
	}
	if err != nil {
		s.logger.Error("Failed to file job report",
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return nil, NewInternalError("failed to file report", err)
	}

	s.logger.Info("Job report filed",
		zap.String("report_id", created.ID),
		zap.String("job_id", created.JobID),
		zap.String("reporter_id", created.ReporterID),
		zap.String("reason", string(created.Reason)),
	)
	return created, nil
}

func (s *reportService) ListReports(ctx context.Context) ([]*models.JobReport, error) {
	reports, err := s.reports.ListJobReports(ctx)
	if err != nil {
		return nil, NewInternalError("failed to list reports", err)
	}
	if reports == nil {
		reports = []*models.JobReport{}
	}
	return reports, nil
}

// TopReporters groups reports by reporter in filing order, then sorts by
// count with first-seen order breaking ties.
func (s *reportService) TopReporters(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	limit = s.normalizeLimit(limit)

	reports, err := s.reports.ListJobReports(ctx)
	if err != nil {
		return nil, NewInternalError("failed to list reports", err)
	}

	if len(reports) == 0 {
		if s.features.LeaderboardFallback {
			return fallbackEntries(limit), nil
		}
		return []*models.LeaderboardEntry{}, nil
	}

	entries := make([]*models.LeaderboardEntry, 0)
	index := make(map[string]*models.LeaderboardEntry)
	for _, r := range reports {
		e, ok := index[r.ReporterID]
		if !ok {
			e = &models.LeaderboardEntry{UserID: r.ReporterID}
			index[r.ReporterID] = e
			entries = append(entries, e)
		}
		e.ReportCount++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ReportCount > entries[j].ReportCount
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	for _, e := range entries {
		e.DisplayName = s.displayName(ctx, e.UserID)
	}
	return entries, nil
}

func (s *reportService) displayName(ctx context.Context, userID string) string {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to resolve reporter name",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return UnknownReporterName
	}
	if user == nil {
		return UnknownReporterName
	}
	return user.Username
}

func (s *reportService) normalizeLimit(limit int) int {
	if limit <= 0 {
		limit = s.features.LeaderboardLimit
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > config.MaxLeaderboardLimit {
		limit = config.MaxLeaderboardLimit
	}
	return limit
}

func fallbackEntries(limit int) []*models.LeaderboardEntry {
	n := len(fallbackLeaderboard)
	if limit < n {
		n = limit
	}
	out := make([]*models.LeaderboardEntry, 0, n)
	for i := 0; i < n; i++ {
		e := fallbackLeaderboard[i]
		out = append(out, &e)
	}
	return out
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
