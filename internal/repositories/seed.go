package repositories

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jobtrust/internal/models"
)

const day = 24 * time.Hour

type seedUser struct {
	username string
	email    string
	password string
}

var seedUsers = []seedUser{
	{"johndoe", "john@example.com", "password"},
	{"sarah.chen", "sarah.chen@example.com", "password"},
	{"mike.johnson", "mike.johnson@example.com", "password"},
}

// Seed loads the demo data set. It does nothing when the store already
// holds companies, so it is safe to call on every start.
func Seed(ctx context.Context, store Store, now time.Time, logger *zap.Logger) error {
	existing, err := store.ListCompanies(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Store already populated, skipping seed", zap.Int("companies", len(existing)))
		return nil
	}

	users := make(map[string]*models.User, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		u, err := store.CreateUser(ctx, &models.User{
			Username:  su.username,
			Email:     su.email,
			Password:  string(hash),
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.username, err)
		}
		users[su.username] = u
	}

	google, err := store.CreateCompany(ctx, &models.Company{
		Name:         "Google",
		Logo:         "fab fa-google",
		Description:  "Search engine and technology company",
		Website:      "https://google.com",
		Size:         models.CompanySizeLarge,
		Rating:       float(4.8),
		TrustScore:   98,
		VerifiedJobs: 245,
		ReportedJobs: 2,
		CreatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	microsoft, err := store.CreateCompany(ctx, &models.Company{
		Name:         "Microsoft",
		Logo:         "fab fa-microsoft",
		Description:  "Technology corporation",
		Website:      "https://microsoft.com",
		Size:         models.CompanySizeLarge,
		Rating:       float(4.6),
		TrustScore:   95,
		VerifiedJobs: 189,
		ReportedJobs: 1,
		CreatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	techCorp, err := store.CreateCompany(ctx, &models.Company{
		Name:         "TechCorp Solutions",
		Logo:         "fas fa-building",
		Description:  "Software development company",
		Website:      "https://techcorp.com",
		Size:         models.CompanySizeMedium,
		Rating:       float(3.2),
		TrustScore:   62,
		VerifiedJobs: 12,
		ReportedJobs: 8,
		CreatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	jobs := []*models.Job{
		{
			Title:           "Senior Frontend Developer",
			Description:     "We're looking for a passionate Senior Frontend Developer to join our growing team. You'll work on cutting-edge projects using React, TypeScript, and modern web technologies.",
			CompanyID:       google.ID,
			Location:        "San Francisco, CA",
			Salary:          str("$120k - $160k"),
			JobType:         models.JobTypeRemote,
			ExperienceLevel: models.ExperienceSenior,
			Skills:          []string{"React", "TypeScript", "Node.js"},
			Status:          models.JobStatusVerified,
			PostedAt:        now.Add(-2 * day),
			ExternalURL:     str("https://careers.google.com/jobs/1"),
		},
		{
			Title:           "Data Scientist",
			Description:     "Join our Data Science team to work on machine learning models and analytics that impact millions of users worldwide. Looking for someone with strong Python and ML experience.",
			CompanyID:       microsoft.ID,
			Location:        "Seattle, WA",
			Salary:          str("$130k - $170k"),
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			Skills:          []string{"Python", "ML", "TensorFlow"},
			Status:          models.JobStatusPending,
			PostedAt:        now.Add(-3 * day),
			ExternalURL:     str("https://careers.microsoft.com/jobs/1"),
		},
		{
			Title:           "Marketing Manager",
			Description:     "Excellent opportunity for marketing manager. High salary, immediate start. Contact us directly for fast hiring process.",
			CompanyID:       techCorp.ID,
			Location:        "New York, NY",
			Salary:          str("$90k - $110k"),
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			Skills:          []string{"Digital Marketing", "SEO"},
			Status:          models.JobStatusSuspicious,
			PostedAt:        now.Add(-1 * day),
			ExternalURL:     str("https://techcorp.com/jobs/1"),
		},
	}

	var suspicious *models.Job
	for _, j := range jobs {
		created, err := store.CreateJob(ctx, j)
		if err != nil {
			return fmt.Errorf("failed to seed job %q: %w", j.Title, err)
		}
		if created.Status == models.JobStatusSuspicious {
			suspicious = created
		}
	}

	// The suspicious listing starts with three reports filed through the
	// same path as user reports, so its count matches its report records.
	seedReports := []struct {
		reporter string
		reason   models.ReportReason
		offset   time.Duration
	}{
		{"sarah.chen", models.ReasonRequestsPayment, -20 * time.Hour},
		{"mike.johnson", models.ReasonUnrealisticSalary, -18 * time.Hour},
		{"sarah.chen", models.ReasonOffPlatform, -12 * time.Hour},
	}
	for _, sr := range seedReports {
		_, err := store.CreateJobReport(ctx, &models.JobReport{
			JobID:      suspicious.ID,
			ReporterID: users[sr.reporter].ID,
			Reason:     sr.reason,
			Status:     models.ReportStatusPending,
			ReportedAt: now.Add(sr.offset),
		})
		if err != nil {
			return fmt.Errorf("failed to seed report: %w", err)
		}
	}

	courses := []*models.Course{
		{
			Title:       "React Masterclass",
			Description: "Learn modern React development from scratch",
			Thumbnail:   "fas fa-code",
			Category:    "web-dev",
			Price:       0,
			IsFree:      true,
			Rating:      float(4.8),
			Instructor:  str("John Smith"),
			Duration:    str("40 hours"),
			Tags:        []string{"React", "JavaScript", "Frontend"},
			CreatedAt:   now,
		},
		{
			Title:       "Data Science Bootcamp",
			Description: "Python, ML, and data analysis",
			Thumbnail:   "fas fa-chart-bar",
			Category:    "data-science",
			Price:       299.00,
			IsFree:      false,
			Rating:      float(4.9),
			Instructor:  str("Sarah Johnson"),
			Duration:    str("120 hours"),
			Tags:        []string{"Python", "Machine Learning", "Data Analysis"},
			CreatedAt:   now,
		},
	}
	for _, c := range courses {
		if _, err := store.CreateCourse(ctx, c); err != nil {
			return fmt.Errorf("failed to seed course %q: %w", c.Title, err)
		}
	}

	logger.Info("Demo data seeded",
		zap.Int("users", len(seedUsers)),
		zap.Int("companies", 3),
		zap.Int("jobs", len(jobs)),
		zap.Int("reports", len(seedReports)),
		zap.Int("courses", len(courses)),
	)
	return nil
}

func str(s string) *string { return &s }

func float(f float64) *float64 { return &f }
