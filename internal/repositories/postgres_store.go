// file: internal/repositories/postgres_store.go
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"jobtrust/internal/database"
	"jobtrust/internal/filters"
	"jobtrust/internal/models"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// PostgresStore implements Store on top of the database manager.
// Listings order by the seq column to keep insertion order stable.
type PostgresStore struct {
	db     *database.Manager
	logger *zap.Logger
	now    func() time.Time
}

// NewPostgresStore creates a Postgres backed store
func NewPostgresStore(db *database.Manager, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ Store = (*PostgresStore)(nil)

func (s *PostgresStore) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t.UTC()
}

// mapError converts driver constraint errors into store sentinels
func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return ErrDuplicate
		case pqForeignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ===============================
// USERS
// ===============================

const userColumns = `id, username, password, email, avatar, created_at`

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Avatar, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	u := user.Clone()
	u.ID = newID()
	u.CreatedAt = s.stamp(user.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.Password, u.Email, u.Avatar, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", mapError(err))
	}
	return u, nil
}

func (s *PostgresStore) getUserWhere(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.getUserWhere(ctx, `id = $1`, id)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUserWhere(ctx, `LOWER(username) = LOWER($1)`, username)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUserWhere(ctx, `LOWER(email) = LOWER($1)`, email)
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	out := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateUserAvatar(ctx context.Context, id string, avatar *string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE users SET avatar = $2 WHERE id = $1 RETURNING `+userColumns, id, avatar)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return u, nil
}

// ===============================
// COMPANIES
// ===============================

const companyColumns = `id, name, logo, description, website, size, rating, trust_score, verified_jobs, reported_jobs, created_at`

func scanCompany(row rowScanner) (*models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.Logo, &c.Description, &c.Website, &c.Size,
		&c.Rating, &c.TrustScore, &c.VerifiedJobs, &c.ReportedJobs, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	c := company.Clone()
	c.ID = newID()
	c.TrustScore = models.ClampTrustScore(c.TrustScore)
	c.CreatedAt = s.stamp(company.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (`+companyColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Logo, c.Description, c.Website, c.Size, c.Rating,
		c.TrustScore, c.VerifiedJobs, c.ReportedJobs, c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", mapError(err))
	}
	return c, nil
}

func (s *PostgresStore) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) updateCompany(ctx context.Context, set string, args ...interface{}) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRowContext(ctx,
		`UPDATE companies SET `+set+` WHERE id = $1 RETURNING `+companyColumns, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) UpdateCompanyTrustScore(ctx context.Context, id string, score int) (*models.Company, error) {
	return s.updateCompany(ctx, `trust_score = $2`, id, models.ClampTrustScore(score))
}

func (s *PostgresStore) UpdateCompanyJobCounts(ctx context.Context, id string, verifiedJobs, reportedJobs int) (*models.Company, error) {
	return s.updateCompany(ctx, `verified_jobs = $2, reported_jobs = $3`, id, verifiedJobs, reportedJobs)
}

// ===============================
// JOBS
// ===============================

const jobColumns = `j.id, j.title, j.description, j.company_id, j.location, j.salary, j.job_type,
	j.experience_level, j.skills, j.status, j.report_count, j.posted_at, j.external_url`

func jobDest(j *models.Job) []interface{} {
	return []interface{}{
		&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.Location, &j.Salary, &j.JobType,
		&j.ExperienceLevel, pq.Array(&j.Skills), &j.Status, &j.ReportCount, &j.PostedAt, &j.ExternalURL,
	}
}

func scanJob(row rowScanner) (*models.Job, error) {
	var j models.Job
	if err := row.Scan(jobDest(&j)...); err != nil {
		return nil, err
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	return &j, nil
}

// nullableCompany holds a LEFT JOINed company row
type nullableCompany struct {
	ID           sql.NullString
	Name         sql.NullString
	Logo         sql.NullString
	Description  sql.NullString
	Website      sql.NullString
	Size         sql.NullString
	Rating       sql.NullFloat64
	TrustScore   sql.NullInt64
	VerifiedJobs sql.NullInt64
	ReportedJobs sql.NullInt64
	CreatedAt    sql.NullTime
}

func (n *nullableCompany) dest() []interface{} {
	return []interface{}{
		&n.ID, &n.Name, &n.Logo, &n.Description, &n.Website, &n.Size,
		&n.Rating, &n.TrustScore, &n.VerifiedJobs, &n.ReportedJobs, &n.CreatedAt,
	}
}

func (n *nullableCompany) company() *models.Company {
	if !n.ID.Valid {
		return nil
	}
	c := &models.Company{
		ID:           n.ID.String,
		Name:         n.Name.String,
		Logo:         n.Logo.String,
		Description:  n.Description.String,
		Website:      n.Website.String,
		Size:         models.CompanySize(n.Size.String),
		TrustScore:   int(n.TrustScore.Int64),
		VerifiedJobs: int(n.VerifiedJobs.Int64),
		ReportedJobs: int(n.ReportedJobs.Int64),
		CreatedAt:    n.CreatedAt.Time,
	}
	if n.Rating.Valid {
		r := n.Rating.Float64
		c.Rating = &r
	}
	return c
}

const joinedCompanyColumns = `c.id, c.name, c.logo, c.description, c.website, c.size,
	c.rating, c.trust_score, c.verified_jobs, c.reported_jobs, c.created_at`

func scanJoined(row rowScanner) (*models.JobWithCompany, error) {
	var j models.Job
	var nc nullableCompany
	if err := row.Scan(append(jobDest(&j), nc.dest()...)...); err != nil {
		return nil, err
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	return &models.JobWithCompany{Job: &j, Company: nc.company()}, nil
}

func (s *PostgresStore) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	j := job.Clone()
	j.ID = newID()
	j.ReportCount = 0
	j.PostedAt = s.stamp(job.PostedAt)
	if j.Status == "" {
		j.Status = models.JobStatusPending
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, title, description, company_id, location, salary, job_type,
			experience_level, skills, status, report_count, posted_at, external_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.Title, j.Description, j.CompanyID, j.Location, j.Salary, j.JobType,
		j.ExperienceLevel, pq.Array(j.Skills), j.Status, j.ReportCount, j.PostedAt, j.ExternalURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", mapError(err))
	}
	return j, nil
}

func (s *PostgresStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	j, err := scanJob(s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func (s *PostgresStore) GetJobWithCompany(ctx context.Context, id string) (*models.JobWithCompany, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+jobColumns+`, `+joinedCompanyColumns+`
		FROM jobs j LEFT JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, id)
	jwc, err := scanJoined(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return jwc, nil
}

// ListJobs translates the filters into SQL with the same semantics as
// filters.Apply: substring matches are case-insensitive, sets use ANY and
// company predicates fail when the company is missing.
func (s *PostgresStore) ListJobs(ctx context.Context, f models.JobFilters) (filters.Result, error) {
	where, args := buildJobWhere(f)
	query := `SELECT ` + jobColumns + `, ` + joinedCompanyColumns + `
		FROM jobs j LEFT JOIN companies c ON c.id = j.company_id`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY j.posted_at DESC, j.seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return filters.Result{}, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	res := filters.Result{Jobs: make([]*models.JobWithCompany, 0)}
	for rows.Next() {
		jwc, err := scanJoined(rows)
		if err != nil {
			return filters.Result{}, fmt.Errorf("failed to scan job: %w", err)
		}
		if jwc.Company == nil {
			res.Orphaned = append(res.Orphaned, jwc.ID)
			continue
		}
		res.Jobs = append(res.Jobs, jwc)
	}
	return res, rows.Err()
}

func buildJobWhere(f models.JobFilters) (string, []interface{}) {
	var conds []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg(strings.ToLower(f.Search))
		conds = append(conds, fmt.Sprintf(
			`(STRPOS(LOWER(j.title), %[1]s) > 0 OR STRPOS(LOWER(j.description), %[1]s) > 0
			OR EXISTS (SELECT 1 FROM UNNEST(j.skills) AS skill WHERE STRPOS(LOWER(skill), %[1]s) > 0))`, p))
	}
	if f.Location != "" {
		conds = append(conds, fmt.Sprintf(`STRPOS(LOWER(j.location), %s) > 0`, arg(strings.ToLower(f.Location))))
	}
	if len(f.JobTypes) > 0 {
		conds = append(conds, fmt.Sprintf(`j.job_type = ANY(%s)`, arg(pq.Array(toStrings(f.JobTypes)))))
	}
	if len(f.ExperienceLevels) > 0 {
		conds = append(conds, fmt.Sprintf(`j.experience_level = ANY(%s)`, arg(pq.Array(toStrings(f.ExperienceLevels)))))
	}
	if len(f.Statuses) > 0 {
		conds = append(conds, fmt.Sprintf(`j.status = ANY(%s)`, arg(pq.Array(toStrings(f.Statuses)))))
	}
	if f.TrustScoreMin != nil {
		conds = append(conds, fmt.Sprintf(`c.trust_score >= %s`, arg(*f.TrustScoreMin)))
	}
	if len(f.CompanySizes) > 0 {
		conds = append(conds, fmt.Sprintf(`c.size = ANY(%s)`, arg(pq.Array(toStrings(f.CompanySizes)))))
	}

	return strings.Join(conds, " AND "), args
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func (s *PostgresStore) ListJobRecords(ctx context.Context) ([]*models.Job, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs j ORDER BY j.seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *PostgresStore) updateJob(ctx context.Context, set string, args ...interface{}) (*models.Job, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE jobs j SET `+set+` WHERE j.id = $1 RETURNING `+jobColumns, args...)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return j, nil
}

func (s *PostgresStore) UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error) {
	return s.updateJob(ctx, `status = $2`, id, status)
}

func (s *PostgresStore) IncrementJobReports(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE jobs SET report_count = report_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to increment report count: %w", err)
	}
	return nil
}

func (s *PostgresStore) ResetJobReports(ctx context.Context, id string) (*models.Job, error) {
	return s.updateJob(ctx, `report_count = 0`, id)
}

// ===============================
// SAVED JOBS
// ===============================

// SaveJob relies on the unique (user_id, job_id) constraint and the job
// foreign key, so the check and insert are one statement.
func (s *PostgresStore) SaveJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	sj := &models.SavedJob{
		ID:      newID(),
		UserID:  userID,
		JobID:   jobID,
		SavedAt: s.now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saved_jobs (id, user_id, job_id, saved_at) VALUES ($1, $2, $3, $4)`,
		sj.ID, sj.UserID, sj.JobID, sj.SavedAt,
	)
	if err != nil {
		mapped := mapError(err)
		if errors.Is(mapped, ErrDuplicate) || errors.Is(mapped, ErrNotFound) {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return sj, nil
}

func (s *PostgresStore) UnsaveJob(ctx context.Context, userID, jobID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return fmt.Errorf("failed to unsave job: %w", err)
	}
	return nil
}

func (s *PostgresStore) IsJobSaved(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`, userID, jobID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check saved job: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) ListSavedJobs(ctx context.Context, userID string) ([]*models.JobWithCompany, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+`, `+joinedCompanyColumns+`
		FROM saved_jobs sj
		JOIN jobs j ON j.id = sj.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE sj.user_id = $1
		ORDER BY sj.seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	out := make([]*models.JobWithCompany, 0)
	for rows.Next() {
		jwc, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved job: %w", err)
		}
		out = append(out, jwc)
	}
	return out, rows.Err()
}

// ===============================
// REPORTS
// ===============================

const reportColumns = `id, job_id, reporter_id, reason, description, evidence, status, reported_at`

func scanReport(row rowScanner) (*models.JobReport, error) {
	var r models.JobReport
	err := row.Scan(&r.ID, &r.JobID, &r.ReporterID, &r.Reason, &r.Description,
		pq.Array(&r.Evidence), &r.Status, &r.ReportedAt)
	if err != nil {
		return nil, err
	}
	if r.Evidence == nil {
		r.Evidence = []string{}
	}
	return &r, nil
}

// CreateJobReport locks the job row, inserts the report and bumps the
// counter in one transaction
func (s *PostgresStore) CreateJobReport(ctx context.Context, report *models.JobReport) (*models.JobReport, error) {
	r := report.Clone()
	r.ID = newID()
	r.ReportedAt = s.stamp(report.ReportedAt)
	if r.Status == "" {
		r.Status = models.ReportStatusPending
	}
	if r.Evidence == nil {
		r.Evidence = []string{}
	}

	err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		var locked string
		err := tx.QueryRowContext(ctx, `SELECT id FROM jobs WHERE id = $1 FOR UPDATE`, r.JobID).Scan(&locked)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock job: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO job_reports (`+reportColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			r.ID, r.JobID, r.ReporterID, r.Reason, r.Description, pq.Array(r.Evidence), r.Status, r.ReportedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert report: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `UPDATE jobs SET report_count = report_count + 1 WHERE id = $1`, r.JobID); err != nil {
			return fmt.Errorf("failed to increment report count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *PostgresStore) ListJobReports(ctx context.Context) ([]*models.JobReport, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+reportColumns+` FROM job_reports ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	out := make([]*models.JobReport, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ===============================
// COURSES
// ===============================

const courseColumns = `id, title, description, thumbnail, category, price, is_free, rating, instructor, duration, tags, created_at`

func (s *PostgresStore) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	c := course.Clone()
	c.ID = newID()
	c.CreatedAt = s.stamp(course.CreatedAt)
	if c.Tags == nil {
		c.Tags = []string{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO courses (`+courseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Title, c.Description, c.Thumbnail, c.Category, c.Price, c.IsFree,
		c.Rating, c.Instructor, c.Duration, pq.Array(c.Tags), c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", mapError(err))
	}
	return c, nil
}

func (s *PostgresStore) ListCourses(ctx context.Context, category string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY COALESCE(rating, 0) DESC, seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Course, 0)
	for rows.Next() {
		var c models.Course
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Thumbnail, &c.Category, &c.Price,
			&c.IsFree, &c.Rating, &c.Instructor, &c.Duration, pq.Array(&c.Tags), &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		if c.Tags == nil {
			c.Tags = []string{}
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// ===============================
// LIFECYCLE
// ===============================

func (s *PostgresStore) Health(ctx context.Context) error {
	status := s.db.Health(ctx)
	if status.Status == database.StatusUnhealthy {
		return fmt.Errorf("database unhealthy: %s", status.Error)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
