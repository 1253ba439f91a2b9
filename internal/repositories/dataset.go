// file: internal/repositories/dataset.go
package repositories

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"go.uber.org/zap"

	"jobtrust/internal/models"
)

// Dataset file names tried in order inside the import directory. The
// remoteok_* and gfg_* names are the raw scraper exports.
var (
	companyFiles = []string{"companies.json", "companies.csv", "remoteok_companies.csv"}
	jobFiles     = []string{"jobs.json", "jobs.csv", "remoteok_jobs.csv"}
	courseFiles  = []string{"courses.json", "courses.csv", "gfg_courses.json", "gfg_courses.csv"}
)

// Header aliases per dataset, mapped onto the row struct tags
var (
	companyAliases = map[string]string{
		"name":    "company_name",
		"company": "company_name",
		"logo":    "company_logo",
		"website": "company_url",
		"url":     "company_url",
	}
	jobAliases = map[string]string{
		"title":        "position",
		"company_name": "company",
		"posted_at":    "date",
		"date_posted":  "date",
		"skills":       "tags",
		"apply_url":    "url",
		"link":         "url",
	}
	courseAliases = map[string]string{
		"title":        "course",
		"course_name":  "course",
		"course_title": "course",
		"image":        "thumbnail",
		"image_url":    "thumbnail",
	}
)

// ImportResult counts what an import wrote
type ImportResult struct {
	Companies int
	Jobs      int
	Courses   int
	Skipped   int
}

type companyRow struct {
	Name        string `schema:"company_name"`
	Logo        string `schema:"company_logo"`
	Website     string `schema:"company_url"`
	Description string `schema:"description"`
	Size        string `schema:"size"`
	TrustScore  string `schema:"trust_score"`
}

type jobRow struct {
	Title           string `schema:"position"`
	Company         string `schema:"company"`
	CompanyLogo     string `schema:"company_logo"`
	Description     string `schema:"description"`
	Location        string `schema:"location"`
	Tags            string `schema:"tags"`
	Salary          string `schema:"salary"`
	SalaryMin       string `schema:"salary_min"`
	SalaryMax       string `schema:"salary_max"`
	Date            string `schema:"date"`
	URL             string `schema:"url"`
	JobType         string `schema:"job_type"`
	ExperienceLevel string `schema:"experience_level"`
	Status          string `schema:"status"`
}

type courseRow struct {
	Title       string `schema:"course"`
	Description string `schema:"description"`
	Thumbnail   string `schema:"thumbnail"`
	Category    string `schema:"category"`
	Price       string `schema:"price"`
	IsFree      string `schema:"is_free"`
	Rating      string `schema:"rating"`
	Instructor  string `schema:"instructor"`
	Duration    string `schema:"duration"`
	Tags        string `schema:"tags"`
}

// ImportDir loads companies, jobs and courses from the dataset files in dir.
// Missing datasets are skipped. Rows that already exist (same company name,
// same job title at the same company, same course title) are not written
// twice, so the import can run on every start.
func ImportDir(ctx context.Context, store Store, dir string, now time.Time, logger *zap.Logger) (*ImportResult, error) {
	imp := &importer{
		store:     store,
		now:       now,
		logger:    logger,
		decoder:   newRowDecoder(),
		companies: make(map[string]*models.Company),
		result:    &ImportResult{},
	}

	if err := imp.indexExisting(ctx); err != nil {
		return nil, err
	}

	steps := []struct {
		files   []string
		aliases map[string]string
		load    func(context.Context, []map[string][]string) error
	}{
		{companyFiles, companyAliases, imp.importCompanies},
		{jobFiles, jobAliases, imp.importJobs},
		{courseFiles, courseAliases, imp.importCourses},
	}
	for _, step := range steps {
		path, ok := firstExisting(dir, step.files)
		if !ok {
			continue
		}
		records, err := readRecords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for _, rec := range records {
			applyAliases(rec, step.aliases)
		}
		if err := step.load(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", path, err)
		}
		logger.Debug("Dataset file imported", zap.String("path", path), zap.Int("rows", len(records)))
	}

	logger.Info("Dataset import completed",
		zap.String("dir", dir),
		zap.Int("companies", imp.result.Companies),
		zap.Int("jobs", imp.result.Jobs),
		zap.Int("courses", imp.result.Courses),
		zap.Int("skipped", imp.result.Skipped),
	)
	return imp.result, nil
}

type importer struct {
	store   Store
	now     time.Time
	logger  *zap.Logger
	decoder *schema.Decoder

	companies map[string]*models.Company // lowercased name
	jobKeys   map[string]bool            // companyID + lowercased title
	courses   map[string]bool            // lowercased title
	result    *ImportResult
}

func (imp *importer) indexExisting(ctx context.Context) error {
	companies, err := imp.store.ListCompanies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}
	for _, c := range companies {
		imp.companies[strings.ToLower(c.Name)] = c
	}

	jobs, err := imp.store.ListJobRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}
	imp.jobKeys = make(map[string]bool, len(jobs))
	for _, j := range jobs {
		imp.jobKeys[jobKey(j.CompanyID, j.Title)] = true
	}

	courses, err := imp.store.ListCourses(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list courses: %w", err)
	}
	imp.courses = make(map[string]bool, len(courses))
	for _, c := range courses {
		imp.courses[strings.ToLower(c.Title)] = true
	}
	return nil
}

func (imp *importer) importCompanies(ctx context.Context, records []map[string][]string) error {
	for i, rec := range records {
		var row companyRow
		if err := imp.decoder.Decode(&row, rec); err != nil {
			imp.skip("company", i, err)
			continue
		}
		if strings.TrimSpace(row.Name) == "" {
			imp.skip("company", i, errors.New("missing company name"))
			continue
		}

		size, ok := models.ParseCompanySize(row.Size)
		if !ok {
			size = models.CompanySizeStartup
		}
		score := models.DefaultTrustScore
		if n, err := strconv.Atoi(strings.TrimSpace(row.TrustScore)); err == nil {
			score = n
		}

		if _, err := imp.company(ctx, &models.Company{
			Name:        strings.TrimSpace(row.Name),
			Logo:        strings.TrimSpace(row.Logo),
			Website:     strings.TrimSpace(row.Website),
			Description: strings.TrimSpace(row.Description),
			Size:        size,
			TrustScore:  score,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) importJobs(ctx context.Context, records []map[string][]string) error {
	for i, rec := range records {
		var row jobRow
		if err := imp.decoder.Decode(&row, rec); err != nil {
			imp.skip("job", i, err)
			continue
		}
		title := strings.TrimSpace(row.Title)
		companyName := strings.TrimSpace(row.Company)
		if title == "" || companyName == "" {
			imp.skip("job", i, errors.New("missing title or company"))
			continue
		}

		company, err := imp.company(ctx, &models.Company{
			Name:       companyName,
			Logo:       strings.TrimSpace(row.CompanyLogo),
			Size:       models.CompanySizeStartup,
			TrustScore: models.DefaultTrustScore,
		})
		if err != nil {
			return err
		}

		key := jobKey(company.ID, title)
		if imp.jobKeys[key] {
			continue
		}

		job := &models.Job{
			Title:           title,
			Description:     strings.TrimSpace(row.Description),
			CompanyID:       company.ID,
			Location:        firstNonEmpty(row.Location, "Remote"),
			Salary:          salaryRange(row.Salary, row.SalaryMin, row.SalaryMax),
			JobType:         parseOr(row.JobType, models.ParseJobType, models.JobTypeRemote),
			ExperienceLevel: parseOr(row.ExperienceLevel, models.ParseExperienceLevel, models.ExperienceMid),
			Skills:          splitTags(row.Tags),
			Status:          parseOr(row.Status, models.ParseJobStatus, models.JobStatusPending),
			PostedAt:        parseDate(row.Date, imp.now),
			ExternalURL:     optional(row.URL),
		}
		if _, err := imp.store.CreateJob(ctx, job); err != nil {
			return fmt.Errorf("failed to create job %q: %w", title, err)
		}
		imp.jobKeys[key] = true
		imp.result.Jobs++
	}
	return nil
}

func (imp *importer) importCourses(ctx context.Context, records []map[string][]string) error {
	for i, rec := range records {
		var row courseRow
		if err := imp.decoder.Decode(&row, rec); err != nil {
			imp.skip("course", i, err)
			continue
		}
		title := strings.TrimSpace(row.Title)
		if title == "" {
			imp.skip("course", i, errors.New("missing course title"))
			continue
		}
		if imp.courses[strings.ToLower(title)] {
			continue
		}

		price := parseNumber(row.Price)
		isFree := price == 0
		if free, err := strconv.ParseBool(strings.TrimSpace(row.IsFree)); err == nil {
			isFree = free
		}
		var rating *float64
		if r := parseNumber(row.Rating); r > 0 && r <= 5 {
			rating = &r
		}

		course := &models.Course{
			Title:       title,
			Description: strings.TrimSpace(row.Description),
			Thumbnail:   strings.TrimSpace(row.Thumbnail),
			Category:    firstNonEmpty(row.Category, "General"),
			Price:       price,
			IsFree:      isFree,
			Rating:      rating,
			Instructor:  optional(row.Instructor),
			Duration:    optional(row.Duration),
			Tags:        splitTags(row.Tags),
			CreatedAt:   imp.now,
		}
		if _, err := imp.store.CreateCourse(ctx, course); err != nil {
			return fmt.Errorf("failed to create course %q: %w", title, err)
		}
		imp.courses[strings.ToLower(title)] = true
		imp.result.Courses++
	}
	return nil
}

// company returns the known company with c's name, creating it when absent
func (imp *importer) company(ctx context.Context, c *models.Company) (*models.Company, error) {
	key := strings.ToLower(c.Name)
	if existing, ok := imp.companies[key]; ok {
		return existing, nil
	}
	c.CreatedAt = imp.now
	created, err := imp.store.CreateCompany(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create company %q: %w", c.Name, err)
	}
	imp.companies[key] = created
	imp.result.Companies++
	return created, nil
}

func (imp *importer) skip(kind string, row int, err error) {
	imp.result.Skipped++
	imp.logger.Warn("Skipping dataset row",
		zap.String("kind", kind),
		zap.Int("row", row+1),
		zap.Error(err),
	)
}

// ===============================
// FILE READING
// ===============================

func newRowDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func firstExisting(dir string, names []string) (string, bool) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// readRecords returns one value map per row, keyed by normalised column name
func readRecords(path string) ([]map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readJSONRecords(f)
	}
	return readCSVRecords(f)
}

func readCSVRecords(r io.Reader) ([]map[string][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = columnName(strings.TrimPrefix(h, "\ufeff"))
	}

	var records []map[string][]string
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		rec := make(map[string][]string, len(header))
		for i, value := range fields {
			if i < len(header) && header[i] != "" {
				rec[header[i]] = []string{value}
			}
		}
		records = append(records, rec)
	}
}

func readJSONRecords(r io.Reader) ([]map[string][]string, error) {
	var rows []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, err
	}

	records := make([]map[string][]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string][]string, len(row))
		for key, value := range row {
			rec[columnName(key)] = []string{jsonString(value)}
		}
		records = append(records, rec)
	}
	return records, nil
}

func jsonString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, jsonString(item))
		}
		return strings.Join(parts, ",")
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}

func columnName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

// applyAliases renames alias columns unless the canonical column is present
func applyAliases(rec map[string][]string, aliases map[string]string) {
	for alias, canonical := range aliases {
		value, ok := rec[alias]
		if !ok {
			continue
		}
		delete(rec, alias)
		if _, taken := rec[canonical]; !taken {
			rec[canonical] = value
		}
	}
}

// ===============================
// FIELD PARSING
// ===============================

func jobKey(companyID, title string) string {
	return companyID + "\x00" + strings.ToLower(strings.TrimSpace(title))
}

func parseOr[T any](raw string, parse func(string) (T, bool), fallback T) T {
	if v, ok := parse(raw); ok {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// splitTags accepts comma separated lists, optionally wrapped in brackets
func splitTags(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.Trim(strings.TrimSpace(part), `"'`); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// parseNumber reads the leading number of values like "$49", "4.5/5" or "1,299"
func parseNumber(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	start := strings.IndexAny(raw, "0123456789")
	if start < 0 {
		return 0
	}
	end := start
	for end < len(raw) && (raw[end] == '.' || (raw[end] >= '0' && raw[end] <= '9')) {
		end++
	}
	n, err := strconv.ParseFloat(raw[start:end], 64)
	if err != nil {
		return 0
	}
	return n
}

func salaryRange(salary, minRaw, maxRaw string) *string {
	if s := optional(salary); s != nil {
		return s
	}
	lo, hi := parseNumber(minRaw), parseNumber(maxRaw)
	switch {
	case lo > 0 && hi > 0:
		s := fmt.Sprintf("$%s - $%s", formatAmount(lo), formatAmount(hi))
		return &s
	case lo > 0:
		s := fmt.Sprintf("$%s+", formatAmount(lo))
		return &s
	case hi > 0:
		s := fmt.Sprintf("up to $%s", formatAmount(hi))
		return &s
	}
	return nil
}

func formatAmount(n float64) string {
	if n >= 1000 && n == float64(int64(n)) && int64(n)%1000 == 0 {
		return strconv.FormatInt(int64(n)/1000, 10) + "k"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// parseDate accepts RFC 3339, plain dates and unix seconds
func parseDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	return fallback
}
