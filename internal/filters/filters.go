// Package filters narrows job listings by a JobFilters set and joins the
// survivors with their owning company.
package filters

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"

	"jobtrust/internal/models"
)

// Predicate reports whether a job, joined with its company, passes one filter.
// company may be nil when the owning company is unknown.
type Predicate func(job *models.Job, company *models.Company) bool

// CompanyLookup resolves a company by id, returning nil when absent
type CompanyLookup func(id string) *models.Company

// Predicates builds one predicate per active filter field.
// The predicates are independent, so their order does not matter.
func Predicates(f models.JobFilters) []Predicate {
	var preds []Predicate

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		preds = append(preds, func(job *models.Job, _ *models.Company) bool {
			if containsFold(job.Title, needle) || containsFold(job.Description, needle) {
				return true
			}
			for _, skill := range job.Skills {
				if containsFold(skill, needle) {
					return true
				}
			}
			return false
		})
	}

	if f.Location != "" {
		needle := strings.ToLower(f.Location)
		preds = append(preds, func(job *models.Job, _ *models.Company) bool {
			return containsFold(job.Location, needle)
		})
	}

	if len(f.JobTypes) > 0 {
		preds = append(preds, func(job *models.Job, _ *models.Company) bool {
			return slices.Contains(f.JobTypes, job.JobType)
		})
	}

	if len(f.ExperienceLevels) > 0 {
		preds = append(preds, func(job *models.Job, _ *models.Company) bool {
			return slices.Contains(f.ExperienceLevels, job.ExperienceLevel)
		})
	}

	if len(f.Statuses) > 0 {
		preds = append(preds, func(job *models.Job, _ *models.Company) bool {
			status := job.Status
			if status == "" {
				status = models.JobStatusPending
			}
			return slices.Contains(f.Statuses, status)
		})
	}

	if f.TrustScoreMin != nil {
		threshold := *f.TrustScoreMin
		preds = append(preds, func(_ *models.Job, company *models.Company) bool {
			return company != nil && company.TrustScore >= threshold
		})
	}

	if len(f.CompanySizes) > 0 {
		preds = append(preds, func(_ *models.Job, company *models.Company) bool {
			return company != nil && slices.Contains(f.CompanySizes, company.Size)
		})
	}

	return preds
}

// Match reports whether a job passes every predicate
func Match(preds []Predicate, job *models.Job, company *models.Company) bool {
	for _, p := range preds {
		if !p(job, company) {
			return false
		}
	}
	return true
}

// Result is the output of Apply
type Result struct {
	Jobs []*models.JobWithCompany
	// Orphaned lists ids of matching jobs dropped because their company is missing
	Orphaned []string
}

// Apply narrows jobs (given in insertion order) by f, joins each survivor with
// its company and sorts by PostedAt descending. Ties keep insertion order.
// Jobs whose company cannot be resolved are dropped and reported in Orphaned.
func Apply(jobs []*models.Job, lookup CompanyLookup, f models.JobFilters) Result {
	preds := Predicates(f)
	res := Result{Jobs: make([]*models.JobWithCompany, 0, len(jobs))}

	for _, job := range jobs {
		company := lookup(job.CompanyID)
		if !Match(preds, job, company) {
			continue
		}
		if company == nil {
			res.Orphaned = append(res.Orphaned, job.ID)
			continue
		}
		res.Jobs = append(res.Jobs, &models.JobWithCompany{Job: job, Company: company})
	}

	SortByRecency(res.Jobs)
	return res
}

// SortByRecency stable-sorts joined jobs by PostedAt, most recent first
func SortByRecency(jobs []*models.JobWithCompany) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostedAt.After(jobs[j].PostedAt)
	})
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
