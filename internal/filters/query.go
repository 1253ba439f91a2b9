package filters

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"jobtrust/internal/models"
)

// Query is the raw job listing filter as it arrives on the query string.
// List fields accept repeated keys and comma separated values.
type Query struct {
	Search          string   `schema:"search"`
	Location        string   `schema:"location"`
	JobType         []string `schema:"jobType"`
	ExperienceLevel []string `schema:"experienceLevel"`
	Status          []string `schema:"status"`
	TrustScoreMin   string   `schema:"trustScoreMin"`
	CompanySize     []string `schema:"companySize"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	return d
}

// Parse decodes query parameters into normalized filters. It never fails:
// values that cannot be understood are dropped.
func Parse(values url.Values) models.JobFilters {
	var q Query
	if err := decoder.Decode(&q, values); err != nil {
		// all fields are strings, so this only happens on malformed keys
		q = Query{}
	}
	return q.Normalize()
}

// Normalize converts a Query into JobFilters. Unknown enum values are
// discarded; a list left empty places no constraint.
func (q Query) Normalize() models.JobFilters {
	f := models.JobFilters{
		Search:           strings.TrimSpace(q.Search),
		Location:         strings.TrimSpace(q.Location),
		JobTypes:         parseList(q.JobType, models.ParseJobType),
		ExperienceLevels: parseList(q.ExperienceLevel, models.ParseExperienceLevel),
		Statuses:         parseList(q.Status, models.ParseJobStatus),
		CompanySizes:     parseList(q.CompanySize, models.ParseCompanySize),
	}

	if raw := strings.TrimSpace(q.TrustScoreMin); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.TrustScoreMin = &n
		}
	}

	return f
}

func parseList[T comparable](raw []string, parse func(string) (T, bool)) []T {
	var out []T
	seen := make(map[T]struct{})
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			v, ok := parse(part)
			if !ok {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
