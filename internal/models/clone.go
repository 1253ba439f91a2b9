package models

// Clone methods return deep copies so stored entities are never mutated
// through a pointer handed to a caller.

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Avatar = cloneString(u.Avatar)
	return &c
}

func (co *Company) Clone() *Company {
	if co == nil {
		return nil
	}
	c := *co
	c.Rating = cloneFloat(co.Rating)
	return &c
}

func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	c := *j
	c.Salary = cloneString(j.Salary)
	c.ExternalURL = cloneString(j.ExternalURL)
	c.Skills = cloneStrings(j.Skills)
	return &c
}

func (s *SavedJob) Clone() *SavedJob {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (r *JobReport) Clone() *JobReport {
	if r == nil {
		return nil
	}
	c := *r
	c.Description = cloneString(r.Description)
	c.Evidence = cloneStrings(r.Evidence)
	return &c
}

func (co *Course) Clone() *Course {
	if co == nil {
		return nil
	}
	c := *co
	c.Rating = cloneFloat(co.Rating)
	c.Instructor = cloneString(co.Instructor)
	c.Duration = cloneString(co.Duration)
	c.Tags = cloneStrings(co.Tags)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
