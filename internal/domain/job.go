package domain

import "time"

// Job represents a posting owned by a company
type Job struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	WorkType    string    `json:"workType"`
	SalaryMin   int       `json:"salaryMin"`
	SalaryMax   int       `json:"salaryMax"`
	Description string    `json:"description"`
	Applicants  []string  `json:"applicants"`
	PostedAt    time.Time `json:"postedAt"`
}

// HasApplicant reports whether the seeker already shows up in the
// posting's applicant set
func (j *Job) HasApplicant(seekerID string) bool {
	for _, id := range j.Applicants {
		if id == seekerID {
			return true
		}
	}
	return false
}

// ApplicationStatus is the stage an application sits at
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusInterviewed ApplicationStatus = "Interviewed"
	StatusHired       ApplicationStatus = "Hired"
	StatusRejected    ApplicationStatus = "Rejected"
)

// Valid reports whether the status is a known stage
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Application ties one seeker to one job; the backend enforces at most
// one per pair, the client blocks duplicates before calling out.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"jobId"`
	SeekerID  string            `json:"seekerId"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
}

// JobDraft is a partially filled posting, produced by the importer and
// completed in the posting form before it becomes a Job.
type JobDraft struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	WorkType    string `json:"workType"`
	SalaryText  string `json:"salaryText"`
	Description string `json:"description"`
	SourceURL   string `json:"sourceUrl"`
}
