package application

import "time"

type Status string

const (
	StatusPending     Status = "Pending"
	StatusReviewed    Status = "Reviewed"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
)

var Statuses = []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// NotifiesApplicant reports whether moving to s sends the applicant an email.
func (s Status) NotifiesApplicant() bool {
	return s == StatusShortlisted || s == StatusRejected
}

type Application struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Position    string
	Experience  string
	Portfolio   *string
	CoverLetter string
	Resume      string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
