package certificate

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// NumberPrefix starts every issued certificate number.
const NumberPrefix = "TDS008"

type Certificate struct {
	ID                string
	UserID            string
	CertificateType   string
	NameOnCertificate string
	CourseName        string
	StartDate         time.Time
	CompletionDate    time.Time
	Duration          string
	Message           *string
	Status            Status
	AdminRemarks      *string
	CertificateNumber *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Join
	UserName  *string
	UserEmail *string
}

// NeedsNumber reports whether moving to next should issue a certificate number.
func (c *Certificate) NeedsNumber(next Status) bool {
	return next == StatusApproved && c.Status != StatusApproved && c.CertificateNumber == nil
}
