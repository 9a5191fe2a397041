// Package inquiry holds contact-form queries sent from the public site.
package inquiry

import "time"

type Status string

const (
	StatusPending Status = "Pending"
	StatusReplied Status = "Replied"
)

type Inquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   *string
	Message   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
