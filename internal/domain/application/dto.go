package application

import (
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// SubmitRequest is a public multipart submission.
type SubmitRequest struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Phone       string          `json:"phone" validate:"required"`
	Position    string          `json:"position" validate:"required"`
	Experience  string          `json:"experience" validate:"required"`
	Portfolio   string          `json:"portfolio"`
	CoverLetter string          `json:"coverLetter" validate:"required"`
	Resume      *storage.Upload `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Portfolio = strings.TrimSpace(r.Portfolio)
	r.CoverLetter = strings.TrimSpace(r.CoverLetter)

	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Resume == nil {
		return validator.ValidationErrors{{Field: "resume", Message: ErrResumeRequired.Error()}}
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "Invalid status. Please use one of the following: Pending, Reviewed, Shortlisted, Rejected"}}
	}
	return nil
}

type ApplicationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Position    string  `json:"position"`
	Experience  string  `json:"experience"`
	Portfolio   *string `json:"portfolio,omitempty"`
	CoverLetter string  `json:"coverLetter"`
	Resume      string  `json:"resume"`
	Status      Status  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func NewApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Position:    a.Position,
		Experience:  a.Experience,
		Portfolio:   a.Portfolio,
		CoverLetter: a.CoverLetter,
		Resume:      a.Resume,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func NewApplicationResponses(list []Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
