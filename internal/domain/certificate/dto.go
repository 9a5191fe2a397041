package certificate

import (
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type SubmitRequest struct {
	UserID            string  `json:"-"`
	CertificateType   string  `json:"certificateType" validate:"required"`
	NameOnCertificate string  `json:"nameOnCertificate" validate:"required"`
	CourseName        string  `json:"courseName" validate:"required"`
	StartDate         string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	CompletionDate    string  `json:"completionDate" validate:"required,datetime=2006-01-02"`
	Duration          string  `json:"duration" validate:"required"`
	Message           *string `json:"message,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.CompletionDate)
	if end.Before(start) {
		return validator.ValidationErrors{{Field: "completionDate", Message: "completionDate cannot be before startDate"}}
	}
	return nil
}

func (r *SubmitRequest) ToCertificate() Certificate {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.CompletionDate)
	return Certificate{
		UserID:            r.UserID,
		CertificateType:   r.CertificateType,
		NameOnCertificate: r.NameOnCertificate,
		CourseName:        r.CourseName,
		StartDate:         start,
		CompletionDate:    end,
		Duration:          r.Duration,
		Message:           r.Message,
		Status:            StatusPending,
	}
}

type ReviewRequest struct {
	ID           string  `json:"-"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=Approved Rejected"`
	AdminRemarks *string `json:"adminRemarks,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	return validator.Struct(r)
}

type VerifyRequest struct {
	CertificateNumber string `json:"certificateNumber" validate:"required"`
	NameOnCertificate string `json:"nameOnCertificate" validate:"required"`
}

func (r *VerifyRequest) Validate() error {
	return validator.Struct(r)
}

type CertificateResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user"`
	UserName          *string `json:"userName,omitempty"`
	UserEmail         *string `json:"userEmail,omitempty"`
	CertificateType   string  `json:"certificateType"`
	NameOnCertificate string  `json:"nameOnCertificate"`
	CourseName        string  `json:"courseName"`
	StartDate         string  `json:"startDate"`
	CompletionDate    string  `json:"completionDate"`
	Duration          string  `json:"duration"`
	Message           *string `json:"message,omitempty"`
	Status            Status  `json:"status"`
	AdminRemarks      *string `json:"adminRemarks,omitempty"`
	CertificateNumber *string `json:"certificateNumber"`
	CreatedAt         string  `json:"createdAt"`
}

func NewCertificateResponse(c Certificate) CertificateResponse {
	return CertificateResponse{
		ID:                c.ID,
		UserID:            c.UserID,
		UserName:          c.UserName,
		UserEmail:         c.UserEmail,
		CertificateType:   c.CertificateType,
		NameOnCertificate: c.NameOnCertificate,
		CourseName:        c.CourseName,
		StartDate:         c.StartDate.Format(time.DateOnly),
		CompletionDate:    c.CompletionDate.Format(time.DateOnly),
		Duration:          c.Duration,
		Message:           c.Message,
		Status:            c.Status,
		AdminRemarks:      c.AdminRemarks,
		CertificateNumber: c.CertificateNumber,
		CreatedAt:         c.CreatedAt.Format(time.RFC3339),
	}
}

func NewCertificateResponses(list []Certificate) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewCertificateResponse(c))
	}
	return out
}
