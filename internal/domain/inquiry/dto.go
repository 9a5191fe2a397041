package inquiry

import (
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type SubmitRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company *string `json:"company,omitempty"`
	Message string  `json:"message"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)

	if r.Name == "" {
		errs.Add("name", "Name is required.")
	}
	if r.Email == "" {
		errs.Add("email", "Email is required.")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "Email is not valid.")
	}
	if r.Message == "" {
		errs.Add("message", "Message is required.")
	}

	return errs.Err()
}

type ReplyRequest struct {
	ID           string `json:"-"`
	ReplyMessage string `json:"replyMessage"`
}

func (r *ReplyRequest) Validate() error {
	if validator.IsEmpty(r.ReplyMessage) {
		return validator.ValidationErrors{{Field: "replyMessage", Message: "Reply message cannot be empty."}}
	}
	return nil
}

type InquiryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Company   *string `json:"company,omitempty"`
	Message   string  `json:"message"`
	Status    Status  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

func NewInquiryResponse(q Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Company:   q.Company,
		Message:   q.Message,
		Status:    q.Status,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
	}
}

func NewInquiryResponses(list []Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(list))
	for _, q := range list {
		out = append(out, NewInquiryResponse(q))
	}
	return out
}
