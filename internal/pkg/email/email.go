package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Message is a rendered HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered message over some transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// EmailService defines the interface for sending emails
type EmailService interface {
	SendPasswordReset(ctx context.Context, to, name, resetLink string, validFor time.Duration) error

	SendApplicationConfirmation(ctx context.Context, to, applicantName, jobTitle string) error
	SendApplicationAdminNotice(ctx context.Context, notice ApplicationNotice) error
	SendApplicationStatus(ctx context.Context, to, applicantName, jobTitle, status string) error

	SendInquiryConfirmation(ctx context.Context, to, name string) error
	SendInquiryAdminNotice(ctx context.Context, notice InquiryNotice) error
	SendInquiryReply(ctx context.Context, to, name, originalMessage, reply string) error
}

type ApplicationNotice struct {
	ApplicantName string
	Email         string
	Phone         string
	JobTitle      string
	ResumeURL     string
	CoverLetter   string
}

type InquiryNotice struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

type emailServiceImpl struct {
	sender     Sender
	adminEmail string
	templates  *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(sender Sender, adminEmail string) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		sender:     sender,
		adminEmail: adminEmail,
		templates:  tmpl,
	}, nil
}

func (s *emailServiceImpl) render(ctx context.Context, to, subject, name string, data any) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return s.sender.Send(ctx, Message{To: to, Subject: subject, HTML: body.String()})
}

func (s *emailServiceImpl) toAdmin(ctx context.Context, subject, name string, data any) error {
	if s.adminEmail == "" {
		slog.Warn("ADMIN_EMAIL not configured, skipping admin notice", "subject", subject)
		return nil
	}
	return s.render(ctx, s.adminEmail, subject, name, data)
}

type passwordResetEmailData struct {
	Name      string
	ResetLink string
	Minutes   int
}

// SendPasswordReset sends a password reset email to the user
func (s *emailServiceImpl) SendPasswordReset(ctx context.Context, to, name, resetLink string, validFor time.Duration) error {
	return s.render(ctx, to, "Password Reset Request", "password_reset.html", passwordResetEmailData{
		Name:      name,
		ResetLink: resetLink,
		Minutes:   int(validFor.Minutes()),
	})
}

type applicationEmailData struct {
	Name     string
	JobTitle string
	Status   string
}

func (s *emailServiceImpl) SendApplicationConfirmation(ctx context.Context, to, applicantName, jobTitle string) error {
	return s.render(ctx, to, fmt.Sprintf("Application Received: %s", jobTitle), "application_confirmation.html",
		applicationEmailData{Name: applicantName, JobTitle: jobTitle})
}

func (s *emailServiceImpl) SendApplicationAdminNotice(ctx context.Context, notice ApplicationNotice) error {
	return s.toAdmin(ctx, fmt.Sprintf("New Job Application: %s", notice.JobTitle), "application_admin.html", notice)
}

func (s *emailServiceImpl) SendApplicationStatus(ctx context.Context, to, applicantName, jobTitle, status string) error {
	return s.render(ctx, to, fmt.Sprintf("Update on your application for %s", jobTitle), "application_status.html",
		applicationEmailData{Name: applicantName, JobTitle: jobTitle, Status: status})
}

type inquiryEmailData struct {
	Name     string
	Original string
	Reply    string
}

func (s *emailServiceImpl) SendInquiryConfirmation(ctx context.Context, to, name string) error {
	return s.render(ctx, to, "We have received your query", "query_confirmation.html", inquiryEmailData{Name: name})
}

func (s *emailServiceImpl) SendInquiryAdminNotice(ctx context.Context, notice InquiryNotice) error {
	return s.toAdmin(ctx, fmt.Sprintf("New Query from %s", notice.Name), "query_admin.html", notice)
}

func (s *emailServiceImpl) SendInquiryReply(ctx context.Context, to, name, originalMessage, reply string) error {
	return s.render(ctx, to, "Re: Your query", "query_reply.html", inquiryEmailData{
		Name:     name,
		Original: originalMessage,
		Reply:    reply,
	})
}
