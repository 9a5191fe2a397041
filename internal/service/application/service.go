package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/application"
	"github.com/techdigi/hr-backoffice/internal/pkg/email"
	"github.com/techdigi/hr-backoffice/internal/service/file"
)

// notifyTimeout bounds each background email.
const notifyTimeout = 30 * time.Second

type ApplicationServiceImpl struct {
	repo         application.ApplicationRepository
	fileService  file.FileService
	emailService email.EmailService

	// background runs fire-and-forget work; tests run it inline.
	background func(func())
}

func NewApplicationService(
	repo application.ApplicationRepository,
	fileService file.FileService,
	emailService email.EmailService,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		repo:         repo,
		fileService:  fileService,
		emailService: emailService,
		background:   func(fn func()) { go fn() },
	}
}

// notify sends an email off the request path. Failures are logged only.
func (s *ApplicationServiceImpl) notify(ctx context.Context, what string, send func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	s.background(func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			slog.Error("Failed to send application email", "email", what, "error", err)
		}
	})
}

// Submit implements application.ApplicationService.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, req application.SubmitRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	resume, err := s.fileService.UploadDocument(ctx, file.FolderResumes, *req.Resume)
	if err != nil {
		return application.ApplicationResponse{}, err
	}

	a := application.Application{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Experience:  req.Experience,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
		Status:      application.StatusPending,
	}
	if req.Portfolio != "" {
		a.Portfolio = &req.Portfolio
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		s.fileService.DeleteQuietly(ctx, resume)
		return application.ApplicationResponse{}, fmt.Errorf("failed to save application: %w", err)
	}

	s.notify(ctx, "confirmation", func(ctx context.Context) error {
		return s.emailService.SendApplicationConfirmation(ctx, created.Email, created.Name, created.Position)
	})
	s.notify(ctx, "admin notice", func(ctx context.Context) error {
		return s.emailService.SendApplicationAdminNotice(ctx, email.ApplicationNotice{
			ApplicantName: created.Name,
			Email:         created.Email,
			Phone:         created.Phone,
			JobTitle:      created.Position,
			ResumeURL:     created.Resume,
			CoverLetter:   created.CoverLetter,
		})
	})

	return application.NewApplicationResponse(created), nil
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context) ([]application.ApplicationResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return application.NewApplicationResponses(list), nil
}

// UpdateStatus implements application.ApplicationService. Only Shortlisted and
// Rejected notify the applicant.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, req application.UpdateStatusRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	updated, err := s.repo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return application.ApplicationResponse{}, err
	}

	if updated.Status.NotifiesApplicant() {
		s.notify(ctx, "status update", func(ctx context.Context) error {
			return s.emailService.SendApplicationStatus(ctx, updated.Email, updated.Name, updated.Position, string(updated.Status))
		})
	}
	return application.NewApplicationResponse(updated), nil
}

// Delete implements application.ApplicationService.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed.Resume != "" {
		s.fileService.DeleteQuietly(ctx, removed.Resume)
	}
	return nil
}
