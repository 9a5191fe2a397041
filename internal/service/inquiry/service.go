package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/inquiry"
	"github.com/techdigi/hr-backoffice/internal/pkg/email"
)

const notifyTimeout = 30 * time.Second

type InquiryServiceImpl struct {
	inquiry.InquiryRepository
	email.EmailService

	background func(func())
}

func NewInquiryService(repo inquiry.InquiryRepository, emailService email.EmailService) inquiry.InquiryService {
	return &InquiryServiceImpl{
		InquiryRepository: repo,
		EmailService:      emailService,
		background:        func(fn func()) { go fn() },
	}
}

func (s *InquiryServiceImpl) notify(ctx context.Context, what string, send func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	s.background(func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			slog.Error("Failed to send query email", "email", what, "error", err)
		}
	})
}

// Submit implements inquiry.InquiryService.
func (s *InquiryServiceImpl) Submit(ctx context.Context, req inquiry.SubmitRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	created, err := s.InquiryRepository.Create(ctx, inquiry.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Status:  inquiry.StatusPending,
	})
	if err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}

	s.notify(ctx, "confirmation", func(ctx context.Context) error {
		return s.EmailService.SendInquiryConfirmation(ctx, created.Email, created.Name)
	})
	s.notify(ctx, "admin notice", func(ctx context.Context) error {
		notice := email.InquiryNotice{Name: created.Name, Email: created.Email, Phone: created.Phone, Message: created.Message}
		if created.Company != nil {
			notice.Company = *created.Company
		}
		return s.EmailService.SendInquiryAdminNotice(ctx, notice)
	})
	return nil
}

// List implements inquiry.InquiryService.
func (s *InquiryServiceImpl) List(ctx context.Context) ([]inquiry.InquiryResponse, error) {
	list, err := s.InquiryRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	return inquiry.NewInquiryResponses(list), nil
}

// Reply implements inquiry.InquiryService. The query is marked Replied only after the
// email went out.
func (s *InquiryServiceImpl) Reply(ctx context.Context, req inquiry.ReplyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	q, err := s.InquiryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := s.EmailService.SendInquiryReply(ctx, q.Email, q.Name, q.Message, req.ReplyMessage); err != nil {
		slog.Error("Failed to send query reply", "query_id", q.ID, "error", err)
		return inquiry.ErrReplyFailed
	}
	return s.InquiryRepository.MarkReplied(ctx, q.ID)
}

// Delete implements inquiry.InquiryService.
func (s *InquiryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.InquiryRepository.Delete(ctx, id)
}
