package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/certificate"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
	"github.com/techdigi/hr-backoffice/internal/pkg/docnumber"
	"github.com/techdigi/hr-backoffice/internal/repository/postgresql"
)

const numberWidth = 3

type CertificateServiceImpl struct {
	db        database.Pool
	repo      certificate.CertificateRepository
	sequencer docnumber.Sequencer

	loc *time.Location
	now func() time.Time
}

func NewCertificateService(
	db database.Pool,
	repo certificate.CertificateRepository,
	sequencer docnumber.Sequencer,
	loc *time.Location,
) certificate.CertificateService {
	return &CertificateServiceImpl{
		db:        db,
		repo:      repo,
		sequencer: sequencer,
		loc:       loc,
		now:       time.Now,
	}
}

// Submit implements certificate.CertificateService.
func (s *CertificateServiceImpl) Submit(ctx context.Context, req certificate.SubmitRequest) (certificate.CertificateResponse, error) {
	if err := req.Validate(); err != nil {
		return certificate.CertificateResponse{}, err
	}

	created, err := s.repo.Create(ctx, req.ToCertificate())
	if err != nil {
		return certificate.CertificateResponse{}, fmt.Errorf("failed to create certificate request: %w", err)
	}
	return certificate.NewCertificateResponse(created), nil
}

// MyRequests implements certificate.CertificateService.
func (s *CertificateServiceImpl) MyRequests(ctx context.Context, userID string) ([]certificate.CertificateResponse, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificate requests: %w", err)
	}
	return certificate.NewCertificateResponses(list), nil
}

// ListAll implements certificate.CertificateService.
func (s *CertificateServiceImpl) ListAll(ctx context.Context) ([]certificate.CertificateResponse, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificate requests: %w", err)
	}
	return certificate.NewCertificateResponses(list), nil
}

// Review implements certificate.CertificateService. The first approval of a request
// without a number draws the next TDS008-<year>-<seq> value in the same transaction.
func (s *CertificateServiceImpl) Review(ctx context.Context, req certificate.ReviewRequest) (certificate.CertificateResponse, error) {
	if err := req.Validate(); err != nil {
		return certificate.CertificateResponse{}, err
	}

	var updated certificate.Certificate
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.repo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		next := current.Status
		if req.Status != nil {
			next = certificate.Status(*req.Status)
		}
		if current.NeedsNumber(next) {
			number, err := docnumber.Generate(txCtx, s.sequencer, certificate.NumberPrefix, s.now().In(s.loc).Year(), numberWidth)
			if err != nil {
				return err
			}
			current.CertificateNumber = &number
		}
		current.Status = next
		if req.AdminRemarks != nil {
			current.AdminRemarks = req.AdminRemarks
		}

		updated, err = s.repo.UpdateReview(txCtx, current)
		return err
	})
	if err != nil {
		return certificate.CertificateResponse{}, err
	}

	slog.Info("Certificate request reviewed", "certificate_id", updated.ID, "status", updated.Status)
	return certificate.NewCertificateResponse(updated), nil
}

// Delete implements certificate.CertificateService.
func (s *CertificateServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Verify implements certificate.CertificateService. Only approved certificates verify.
func (s *CertificateServiceImpl) Verify(ctx context.Context, req certificate.VerifyRequest) (certificate.CertificateResponse, error) {
	if err := req.Validate(); err != nil {
		return certificate.CertificateResponse{}, err
	}

	found, err := s.repo.FindApproved(ctx, strings.TrimSpace(req.CertificateNumber), strings.TrimSpace(req.NameOnCertificate))
	if err != nil {
		return certificate.CertificateResponse{}, err
	}
	return certificate.NewCertificateResponse(found), nil
}
