package letter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/letter"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
	"github.com/techdigi/hr-backoffice/internal/pkg/docnumber"
	"github.com/techdigi/hr-backoffice/internal/repository/postgresql"
)

type LetterServiceImpl struct {
	db        database.Pool
	repo      letter.LetterRepository
	userRepo  user.UserRepository
	sequencer docnumber.Sequencer

	loc *time.Location
	now func() time.Time
}

func NewLetterService(
	db database.Pool,
	repo letter.LetterRepository,
	userRepo user.UserRepository,
	sequencer docnumber.Sequencer,
	loc *time.Location,
) letter.LetterService {
	return &LetterServiceImpl{
		db:        db,
		repo:      repo,
		userRepo:  userRepo,
		sequencer: sequencer,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *LetterServiceImpl) recipient(ctx context.Context, userID string) (user.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, letter.ErrRecipientNotFound
		}
		return user.User{}, fmt.Errorf("failed to get recipient: %w", err)
	}
	return u, nil
}

func (s *LetterServiceImpl) year() int {
	return s.now().In(s.loc).Year()
}

// CreateOffer implements letter.LetterService. recipientName falls back to the user's name.
func (s *LetterServiceImpl) CreateOffer(ctx context.Context, req letter.CreateOfferRequest) (letter.LetterResponse, error) {
	if err := req.Validate(); err != nil {
		return letter.LetterResponse{}, err
	}
	u, err := s.recipient(ctx, req.UserID)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	joining, _ := time.Parse(time.DateOnly, req.JoiningDate)
	name := strings.TrimSpace(req.RecipientName)
	if name == "" {
		name = u.Name
	}

	var created letter.OfferLetter
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		number, err := docnumber.Generate(txCtx, s.sequencer, letter.OfferPrefix, s.year(), letter.NumberWidth)
		if err != nil {
			return err
		}
		created, err = s.repo.CreateOffer(txCtx, letter.OfferLetter{
			UserID:        u.ID,
			RecipientName: name,
			Position:      strings.TrimSpace(req.Position),
			JoiningDate:   joining,
			LetterNumber:  number,
		})
		return err
	})
	if err != nil {
		return letter.LetterResponse{}, err
	}

	slog.Info("Offer letter issued", "letter_number", created.LetterNumber, "user_id", u.ID)
	return letter.NewOfferResponse(created), nil
}

// CreateExperience implements letter.LetterService.
func (s *LetterServiceImpl) CreateExperience(ctx context.Context, req letter.CreateExperienceRequest) (letter.LetterResponse, error) {
	if err := req.Validate(); err != nil {
		return letter.LetterResponse{}, err
	}
	u, err := s.recipient(ctx, req.UserID)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	issued, _ := time.Parse(time.DateOnly, req.IssueDate)

	var created letter.ExperienceLetter
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		number, err := docnumber.Generate(txCtx, s.sequencer, letter.ExperiencePrefix, s.year(), letter.NumberWidth)
		if err != nil {
			return err
		}
		created, err = s.repo.CreateExperience(txCtx, letter.ExperienceLetter{
			UserID:        u.ID,
			RecipientName: u.Name,
			IssueDate:     issued,
			Position:      strings.TrimSpace(req.Position),
			Duration:      strings.TrimSpace(req.Duration),
			TimePeriod:    strings.TrimSpace(req.TimePeriod),
			LetterNumber:  number,
		})
		return err
	})
	if err != nil {
		return letter.LetterResponse{}, err
	}

	slog.Info("Experience letter issued", "letter_number", created.LetterNumber, "user_id", u.ID)
	return letter.NewExperienceResponse(created), nil
}

// MyLetters implements letter.LetterService.
func (s *LetterServiceImpl) MyLetters(ctx context.Context, userID string) ([]letter.LetterResponse, error) {
	offers, err := s.repo.ListOffersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offer letters: %w", err)
	}
	experience, err := s.repo.ListExperienceByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience letters: %w", err)
	}
	return letter.MergeLetters(offers, experience), nil
}
