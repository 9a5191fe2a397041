package postgresql

import (
	"context"
	"fmt"

	"github.com/techdigi/hr-backoffice/internal/domain/letter"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

type letterRepositoryImpl struct {
	db database.Pool
}

func NewLetterRepository(db database.Pool) letter.LetterRepository {
	return &letterRepositoryImpl{db: db}
}

// CreateOffer implements letter.LetterRepository.
func (r *letterRepositoryImpl) CreateOffer(ctx context.Context, l letter.OfferLetter) (letter.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offer_letters (user_id, recipient_name, position, joining_date, letter_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, recipient_name, position, joining_date, letter_number, created_at, updated_at
	`

	var created letter.OfferLetter
	err := q.QueryRow(ctx, query,
		l.UserID, l.RecipientName, l.Position, calendar.DateKey(l.JoiningDate), l.LetterNumber,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.RecipientName,
		&created.Position,
		&created.JoiningDate,
		&created.LetterNumber,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "offer_letters_letter_number_key") {
			return letter.OfferLetter{}, letter.ErrLetterNumberTaken
		}
		return letter.OfferLetter{}, fmt.Errorf("insert offer letter: %w", err)
	}
	return created, nil
}

// CreateExperience implements letter.LetterRepository.
func (r *letterRepositoryImpl) CreateExperience(ctx context.Context, l letter.ExperienceLetter) (letter.ExperienceLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO experience_letters (user_id, recipient_name, issue_date, position, duration, time_period, letter_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, recipient_name, issue_date, position, duration, time_period, letter_number,
				  created_at, updated_at
	`

	var created letter.ExperienceLetter
	err := q.QueryRow(ctx, query,
		l.UserID, l.RecipientName, calendar.DateKey(l.IssueDate), l.Position, l.Duration, l.TimePeriod, l.LetterNumber,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.RecipientName,
		&created.IssueDate,
		&created.Position,
		&created.Duration,
		&created.TimePeriod,
		&created.LetterNumber,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "experience_letters_letter_number_key") {
			return letter.ExperienceLetter{}, letter.ErrLetterNumberTaken
		}
		return letter.ExperienceLetter{}, fmt.Errorf("insert experience letter: %w", err)
	}
	return created, nil
}

// ListOffersByUser implements letter.LetterRepository.
func (r *letterRepositoryImpl) ListOffersByUser(ctx context.Context, userID string) ([]letter.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, recipient_name, position, joining_date, letter_number, created_at, updated_at
		FROM offer_letters
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []letter.OfferLetter
	for rows.Next() {
		var l letter.OfferLetter
		if err := rows.Scan(&l.ID, &l.UserID, &l.RecipientName, &l.Position, &l.JoiningDate, &l.LetterNumber, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListExperienceByUser implements letter.LetterRepository.
func (r *letterRepositoryImpl) ListExperienceByUser(ctx context.Context, userID string) ([]letter.ExperienceLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, recipient_name, issue_date, position, duration, time_period, letter_number,
			   created_at, updated_at
		FROM experience_letters
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []letter.ExperienceLetter
	for rows.Next() {
		var l letter.ExperienceLetter
		if err := rows.Scan(&l.ID, &l.UserID, &l.RecipientName, &l.IssueDate, &l.Position, &l.Duration, &l.TimePeriod, &l.LetterNumber, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
