package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/inquiry"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const inquiryColumns = `id, name, email, phone, company, message, status, created_at, updated_at`

type inquiryRepositoryImpl struct {
	db database.Pool
}

func NewInquiryRepository(db database.Pool) inquiry.InquiryRepository {
	return &inquiryRepositoryImpl{db: db}
}

func scanInquiry(row pgx.Row) (inquiry.Inquiry, error) {
	var i inquiry.Inquiry
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Company, &i.Message, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

// Create implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) Create(ctx context.Context, in inquiry.Inquiry) (inquiry.Inquiry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO inquiries (name, email, phone, company, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + inquiryColumns

	created, err := scanInquiry(q.QueryRow(ctx, query, in.Name, in.Email, in.Phone, in.Company, in.Message, string(in.Status)))
	if err != nil {
		return inquiry.Inquiry{}, fmt.Errorf("insert inquiry: %w", err)
	}
	return created, nil
}

// GetByID implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) GetByID(ctx context.Context, id string) (inquiry.Inquiry, error) {
	q := GetQuerier(ctx, r.db)

	i, err := scanInquiry(q.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id))
	if err != nil {
		return inquiry.Inquiry{}, translate(err, inquiry.ErrInquiryNotFound, nil)
	}
	return i, nil
}

// List implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) List(ctx context.Context) ([]inquiry.Inquiry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []inquiry.Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// MarkReplied implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) MarkReplied(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2`, string(inquiry.StatusReplied), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return inquiry.ErrInquiryNotFound
	}
	return nil
}

// Delete implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return inquiry.ErrInquiryNotFound
	}
	return nil
}
