package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/certificate"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const certificateColumns = `c.id, c.user_id, c.certificate_type, c.name_on_certificate, c.course_name,
		c.start_date, c.completion_date, c.duration, c.message, c.status, c.admin_remarks,
		c.certificate_number, c.created_at, c.updated_at`

type certificateRepositoryImpl struct {
	db database.Pool
}

func NewCertificateRepository(db database.Pool) certificate.CertificateRepository {
	return &certificateRepositoryImpl{db: db}
}

func scanCertificate(row pgx.Row, withUser bool) (certificate.Certificate, error) {
	var c certificate.Certificate
	dest := []any{
		&c.ID,
		&c.UserID,
		&c.CertificateType,
		&c.NameOnCertificate,
		&c.CourseName,
		&c.StartDate,
		&c.CompletionDate,
		&c.Duration,
		&c.Message,
		&c.Status,
		&c.AdminRemarks,
		&c.CertificateNumber,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
	if withUser {
		dest = append(dest, &c.UserName, &c.UserEmail)
	}
	err := row.Scan(dest...)
	return c, err
}

func (r *certificateRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + `, u.name, u.email
		FROM certificate_requests c
		JOIN users u ON u.id = c.user_id ` + where + `
		ORDER BY c.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []certificate.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) Create(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO certificate_requests AS c (
			user_id, certificate_type, name_on_certificate, course_name, start_date,
			completion_date, duration, message, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + certificateColumns

	created, err := scanCertificate(q.QueryRow(ctx, query,
		c.UserID,
		c.CertificateType,
		c.NameOnCertificate,
		c.CourseName,
		calendar.DateKey(c.StartDate),
		calendar.DateKey(c.CompletionDate),
		c.Duration,
		c.Message,
		string(c.Status),
	), false)
	if err != nil {
		return certificate.Certificate{}, fmt.Errorf("insert certificate request: %w", err)
	}
	return created, nil
}

// GetByID implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) GetByID(ctx context.Context, id string) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + ` FROM certificate_requests c WHERE c.id = $1`
	c, err := scanCertificate(q.QueryRow(ctx, query, id), false)
	if err != nil {
		return certificate.Certificate{}, translate(err, certificate.ErrCertificateNotFound, nil)
	}
	return c, nil
}

// ListByUser implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]certificate.Certificate, error) {
	return r.list(ctx, `WHERE c.user_id = $1`, userID)
}

// ListAll implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) ListAll(ctx context.Context) ([]certificate.Certificate, error) {
	return r.list(ctx, ``)
}

// UpdateReview implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) UpdateReview(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE certificate_requests AS c
		SET status = $1, admin_remarks = $2, certificate_number = $3, updated_at = NOW()
		WHERE c.id = $4
		RETURNING ` + certificateColumns

	updated, err := scanCertificate(q.QueryRow(ctx, query,
		string(c.Status), c.AdminRemarks, c.CertificateNumber, c.ID,
	), false)
	if err != nil {
		return certificate.Certificate{}, translate(err, certificate.ErrCertificateNotFound, nil)
	}
	return updated, nil
}

// Delete implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM certificate_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrCertificateNotFound
	}
	return nil
}

// FindApproved implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) FindApproved(ctx context.Context, number, name string) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + `
		FROM certificate_requests c
		WHERE c.certificate_number = $1
		  AND LOWER(c.name_on_certificate) = LOWER($2)
		  AND c.status = $3`

	c, err := scanCertificate(q.QueryRow(ctx, query, number, name, string(certificate.StatusApproved)), false)
	if err != nil {
		return certificate.Certificate{}, translate(err, certificate.ErrVerificationFailed, nil)
	}
	return c, nil
}
