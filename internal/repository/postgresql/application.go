package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/application"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const applicationColumns = `id, name, email, phone, position, experience, portfolio, cover_letter, resume,
		status, created_at, updated_at`

type applicationRepositoryImpl struct {
	db database.Pool
}

func NewApplicationRepository(db database.Pool) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Phone,
		&a.Position,
		&a.Experience,
		&a.Portfolio,
		&a.CoverLetter,
		&a.Resume,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, a application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_applications (name, email, phone, position, experience, portfolio, cover_letter, resume, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + applicationColumns

	created, err := scanApplication(q.QueryRow(ctx, query,
		a.Name, a.Email, a.Phone, a.Position, a.Experience, a.Portfolio, a.CoverLetter, a.Resume, string(a.Status),
	))
	if err != nil {
		return application.Application{}, fmt.Errorf("insert application: %w", err)
	}
	return created, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanApplication(q.QueryRow(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id))
	if err != nil {
		return application.Application{}, translate(err, application.ErrApplicationNotFound, nil)
	}
	return a, nil
}

// List implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+applicationColumns+` FROM job_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status application.Status) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_applications SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + applicationColumns

	a, err := scanApplication(q.QueryRow(ctx, query, string(status), id))
	if err != nil {
		return application.Application{}, translate(err, application.ErrApplicationNotFound, nil)
	}
	return a, nil
}

// Delete implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Delete(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanApplication(q.QueryRow(ctx, `DELETE FROM job_applications WHERE id = $1 RETURNING `+applicationColumns, id))
	if err != nil {
		return application.Application{}, translate(err, application.ErrApplicationNotFound, nil)
	}
	return a, nil
}
