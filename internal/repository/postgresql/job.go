package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/job"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const jobColumns = `id, title, department, location, type, salary_min, salary_max, experience, description,
		requirements, responsibilities, benefits, is_active, created_at, updated_at`

type jobRepositoryImpl struct {
	db database.Pool
}

func NewJobRepository(db database.Pool) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Department,
		&j.Location,
		&j.Type,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.Experience,
		&j.Description,
		&j.Requirements,
		&j.Responsibilities,
		&j.Benefits,
		&j.IsActive,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	return j, err
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (
			title, department, location, type, salary_min, salary_max, experience, description,
			requirements, responsibilities, benefits, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + jobColumns

	created, err := scanJob(q.QueryRow(ctx, query,
		j.Title, j.Department, j.Location, string(j.Type), j.SalaryMin, j.SalaryMax, j.Experience,
		j.Description, j.Requirements, j.Responsibilities, j.Benefits, j.IsActive,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("insert job: %w", err)
	}
	return created, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	j, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return job.Job{}, translate(err, job.ErrJobNotFound, nil)
	}
	return j, nil
}

// List implements job.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ($1 = FALSE OR is_active) ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Update implements job.JobRepository.
func (r *jobRepositoryImpl) Update(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET title = $1, department = $2, location = $3, type = $4, salary_min = $5, salary_max = $6,
			experience = $7, description = $8, requirements = $9, responsibilities = $10, benefits = $11,
			is_active = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING ` + jobColumns

	updated, err := scanJob(q.QueryRow(ctx, query,
		j.Title, j.Department, j.Location, string(j.Type), j.SalaryMin, j.SalaryMax, j.Experience,
		j.Description, j.Requirements, j.Responsibilities, j.Benefits, j.IsActive, j.ID,
	))
	if err != nil {
		return job.Job{}, translate(err, job.ErrJobNotFound, nil)
	}
	return updated, nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}
	return nil
}
