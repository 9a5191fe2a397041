package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/testimonial"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const testimonialColumns = `id, name, review, rating, avatar, is_published, created_at, updated_at`

type testimonialRepositoryImpl struct {
	db database.Pool
}

func NewTestimonialRepository(db database.Pool) testimonial.TestimonialRepository {
	return &testimonialRepositoryImpl{db: db}
}

func scanTestimonial(row pgx.Row) (testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Review, &t.Rating, &t.Avatar, &t.IsPublished, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create implements testimonial.TestimonialRepository.
func (r *testimonialRepositoryImpl) Create(ctx context.Context, t testimonial.Testimonial) (testimonial.Testimonial, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO testimonials (name, review, rating, avatar, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + testimonialColumns

	created, err := scanTestimonial(q.QueryRow(ctx, query, t.Name, t.Review, t.Rating, t.Avatar, t.IsPublished))
	if err != nil {
		return testimonial.Testimonial{}, fmt.Errorf("insert testimonial: %w", err)
	}
	return created, nil
}

// GetByID implements testimonial.TestimonialRepository.
func (r *testimonialRepositoryImpl) GetByID(ctx context.Context, id string) (testimonial.Testimonial, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTestimonial(q.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if err != nil {
		return testimonial.Testimonial{}, translate(err, testimonial.ErrTestimonialNotFound, nil)
	}
	return t, nil
}

// List implements testimonial.TestimonialRepository.
func (r *testimonialRepositoryImpl) List(ctx context.Context, publishedOnly bool) ([]testimonial.Testimonial, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE ($1 = FALSE OR is_published) ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []testimonial.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update implements testimonial.TestimonialRepository.
func (r *testimonialRepositoryImpl) Update(ctx context.Context, t testimonial.Testimonial) (testimonial.Testimonial, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE testimonials
		SET name = $1, review = $2, rating = $3, avatar = $4, is_published = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + testimonialColumns

	updated, err := scanTestimonial(q.QueryRow(ctx, query, t.Name, t.Review, t.Rating, t.Avatar, t.IsPublished, t.ID))
	if err != nil {
		return testimonial.Testimonial{}, translate(err, testimonial.ErrTestimonialNotFound, nil)
	}
	return updated, nil
}

// Delete implements testimonial.TestimonialRepository.
func (r *testimonialRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return testimonial.ErrTestimonialNotFound
	}
	return nil
}
