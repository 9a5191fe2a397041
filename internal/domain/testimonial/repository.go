package testimonial

import "context"

type TestimonialRepository interface {
	Create(ctx context.Context, t Testimonial) (Testimonial, error)
	GetByID(ctx context.Context, id string) (Testimonial, error)
	List(ctx context.Context, publishedOnly bool) ([]Testimonial, error)
	Update(ctx context.Context, t Testimonial) (Testimonial, error)
	Delete(ctx context.Context, id string) error
}
