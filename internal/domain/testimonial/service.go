package testimonial

import "context"

type TestimonialService interface {
	Create(ctx context.Context, req CreateRequest) (TestimonialResponse, error)
	ListPublished(ctx context.Context) ([]TestimonialResponse, error)
	ListAll(ctx context.Context) ([]TestimonialResponse, error)
	Update(ctx context.Context, req UpdateRequest) (TestimonialResponse, error)
	Delete(ctx context.Context, id string) error
}
