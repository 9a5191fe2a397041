package offering

import "context"

type OfferingService interface {
	Create(ctx context.Context, req FormRequest) (OfferingResponse, error)
	List(ctx context.Context) ([]OfferingResponse, error)
	GetByID(ctx context.Context, id string) (OfferingResponse, error)
	GetBySlug(ctx context.Context, slug string) (OfferingResponse, error)
	Update(ctx context.Context, req FormRequest) (OfferingResponse, error)
	Delete(ctx context.Context, id string) error
}
