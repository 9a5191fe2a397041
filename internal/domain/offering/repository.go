package offering

import "context"

type OfferingRepository interface {
	// Create and Update also replace the technology links.
	Create(ctx context.Context, o Offering) (Offering, error)
	Update(ctx context.Context, o Offering) (Offering, error)
	GetByID(ctx context.Context, id string) (Offering, error)
	GetBySlug(ctx context.Context, slug string) (Offering, error)
	List(ctx context.Context) ([]Offering, error)
	Delete(ctx context.Context, id string) error
	// SlugTaken reports whether slug belongs to a row other than exceptID.
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
}
