package technology

import "context"

type TechnologyRepository interface {
	Create(ctx context.Context, t Technology) (Technology, error)
	GetByID(ctx context.Context, id string) (Technology, error)
	// ListByIDs keeps only ids that exist, ordered by name.
	ListByIDs(ctx context.Context, ids []string) ([]Technology, error)
	List(ctx context.Context) ([]Technology, error)
	Update(ctx context.Context, t Technology) (Technology, error)
	// Delete also unlinks the technology from every service page.
	Delete(ctx context.Context, id string) error
}
