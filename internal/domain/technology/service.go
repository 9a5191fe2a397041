package technology

import "context"

type TechnologyService interface {
	Create(ctx context.Context, req CreateRequest) (TechnologyResponse, error)
	List(ctx context.Context) ([]TechnologyResponse, error)
	Update(ctx context.Context, req UpdateRequest) (TechnologyResponse, error)
	Delete(ctx context.Context, id string) error
}
