package application

import "context"

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Application, error)
	// Delete returns the removed row so its resume can be cleaned up.
	Delete(ctx context.Context, id string) (Application, error)
}
