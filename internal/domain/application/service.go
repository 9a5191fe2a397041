package application

import "context"

type ApplicationService interface {
	Submit(ctx context.Context, req SubmitRequest) (ApplicationResponse, error)
	List(ctx context.Context) ([]ApplicationResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (ApplicationResponse, error)
	Delete(ctx context.Context, id string) error
}
