package job

import "context"

type JobService interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	ListActive(ctx context.Context) ([]JobResponse, error)
	GetActive(ctx context.Context, id string) (JobResponse, error)
	ListAll(ctx context.Context) ([]JobResponse, error)
	Update(ctx context.Context, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id string) error
}
