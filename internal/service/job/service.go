package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/techdigi/hr-backoffice/internal/domain/job"
)

type JobServiceImpl struct {
	job.JobRepository
}

func NewJobService(jobRepository job.JobRepository) job.JobService {
	return &JobServiceImpl{JobRepository: jobRepository}
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	created, err := s.JobRepository.Create(ctx, req.ToJob())
	if err != nil {
		return job.JobResponse{}, fmt.Errorf("failed to create job: %w", err)
	}
	slog.Info("Job opening created", "job_id", created.ID, "title", created.Title)
	return job.NewJobResponse(created), nil
}

// ListActive implements job.JobService.
func (s *JobServiceImpl) ListActive(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.JobRepository.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return job.NewJobResponses(jobs), nil
}

// GetActive implements job.JobService. Closed openings look missing to the public.
func (s *JobServiceImpl) GetActive(ctx context.Context, id string) (job.JobResponse, error) {
	j, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return job.JobResponse{}, job.ErrJobInactive
		}
		return job.JobResponse{}, err
	}
	if !j.IsActive {
		return job.JobResponse{}, job.ErrJobInactive
	}
	return job.NewJobResponse(j), nil
}

// ListAll implements job.JobService.
func (s *JobServiceImpl) ListAll(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.JobRepository.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return job.NewJobResponses(jobs), nil
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	current, err := s.JobRepository.GetByID(ctx, req.ID)
	if err != nil {
		return job.JobResponse{}, err
	}
	merged, err := req.Apply(current)
	if err != nil {
		return job.JobResponse{}, err
	}

	updated, err := s.JobRepository.Update(ctx, merged)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.NewJobResponse(updated), nil
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.JobRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Job opening deleted", "job_id", id)
	return nil
}
