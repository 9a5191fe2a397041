package testimonial

import (
	"context"
	"fmt"

	"github.com/techdigi/hr-backoffice/internal/domain/testimonial"
	"github.com/techdigi/hr-backoffice/internal/service/file"
)

type TestimonialServiceImpl struct {
	repo        testimonial.TestimonialRepository
	fileService file.FileService
}

func NewTestimonialService(repo testimonial.TestimonialRepository, fileService file.FileService) testimonial.TestimonialService {
	return &TestimonialServiceImpl{repo: repo, fileService: fileService}
}

// Create implements testimonial.TestimonialService.
func (s *TestimonialServiceImpl) Create(ctx context.Context, req testimonial.CreateRequest) (testimonial.TestimonialResponse, error) {
	t, err := req.Validate()
	if err != nil {
		return testimonial.TestimonialResponse{}, err
	}

	t.Avatar, err = s.fileService.UploadImage(ctx, file.FolderTestimonials, *req.Avatar)
	if err != nil {
		return testimonial.TestimonialResponse{}, err
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		s.fileService.DeleteQuietly(ctx, t.Avatar)
		return testimonial.TestimonialResponse{}, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return testimonial.NewTestimonialResponse(created), nil
}

// ListPublished implements testimonial.TestimonialService.
func (s *TestimonialServiceImpl) ListPublished(ctx context.Context) ([]testimonial.TestimonialResponse, error) {
	list, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonial.NewTestimonialResponses(list), nil
}

// ListAll implements testimonial.TestimonialService.
func (s *TestimonialServiceImpl) ListAll(ctx context.Context) ([]testimonial.TestimonialResponse, error) {
	list, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonial.NewTestimonialResponses(list), nil
}

// Update implements testimonial.TestimonialService. A new avatar replaces the old file.
func (s *TestimonialServiceImpl) Update(ctx context.Context, req testimonial.UpdateRequest) (testimonial.TestimonialResponse, error) {
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return testimonial.TestimonialResponse{}, err
	}

	merged, err := req.Apply(current)
	if err != nil {
		return testimonial.TestimonialResponse{}, err
	}

	var newAvatar string
	if req.Avatar != nil {
		newAvatar, err = s.fileService.UploadImage(ctx, file.FolderTestimonials, *req.Avatar)
		if err != nil {
			return testimonial.TestimonialResponse{}, err
		}
		merged.Avatar = newAvatar
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		if newAvatar != "" {
			s.fileService.DeleteQuietly(ctx, newAvatar)
		}
		return testimonial.TestimonialResponse{}, err
	}

	if newAvatar != "" && current.Avatar != "" {
		s.fileService.DeleteQuietly(ctx, current.Avatar)
	}
	return testimonial.NewTestimonialResponse(updated), nil
}

// Delete implements testimonial.TestimonialService.
func (s *TestimonialServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if current.Avatar != "" {
		s.fileService.DeleteQuietly(ctx, current.Avatar)
	}
	return nil
}
