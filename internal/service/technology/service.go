package technology

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/techdigi/hr-backoffice/internal/domain/technology"
)

type TechnologyServiceImpl struct {
	technology.TechnologyRepository
}

func NewTechnologyService(repo technology.TechnologyRepository) technology.TechnologyService {
	return &TechnologyServiceImpl{TechnologyRepository: repo}
}

// Create implements technology.TechnologyService.
func (s *TechnologyServiceImpl) Create(ctx context.Context, req technology.CreateRequest) (technology.TechnologyResponse, error) {
	if err := req.Validate(); err != nil {
		return technology.TechnologyResponse{}, err
	}

	created, err := s.TechnologyRepository.Create(ctx, req.ToTechnology())
	if err != nil {
		return technology.TechnologyResponse{}, err
	}
	return technology.NewTechnologyResponse(created), nil
}

// List implements technology.TechnologyService.
func (s *TechnologyServiceImpl) List(ctx context.Context) ([]technology.TechnologyResponse, error) {
	list, err := s.TechnologyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	return technology.NewTechnologyResponses(list), nil
}

// Update implements technology.TechnologyService.
func (s *TechnologyServiceImpl) Update(ctx context.Context, req technology.UpdateRequest) (technology.TechnologyResponse, error) {
	current, err := s.TechnologyRepository.GetByID(ctx, req.ID)
	if err != nil {
		return technology.TechnologyResponse{}, err
	}

	updated, err := s.TechnologyRepository.Update(ctx, req.Apply(current))
	if err != nil {
		return technology.TechnologyResponse{}, err
	}
	return technology.NewTechnologyResponse(updated), nil
}

// Delete implements technology.TechnologyService.
func (s *TechnologyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.TechnologyRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Technology deleted and unlinked from services", "technology_id", id)
	return nil
}
