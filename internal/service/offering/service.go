package offering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/techdigi/hr-backoffice/internal/domain/offering"
	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
	"github.com/techdigi/hr-backoffice/internal/service/file"
)

type OfferingServiceImpl struct {
	repo        offering.OfferingRepository
	fileService file.FileService
}

func NewOfferingService(repo offering.OfferingRepository, fileService file.FileService) offering.OfferingService {
	return &OfferingServiceImpl{repo: repo, fileService: fileService}
}

// uploads tracks files stored during one request so a failed save can undo them.
type uploads struct {
	ctx   context.Context
	files file.FileService
	urls  []string
}

func (u *uploads) image(upload *storage.Upload) (*string, error) {
	if upload == nil {
		return nil, nil
	}
	url, err := u.files.UploadImage(u.ctx, file.FolderServices, *upload)
	if err != nil {
		return nil, err
	}
	u.urls = append(u.urls, url)
	return &url, nil
}

func (u *uploads) rollback() {
	for _, url := range u.urls {
		u.files.DeleteQuietly(u.ctx, url)
	}
}

// attachOfferedImages stores the i-th offered image on the i-th offered item.
// Items without a file keep whatever image they carried.
func (u *uploads) attachOfferedImages(items []offering.OfferedItem, files []*storage.Upload) error {
	for i := range items {
		if i >= len(files) || files[i] == nil {
			continue
		}
		url, err := u.image(files[i])
		if err != nil {
			return err
		}
		items[i].Image = url
	}
	return nil
}

func (s *OfferingServiceImpl) ensureSlugFree(ctx context.Context, slug, exceptID string) error {
	if slug == "" {
		return validator.ValidationErrors{{Field: "slug", Message: "Slug must contain letters or digits."}}
	}
	taken, err := s.repo.SlugTaken(ctx, slug, exceptID)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return &offering.SlugConflictError{Slug: slug}
	}
	return nil
}

// Create implements offering.OfferingService.
func (s *OfferingServiceImpl) Create(ctx context.Context, req offering.FormRequest) (offering.OfferingResponse, error) {
	if err := req.ValidateCreate(); err != nil {
		return offering.OfferingResponse{}, err
	}
	lists, err := req.DecodeLists()
	if err != nil {
		return offering.OfferingResponse{}, err
	}

	slug := req.CleanSlug()
	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return offering.OfferingResponse{}, err
	}

	o := offering.Offering{
		Title:           req.Title,
		Description:     offering.Optional(req.Description),
		Slug:            slug,
		HeroTitle:       offering.Optional(req.HeroTitle),
		HeroDescription: offering.Optional(req.HeroDescription),
		StrategySteps:   lists.StrategySteps,
		ServicesOffered: lists.ServicesOffered,
		TechnologyIDs:   lists.TechnologyIDs,
	}

	up := &uploads{ctx: ctx, files: s.fileService}
	if o.CardImage, err = up.image(req.CardImage); err != nil {
		up.rollback()
		return offering.OfferingResponse{}, err
	}
	if o.HeroImage, err = up.image(req.HeroImage); err != nil {
		up.rollback()
		return offering.OfferingResponse{}, err
	}
	if err := up.attachOfferedImages(o.ServicesOffered, req.OfferedImage); err != nil {
		up.rollback()
		return offering.OfferingResponse{}, err
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		up.rollback()
		return offering.OfferingResponse{}, err
	}

	slog.Info("Service page created", "service_id", created.ID, "slug", created.Slug)
	return offering.NewOfferingResponse(created), nil
}

// List implements offering.OfferingService.
func (s *OfferingServiceImpl) List(ctx context.Context) ([]offering.OfferingResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return offering.NewOfferingResponses(list), nil
}

// GetByID implements offering.OfferingService.
func (s *OfferingServiceImpl) GetByID(ctx context.Context, id string) (offering.OfferingResponse, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return offering.OfferingResponse{}, err
	}
	return offering.NewOfferingResponse(o), nil
}

// GetBySlug implements offering.OfferingService.
func (s *OfferingServiceImpl) GetBySlug(ctx context.Context, slug string) (offering.OfferingResponse, error) {
	o, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return offering.OfferingResponse{}, err
	}
	return offering.NewOfferingResponse(o), nil
}

// Update implements offering.OfferingService. Only sent fields change. Images
// that are no longer referenced after a successful save are deleted.
func (s *OfferingServiceImpl) Update(ctx context.Context, req offering.FormRequest) (offering.OfferingResponse, error) {
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return offering.OfferingResponse{}, err
	}
	lists, err := req.DecodeLists()
	if err != nil {
		return offering.OfferingResponse{}, err
	}

	next := current
	next.TechnologyIDs = technologyIDs(current)
	if title := offering.Optional(req.Title); title != nil {
		next.Title = *title
	}
	if req.Slug != "" {
		next.Slug = offering.Slugify(req.Slug)
		if next.Slug != current.Slug {
			if err := s.ensureSlugFree(ctx, next.Slug, current.ID); err != nil {
				return offering.OfferingResponse{}, err
			}
		}
	}
	if v := offering.Optional(req.Description); v != nil {
		next.Description = v
	}
	if v := offering.Optional(req.HeroTitle); v != nil {
		next.HeroTitle = v
	}
	if v := offering.Optional(req.HeroDescription); v != nil {
		next.HeroDescription = v
	}
	if lists.StrategySteps != nil {
		next.StrategySteps = lists.StrategySteps
	}
	if lists.ServicesOffered != nil {
		next.ServicesOffered = inheritImages(lists.ServicesOffered, current.ServicesOffered)
	} else {
		next.ServicesOffered = append([]offering.OfferedItem(nil), current.ServicesOffered...)
	}
	if lists.TechnologyIDs != nil {
		next.TechnologyIDs = lists.TechnologyIDs
	}

	up := &uploads{ctx: ctx, files: s.fileService}
	if req.CardImage != nil {
		if next.CardImage, err = up.image(req.CardImage); err != nil {
			up.rollback()
			return offering.OfferingResponse{}, err
		}
	}
	if req.HeroImage != nil {
		if next.HeroImage, err = up.image(req.HeroImage); err != nil {
			up.rollback()
			return offering.OfferingResponse{}, err
		}
	}
	if err := up.attachOfferedImages(next.ServicesOffered, req.OfferedImage); err != nil {
		up.rollback()
		return offering.OfferingResponse{}, err
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		up.rollback()
		return offering.OfferingResponse{}, err
	}

	for _, stale := range orphaned(current.Images(), updated.Images()) {
		s.fileService.DeleteQuietly(ctx, stale)
	}
	return offering.NewOfferingResponse(updated), nil
}

// Delete implements offering.OfferingService.
func (s *OfferingServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, img := range current.Images() {
		s.fileService.DeleteQuietly(ctx, img)
	}
	slog.Info("Service page deleted", "service_id", id)
	return nil
}

func technologyIDs(o offering.Offering) []string {
	if o.TechnologyIDs != nil {
		return o.TechnologyIDs
	}
	ids := make([]string, 0, len(o.Technologies))
	for _, t := range o.Technologies {
		ids = append(ids, t.ID)
	}
	return ids
}

// inheritImages gives items sent without an image the stored image at the same index.
func inheritImages(items, stored []offering.OfferedItem) []offering.OfferedItem {
	for i := range items {
		if items[i].Image == nil && i < len(stored) {
			items[i].Image = stored[i].Image
		}
	}
	return items
}

// orphaned returns the entries of before that are absent from after.
func orphaned(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, p := range after {
		keep[p] = struct{}{}
	}
	var out []string
	for _, p := range before {
		if _, ok := keep[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}
