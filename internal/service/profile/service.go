package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
	"github.com/techdigi/hr-backoffice/internal/repository/postgresql"
	"github.com/techdigi/hr-backoffice/internal/service/file"
)

type ProfileServiceImpl struct {
	db database.Pool
	profile.ProfileRepository
	user.UserRepository
	fileService file.FileService

	loc *time.Location
	now func() time.Time
}

func NewProfileService(
	db database.Pool,
	profileRepo profile.ProfileRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
	loc *time.Location,
) profile.ProfileService {
	return &ProfileServiceImpl{
		db:                db,
		ProfileRepository: profileRepo,
		UserRepository:    userRepo,
		fileService:       fileService,
		loc:               loc,
		now:               time.Now,
	}
}

// GetMine implements profile.ProfileService.
func (s *ProfileServiceImpl) GetMine(ctx context.Context, userID string) (profile.ProfileResponse, error) {
	p, err := s.ProfileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return profile.EmptyProfileResponse(userID), nil
		}
		return profile.ProfileResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile.NewProfileResponse(p), nil
}

// GetByUserID implements profile.ProfileService.
func (s *ProfileServiceImpl) GetByUserID(ctx context.Context, userID string) (profile.ProfileResponse, error) {
	p, err := s.ProfileRepository.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}
	return profile.NewProfileResponse(p), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// apply copies every sent field onto p. A field sent empty clears the stored value.
func apply(p *profile.Profile, req profile.UpdateProfileRequest) {
	set := func(dst **string, src *string) {
		if src != nil {
			*dst = trimmed(src)
		}
	}
	set(&p.Address, req.Address)
	set(&p.City, req.City)
	set(&p.State, req.State)
	set(&p.Pincode, req.Pincode)
	set(&p.Designation, req.Designation)
	set(&p.PANNumber, req.PANNumber)
	set(&p.BankAccountNumber, req.BankAccountNumber)

	if req.DOB != nil {
		p.DOB = nil
		if d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(*req.DOB), time.UTC); err == nil {
			p.DOB = &d
		}
	}
}

// UpdateMine implements profile.ProfileService. The profile is created on first save,
// with today as the joining date.
func (s *ProfileServiceImpl) UpdateMine(ctx context.Context, req profile.UpdateProfileRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	current, err := s.ProfileRepository.GetByUserID(ctx, req.UserID)
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		current = profile.Profile{UserID: req.UserID, JoiningDate: calendar.StartOfDay(s.now(), s.loc)}
	case err != nil:
		return profile.ProfileResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	var oldImage, newImage string
	if current.ProfileImage != nil {
		oldImage = *current.ProfileImage
	}
	if req.Image != nil {
		newImage, err = s.fileService.UploadImage(ctx, file.FolderProfiles, *req.Image)
		if err != nil {
			return profile.ProfileResponse{}, err
		}
		current.ProfileImage = &newImage
	}
	apply(&current, req)

	var saved profile.Profile
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if req.Name != nil {
			if err := s.UserRepository.UpdateName(txCtx, req.UserID, strings.TrimSpace(*req.Name)); err != nil {
				return err
			}
		}
		var upsertErr error
		saved, upsertErr = s.ProfileRepository.Upsert(txCtx, current)
		return upsertErr
	})
	if err != nil {
		if newImage != "" {
			s.fileService.DeleteQuietly(ctx, newImage)
		}
		return profile.ProfileResponse{}, err
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		s.fileService.DeleteQuietly(ctx, oldImage)
	}
	return profile.NewProfileResponse(saved), nil
}
