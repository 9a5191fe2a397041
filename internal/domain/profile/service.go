package profile

import "context"

type ProfileService interface {
	GetMine(ctx context.Context, userID string) (ProfileResponse, error)
	UpdateMine(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
	GetByUserID(ctx context.Context, userID string) (ProfileResponse, error)
}
