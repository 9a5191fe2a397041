package profile

import "context"

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)

	// Upsert creates the profile on first write; JoiningDate is only set on insert.
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
