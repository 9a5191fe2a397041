package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error

	SetPasswordReset(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	ClearPasswordReset(ctx context.Context, id string) error
	GetByPasswordResetToken(ctx context.Context, tokenHash string, now time.Time) (User, error)
	PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)

	// ListEmployeeIDs returns ids of every user holding RoleUser.
	ListEmployeeIDs(ctx context.Context) ([]string, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	CountEmployees(ctx context.Context) (int64, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
