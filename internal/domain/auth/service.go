package auth

import (
	"context"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
)

type AuthService interface {
	Signup(ctx context.Context, req user.CreateUserRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (TokenResponse, error)
	Me(ctx context.Context, userID string) (user.UserResponse, error)
	PurgeExpiredResetTokens(ctx context.Context) error
}
