package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/auth"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/email"
	"github.com/techdigi/hr-backoffice/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	// PasswordCost is the bcrypt work factor for stored passwords.
	PasswordCost = 10

	ResetTokenTTL   = 10 * time.Minute
	resetTokenBytes = 20
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	email.EmailService

	clientURL string
	now       func() time.Time
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, emailService email.EmailService, clientURL string) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		EmailService:   emailService,
		clientURL:      strings.TrimRight(clientURL, "/"),
		now:            time.Now,
	}
}

// HashPassword hashes a plaintext password with PasswordCost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (a *AuthServiceImpl) issue(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateToken(u.ID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.TokenResponse{
		UserResponse: user.NewUserResponse(u),
		Token:        token,
		ExpiresAt:    expiresAt,
	}, nil
}

// Signup implements auth.AuthService. Self-registered accounts are always employees.
func (a *AuthServiceImpl) Signup(ctx context.Context, req user.CreateUserRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Mobile:       strings.TrimSpace(req.Mobile),
		PasswordHash: hash,
		Role:         user.RoleUser,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issue(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(userData)
}

// Logout implements auth.AuthService. Tokens are stateless; only a pending reset is dropped.
func (a *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := a.UserRepository.ClearPasswordReset(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}
	return nil
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := a.UserRepository.SetPasswordReset(ctx, userData.ID, hashResetToken(token), a.now().Add(ResetTokenTTL)); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s", a.clientURL, token)
	if err := a.EmailService.SendPasswordReset(ctx, userData.Email, userData.Name, link, ResetTokenTTL); err != nil {
		slog.Error("Failed to send password reset email", "user_id", userData.ID, "error", err)
		if clearErr := a.UserRepository.ClearPasswordReset(ctx, userData.ID); clearErr != nil {
			slog.Error("Failed to clear reset token", "user_id", userData.ID, "error", clearErr)
		}
		return auth.ErrEmailSendFailed
	}

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByPasswordResetToken(ctx, hashResetToken(req.Token), a.now())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidResetToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up reset token: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := a.UserRepository.UpdatePassword(ctx, userData.ID, hash); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to update password: %w", err)
	}

	return a.issue(userData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(userData), nil
}

// PurgeExpiredResetTokens implements auth.AuthService.
func (a *AuthServiceImpl) PurgeExpiredResetTokens(ctx context.Context) error {
	n, err := a.UserRepository.PurgeExpiredResetTokens(ctx, a.now())
	if err != nil {
		return fmt.Errorf("failed to purge reset tokens: %w", err)
	}
	if n > 0 {
		slog.Info("Cron: Cleared expired password reset tokens", "count", n)
	}
	return nil
}
