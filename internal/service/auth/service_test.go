package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/techdigi/hr-backoffice/internal/domain/auth"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/email"
	"github.com/techdigi/hr-backoffice/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

type memoryUsers struct {
	user.UserRepository
	byID map[string]*user.User
	seq  int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[string]*user.User{}}
}

func (m *memoryUsers) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
		if existing.Mobile == u.Mobile {
			return user.User{}, user.ErrUserMobileExists
		}
	}
	m.seq++
	u.ID = fmt.Sprintf("u%d", m.seq)
	u.CreatedAt = time.Now()
	m.byID[u.ID] = &u
	return u, nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := m.byID[id]; ok {
		return *u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUsers) UpdatePassword(ctx context.Context, id, hash string) error {
	u, ok := m.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.PasswordResetToken, u.PasswordResetExpires = nil, nil
	return nil
}

func (m *memoryUsers) SetPasswordReset(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	u := m.byID[id]
	u.PasswordResetToken, u.PasswordResetExpires = &tokenHash, &expiresAt
	return nil
}

func (m *memoryUsers) ClearPasswordReset(ctx context.Context, id string) error {
	if u, ok := m.byID[id]; ok {
		u.PasswordResetToken, u.PasswordResetExpires = nil, nil
	}
	return nil
}

func (m *memoryUsers) GetByPasswordResetToken(ctx context.Context, tokenHash string, now time.Time) (user.User, error) {
	for _, u := range m.byID {
		if u.PasswordResetToken != nil && *u.PasswordResetToken == tokenHash && u.PasswordResetExpires.After(now) {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUsers) PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for _, u := range m.byID {
		if u.PasswordResetExpires != nil && !u.PasswordResetExpires.After(now) {
			u.PasswordResetToken, u.PasswordResetExpires = nil, nil
			n++
		}
	}
	return n, nil
}

// recordingMail captures the reset link handed to the mailer.
type recordingMail struct {
	email.EmailService
	link string
	err  error
}

func (r *recordingMail) SendPasswordReset(ctx context.Context, to, name, link string, validFor time.Duration) error {
	r.link = link
	return r.err
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestAuth() (*AuthServiceImpl, *memoryUsers, *recordingMail, *clock) {
	users := newMemoryUsers()
	mail := &recordingMail{}
	c := &clock{t: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewAuthService(users, jwt.NewJWTService(testSecret, time.Hour, "token", false), mail, "https://hr.example.com/").(*AuthServiceImpl)
	svc.now = c.now
	return svc, users, mail, c
}

func signupRequest() user.CreateUserRequest {
	return user.CreateUserRequest{Name: "Asha Rao", Email: "Asha@Example.com", Mobile: "9876543210", Password: "secret1"}
}

func TestSignup(t *testing.T) {
	svc, users, _, _ := newTestAuth()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, string(user.RoleUser), resp.Role)

	stored := users.byID[resp.ID]
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	_, err = svc.Signup(ctx, signupRequest())
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestSignup_IgnoresRequestedRole(t *testing.T) {
	svc, _, _, _ := newTestAuth()

	req := signupRequest()
	req.Role = string(user.RoleAdmin)
	resp, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleUser), resp.Role)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestAuth()
	ctx := context.Background()
	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     auth.LoginRequest
		wantErr error
	}{
		{"ok", auth.LoginRequest{Email: "asha@example.com", Password: "secret1"}, nil},
		{"wrong password", auth.LoginRequest{Email: "asha@example.com", Password: "nope"}, auth.ErrInvalidCredentials},
		{"unknown email", auth.LoginRequest{Email: "ghost@example.com", Password: "secret1"}, auth.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, users, mail, c := newTestAuth()
	ctx := context.Background()
	signed, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "asha@example.com"}))
	require.True(t, strings.HasPrefix(mail.link, "https://hr.example.com/reset-password/"))
	token := strings.TrimPrefix(mail.link, "https://hr.example.com/reset-password/")
	assert.Len(t, token, 2*resetTokenBytes)

	stored := users.byID[signed.ID]
	require.NotNil(t, stored.PasswordResetToken)
	assert.NotEqual(t, token, *stored.PasswordResetToken, "only the hash is stored")
	assert.Equal(t, c.t.Add(ResetTokenTTL), *stored.PasswordResetExpires)

	resp, err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, Password: "newpass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "newpass1"})
	assert.NoError(t, err)

	// consumed
	_, err = svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, Password: "another1"})
	assert.ErrorIs(t, err, auth.ErrInvalidResetToken)
}

func TestResetPassword_Expired(t *testing.T) {
	svc, _, mail, c := newTestAuth()
	ctx := context.Background()
	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "asha@example.com"}))
	token := mail.link[strings.LastIndex(mail.link, "/")+1:]

	c.t = c.t.Add(ResetTokenTTL + time.Second)
	_, err = svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, Password: "newpass1"})
	assert.ErrorIs(t, err, auth.ErrInvalidResetToken)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestAuth()

	err := svc.ForgotPassword(context.Background(), auth.ForgotPasswordRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestForgotPassword_SendFailureClearsToken(t *testing.T) {
	svc, users, mail, _ := newTestAuth()
	ctx := context.Background()
	signed, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	mail.err = errors.New("smtp down")

	err = svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "asha@example.com"})
	assert.ErrorIs(t, err, auth.ErrEmailSendFailed)
	assert.Nil(t, users.byID[signed.ID].PasswordResetToken)
}

func TestPurgeExpiredResetTokens(t *testing.T) {
	svc, users, _, c := newTestAuth()
	ctx := context.Background()
	signed, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "asha@example.com"}))

	c.t = c.t.Add(time.Hour)
	require.NoError(t, svc.PurgeExpiredResetTokens(ctx))
	assert.Nil(t, users.byID[signed.ID].PasswordResetToken)
}

func TestMe(t *testing.T) {
	svc, _, _, _ := newTestAuth()
	ctx := context.Background()
	signed, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	me, err := svc.Me(ctx, signed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", me.Name)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
