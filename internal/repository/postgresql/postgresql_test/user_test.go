package postgresql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/repository/postgresql"
)

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := postgresql.NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Asha", "asha@example.com", "9876543210", "hash", user.RoleUser).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), user.User{
		Name: "Asha", Email: "asha@example.com", Mobile: "9876543210", PasswordHash: "hash", Role: user.RoleUser,
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestUserRepository_CreateDuplicateMobile(t *testing.T) {
	mock := newMockPool(t)
	repo := postgresql.NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_mobile_key"})

	_, err := repo.Create(context.Background(), user.User{Name: "Ravi", Email: "ravi@example.com", Mobile: "9876543210"})
	assert.ErrorIs(t, err, user.ErrUserMobileExists)
}

func TestUserRepository_CountEmployees(t *testing.T) {
	mock := newMockPool(t)
	repo := postgresql.NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE role = $1")).
		WithArgs(user.RoleUser).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestUserRepository_ListEmployeeIDs(t *testing.T) {
	mock := newMockPool(t)
	repo := postgresql.NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE role = $1")).
		WithArgs(user.RoleUser).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("u1").AddRow("u2"))

	ids, err := repo.ListEmployeeIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, ids)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := postgresql.NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_PurgeExpiredResetTokens(t *testing.T) {
	mock := newMockPool(t)
	repo := postgresql.NewUserRepository(mock)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("SET password_reset_token = NULL, password_reset_expires = NULL")).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.PurgeExpiredResetTokens(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
