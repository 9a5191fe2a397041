package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
	"github.com/techdigi/hr-backoffice/internal/service/file/filetest"
)

type memoryUsers struct {
	user.UserRepository
	created   []user.User
	deleted   []string
	employees []user.Employee
	admins    []user.User
}

func (m *memoryUsers) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range m.created {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	u.ID = "u-" + u.Email
	u.CreatedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	m.created = append(m.created, u)
	return u, nil
}

func (m *memoryUsers) Delete(ctx context.Context, id string) error {
	if id == "missing" {
		return user.ErrUserNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memoryUsers) ListEmployees(ctx context.Context) ([]user.Employee, error) {
	return m.employees, nil
}

func (m *memoryUsers) CountEmployees(ctx context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

func (m *memoryUsers) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return m.admins, nil
}

type memoryProfiles struct {
	profile.ProfileRepository
	byUser map[string]profile.Profile
}

func (m *memoryProfiles) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	p, ok := m.byUser[userID]
	if !ok {
		return profile.Profile{}, profile.ErrProfileNotFound
	}
	return p, nil
}

func newTestService() (*EmployeeServiceImpl, *memoryUsers, *memoryProfiles, *filetest.Fake) {
	users := &memoryUsers{}
	profiles := &memoryProfiles{byUser: map[string]profile.Profile{}}
	files := filetest.New()
	svc := NewEmployeeService(users, profiles, files).(*EmployeeServiceImpl)
	return svc, users, profiles, files
}

func TestCreateEmployee(t *testing.T) {
	svc, users, _, _ := newTestService()

	resp, err := svc.CreateEmployee(context.Background(), user.CreateUserRequest{
		Name:     "  Asha Rao ",
		Email:    "Asha@Example.com",
		Mobile:   "9876543210",
		Password: "secret12",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", resp.Name)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, "user", resp.Role)
	require.Len(t, users.created, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created[0].PasswordHash), []byte("secret12")))

	_, err = svc.CreateEmployee(context.Background(), user.CreateUserRequest{
		Name: "Asha", Email: "asha@example.com", Mobile: "9876543210", Password: "secret12",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, users, _, _ := newTestService()

	_, err := svc.CreateEmployee(context.Background(), user.CreateUserRequest{
		Name: "Asha", Email: "not-an-email", Mobile: "9876543210", Password: "123", Role: "owner",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
	assert.Empty(t, users.created)
}

func TestCreateAdminForcesRole(t *testing.T) {
	svc, users, _, _ := newTestService()

	resp, err := svc.CreateAdmin(context.Background(), user.CreateUserRequest{
		Name: "Ops", Email: "ops@example.com", Mobile: "9000000000", Password: "secret12", Role: "user",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, user.RoleAdmin, users.created[0].Role)
}

func TestDeleteEmployeeRemovesProfileImage(t *testing.T) {
	svc, users, profiles, files := newTestService()
	image := "/uploads/profiles/profiles-1-asha.png"
	profiles.byUser["emp-1"] = profile.Profile{UserID: "emp-1", ProfileImage: &image}

	require.NoError(t, svc.DeleteEmployee(context.Background(), "emp-1"))
	assert.Equal(t, []string{"emp-1"}, users.deleted)
	assert.Equal(t, []string{image}, files.Deleted)

	// No profile yet is fine.
	require.NoError(t, svc.DeleteEmployee(context.Background(), "emp-2"))
	assert.Len(t, files.Deleted, 1)

	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), "missing"), user.ErrUserNotFound)
}

func TestListEmployeesJoiningDate(t *testing.T) {
	svc, users, _, _ := newTestService()
	joined := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	users.employees = []user.Employee{
		{ID: "emp-1", Name: "Asha", JoiningDate: &joined, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "emp-2", Name: "Ravi", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2023-04-10", list[0].JoiningDate)
	assert.Equal(t, "2024-01-02", list[1].JoiningDate)

	count, err := svc.CountEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)
}
