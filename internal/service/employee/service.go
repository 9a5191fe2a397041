package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	authservice "github.com/techdigi/hr-backoffice/internal/service/auth"
	"github.com/techdigi/hr-backoffice/internal/service/file"
)

// EmployeeServiceImpl manages the roster of employee and admin accounts.
type EmployeeServiceImpl struct {
	userRepo    user.UserRepository
	profileRepo profile.ProfileRepository
	fileService file.FileService
}

func NewEmployeeService(
	userRepo user.UserRepository,
	profileRepo profile.ProfileRepository,
	fileService file.FileService,
) user.AdminService {
	return &EmployeeServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		fileService: fileService,
	}
}

// ListEmployees implements user.AdminService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]user.EmployeeResponse, error) {
	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]user.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, user.NewEmployeeResponse(e))
	}
	return out, nil
}

// CountEmployees implements user.AdminService.
func (s *EmployeeServiceImpl) CountEmployees(ctx context.Context) (user.CountResponse, error) {
	n, err := s.userRepo.CountEmployees(ctx)
	if err != nil {
		return user.CountResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}
	return user.CountResponse{Count: n}, nil
}

func (s *EmployeeServiceImpl) create(ctx context.Context, req user.CreateUserRequest, role user.Role) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := authservice.HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Mobile:       strings.TrimSpace(req.Mobile),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.Info("Account created", "user_id", created.ID, "role", role)
	return user.NewUserResponse(created), nil
}

// CreateEmployee implements user.AdminService. Role defaults to user.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	role := user.RoleUser
	if req.Role != "" {
		role = user.Role(req.Role)
	}
	return s.create(ctx, req, role)
}

// CreateAdmin implements user.AdminService.
func (s *EmployeeServiceImpl) CreateAdmin(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.create(ctx, req, user.RoleAdmin)
}

// DeleteEmployee implements user.AdminService. Profile, attendance and slips go with the
// user through foreign-key cascades; the profile image is removed from storage afterwards.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	var image string
	p, err := s.profileRepo.GetByUserID(ctx, id)
	switch {
	case err == nil:
		if p.ProfileImage != nil {
			image = *p.ProfileImage
		}
	case !errors.Is(err, profile.ErrProfileNotFound):
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	if image != "" {
		s.fileService.DeleteQuietly(ctx, image)
	}
	slog.Info("Employee deleted", "user_id", id)
	return nil
}

// ListAdmins implements user.AdminService.
func (s *EmployeeServiceImpl) ListAdmins(ctx context.Context) ([]user.UserResponse, error) {
	admins, err := s.userRepo.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	out := make([]user.UserResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, user.NewUserResponse(a))
	}
	return out, nil
}
