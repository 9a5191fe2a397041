package user

import "context"

// AdminService manages back-office accounts.
type AdminService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	CountEmployees(ctx context.Context) (CountResponse, error)
	CreateEmployee(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListAdmins(ctx context.Context) ([]UserResponse, error)
	CreateAdmin(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
