package http

import (
	"log/slog"
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

// EmployeeHandler serves the admin roster of employees and operators.
type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListAdmins(w http.ResponseWriter, r *http.Request)
	CreateAdmin(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	adminService user.AdminService
}

func NewEmployeeHandler(adminService user.AdminService) EmployeeHandler {
	return &employeeHandlerImpl{adminService: adminService}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.adminService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, employees)
}

// Count implements EmployeeHandler.
func (h *employeeHandlerImpl) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.adminService.CountEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, count)
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.adminService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created by admin", "user_id", created.ID)
	response.Created(w, "Employee created successfully", created)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee and all related data deleted successfully", map[string]string{"id": id})
}

// ListAdmins implements EmployeeHandler.
func (h *employeeHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.ListAdmins(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, admins)
}

// CreateAdmin implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.adminService.CreateAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin account created", "user_id", created.ID)
	response.Created(w, "Admin created successfully", created)
}
