package user

import (
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// EmployeeResponse is a roster row for the admin employee list.
type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Mobile       string  `json:"mobile"`
	Designation  *string `json:"designation"`
	ProfileImage *string `json:"profileImage"`
	JoiningDate  string  `json:"joiningDate"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	joined := e.CreatedAt
	if e.JoiningDate != nil {
		joined = *e.JoiningDate
	}
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Mobile:       e.Mobile,
		Designation:  e.Designation,
		ProfileImage: e.ProfileImage,
		JoiningDate:  joined.Format(time.DateOnly),
	}
}

// CreateUserRequest is used by signup and by admins creating employees or admins.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if validator.IsEmpty(r.Mobile) {
		errs.Add("mobile", "mobile is required")
	} else if !validator.IsValidMobile(r.Mobile) {
		errs.Add("mobile", "mobile must be at most 10 digits")
	}

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(RoleUser), string(RoleAdmin)}) {
		errs.Add("role", "role must be one of: user, admin")
	}

	return errs.Err()
}

// CountResponse wraps a scalar count.
type CountResponse struct {
	Count int64 `json:"count"`
}
