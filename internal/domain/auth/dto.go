package auth

import (
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	return errs.Err()
}

type ResetPasswordRequest struct {
	Token    string `json:"-"`
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs.Add("token", "reset token is required")
	}
	if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}

	return errs.Err()
}

// TokenResponse is returned by signup, login and password reset.
type TokenResponse struct {
	user.UserResponse
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
