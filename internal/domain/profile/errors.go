package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found for this user")
	ErrPANExists       = errors.New("this PAN number is already registered")
	ErrInvalidDOB      = errors.New("invalid date of birth format, use YYYY-MM-DD")
)
