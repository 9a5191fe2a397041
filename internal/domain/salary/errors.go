package salary

import "errors"

var (
	ErrSlipNotFound        = errors.New("salary slip not found")
	ErrSlipExists          = errors.New("a salary slip for this employee for this month and year already exists")
	ErrAlreadyPublished    = errors.New("this salary slip is already published")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrProfileIncomplete   = errors.New("employee profile not found, please ask the employee to complete their profile")
	ErrInvalidPeriod       = errors.New("invalid salary period")
	ErrNegativeAmount      = errors.New("amounts cannot be negative")
	ErrPeriodFilterPartial = errors.New("month and year must be provided together")
)
