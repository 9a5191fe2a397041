package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("user with this email already exists")
	ErrUserMobileExists        = errors.New("user with this mobile number already exists")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrInsufficientPermissions = errors.New("you do not have permission to perform this action")
)
