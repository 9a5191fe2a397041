package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("not authorized, token failed")
	ErrTokenMissing       = errors.New("not authorized, no token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidResetToken  = errors.New("token is invalid or has expired")
	ErrEmailSendFailed    = errors.New("there was an error sending the email, try again later")
)
