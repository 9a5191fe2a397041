package letter

import "errors"

var (
	ErrRecipientNotFound = errors.New("user not found with the provided ID")
	ErrLetterNumberTaken = errors.New("letter number already issued")
)
