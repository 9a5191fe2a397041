package technology

import "errors"

var (
	ErrTechnologyNotFound   = errors.New("technology not found")
	ErrTechnologyNameExists = errors.New("a technology with this name already exists")
)
