package offering

import (
	"errors"
	"fmt"
)

var (
	ErrOfferingNotFound = errors.New("service not found")
	ErrSlugExists       = errors.New("a service with this slug already exists")
	ErrInvalidJSONField = errors.New("invalid JSON format in strategySteps, servicesOffered, or technologies")
)

// SlugConflictError names the slug that is already taken.
type SlugConflictError struct {
	Slug string
}

func (e *SlugConflictError) Error() string {
	return fmt.Sprintf("A service with the slug '%s' already exists.", e.Slug)
}

func (e *SlugConflictError) Is(target error) bool {
	return target == ErrSlugExists
}
