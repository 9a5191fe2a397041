package job

import "errors"

var (
	ErrJobNotFound = errors.New("job not found with the provided ID")
	// ErrJobInactive is reported to the public site for closed openings.
	ErrJobInactive = errors.New("job opening not found or is no longer active")
)
