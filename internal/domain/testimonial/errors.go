package testimonial

import "errors"

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrAvatarRequired      = errors.New("avatar image is required")
)
