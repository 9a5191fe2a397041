package testimonial

import "time"

type Testimonial struct {
	ID          string
	Name        string
	Review      string
	Rating      int
	Avatar      string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
