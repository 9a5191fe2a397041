package salary

import "context"

// SlipFilter narrows slip listings; nil fields are ignored.
type SlipFilter struct {
	UserID        *string
	Month         *string
	Year          *int
	PublishedOnly bool
}

type SlipRepository interface {
	// Create inserts a draft; ErrSlipExists when (user, month, year) is taken.
	Create(ctx context.Context, slip Slip) (Slip, error)
	GetByID(ctx context.Context, id string) (Slip, error)

	// MarkPublished flips Draft to Published atomically. It reports false when
	// no draft with that id exists.
	MarkPublished(ctx context.Context, id string) (Slip, bool, error)

	List(ctx context.Context, filter SlipFilter) ([]Slip, error)
}
