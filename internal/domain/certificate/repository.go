package certificate

import "context"

type CertificateRepository interface {
	Create(ctx context.Context, c Certificate) (Certificate, error)
	GetByID(ctx context.Context, id string) (Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]Certificate, error)
	ListAll(ctx context.Context) ([]Certificate, error)
	UpdateReview(ctx context.Context, c Certificate) (Certificate, error)
	Delete(ctx context.Context, id string) error

	// FindApproved matches the number exactly and the name case-insensitively.
	FindApproved(ctx context.Context, number, name string) (Certificate, error)
}
