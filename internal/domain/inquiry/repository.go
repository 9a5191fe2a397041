package inquiry

import "context"

type InquiryRepository interface {
	Create(ctx context.Context, q Inquiry) (Inquiry, error)
	GetByID(ctx context.Context, id string) (Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	MarkReplied(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
