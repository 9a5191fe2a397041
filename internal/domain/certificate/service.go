package certificate

import "context"

type CertificateService interface {
	Submit(ctx context.Context, req SubmitRequest) (CertificateResponse, error)
	MyRequests(ctx context.Context, userID string) ([]CertificateResponse, error)
	ListAll(ctx context.Context) ([]CertificateResponse, error)
	Review(ctx context.Context, req ReviewRequest) (CertificateResponse, error)
	Delete(ctx context.Context, id string) error
	Verify(ctx context.Context, req VerifyRequest) (CertificateResponse, error)
}
