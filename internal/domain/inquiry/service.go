package inquiry

import "context"

type InquiryService interface {
	Submit(ctx context.Context, req SubmitRequest) error
	List(ctx context.Context) ([]InquiryResponse, error)
	Reply(ctx context.Context, req ReplyRequest) error
	Delete(ctx context.Context, id string) error
}
