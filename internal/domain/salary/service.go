package salary

import "context"

type SalaryService interface {
	GetDetails(ctx context.Context, userID, month string, year int) (DetailsResponse, error)
	DeriveAttendanceInputs(ctx context.Context, userID, month string, year int) (AttendanceInputs, error)
	CreateManual(ctx context.Context, req CreateSlipRequest) (SlipResponse, error)
	Publish(ctx context.Context, slipID string) (SlipResponse, error)
	ListForUser(ctx context.Context, userID string) ([]SlipResponse, error)
	History(ctx context.Context, month string, year int) (HistoryResponse, error)
	MySlips(ctx context.Context, userID string, month *string, year *int) ([]SlipResponse, error)
}
