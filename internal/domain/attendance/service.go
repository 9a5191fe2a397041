package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	RequestLeave(ctx context.Context, req LeaveRequest) (AttendanceResponse, error)

	// GetToday returns nil when the user has not clocked in today.
	GetToday(ctx context.Context, userID string) (*AttendanceResponse, error)
	GetMyMonth(ctx context.Context, userID string, period Period) ([]AttendanceResponse, error)

	ListByDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
	ListForEmployee(ctx context.Context, userID string, filter EmployeeFilter) ([]AttendanceResponse, error)

	// AdminCorrect applies an unconditional administrative override.
	AdminCorrect(ctx context.Context, id string, patch CorrectionPatch) (AttendanceResponse, error)

	MonthlySummary(ctx context.Context, userID string, period Period) (MonthlySummary, error)

	ExportAll(ctx context.Context, period Period) (ExportFile, error)
	ExportEmployee(ctx context.Context, userID string, period Period) (ExportFile, error)

	// ReconcileAbsences marks everyone without a record for the previous working day Absent.
	ReconcileAbsences(ctx context.Context) (ReconcileResult, error)
}
