package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Dates are calendar days in the reference timezone.
type AttendanceRepository interface {
	// Create inserts a record; ErrDuplicateRecord when (user, date) exists.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate returns nil when the user has no record for date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// CompleteClockOut sets clock-out fields only while clock_out_time is still empty.
	CompleteClockOut(ctx context.Context, attendance Attendance) error

	ApplyPatch(ctx context.Context, id string, patch CorrectionPatch) (Attendance, error)

	ListByUser(ctx context.Context, userID string, filter RangeFilter) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Attendance, error)

	CountByStatus(ctx context.Context, userID string, from, to time.Time) (map[Status]int, error)

	// ListUserIDsByDate returns the users already holding a record for date.
	ListUserIDsByDate(ctx context.Context, date time.Time) ([]string, error)

	// CreateAbsences inserts each record independently, skipping existing (user, date)
	// pairs. It returns how many rows were written and the joined per-record failures.
	CreateAbsences(ctx context.Context, records []Attendance) (int, error)
}
