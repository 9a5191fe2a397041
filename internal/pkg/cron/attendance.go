package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/notify"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	notifier          notify.Notifier
	hour              int
	minute            int
	loc               *time.Location
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	notifier notify.Notifier,
	hour, minute int,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		notifier:          notifier,
		hour:              hour,
		minute:            minute,
		loc:               loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("mark_absent_employees", j.hour, j.minute, j.loc, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees runs the absence reconciliation and reports the outcome.
// Failures are returned to the scheduler for logging; nothing is retried before
// the next scheduled run.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	slog.Info("Cron: Starting mark absent employees job")

	result, err := j.attendanceService.ReconcileAbsences(ctx)
	day := calendar.DateKey(result.Target)

	if err != nil {
		msg := fmt.Sprintf("Absence reconciliation for %s failed after %d of %d records: %v", day, result.Inserted, result.Marked, err)
		if nerr := j.notifier.Error(ctx, msg); nerr != nil {
			slog.Error("Cron: Failed to notify reconciliation failure", "error", nerr)
		}
		return fmt.Errorf("mark absent employees for %s: %w", day, err)
	}

	if result.Skipped {
		slog.Info("Cron: Skipped mark absent employees", "date", day, "reason", result.Reason)
		return nil
	}

	slog.Info("Cron: Marked absent employees", "date", day, "count", result.Inserted, "roster", result.Roster)
	msg := fmt.Sprintf("Absence reconciliation for %s: %d of %d employees marked Absent", day, result.Inserted, result.Roster)
	if nerr := j.notifier.Info(ctx, msg); nerr != nil {
		slog.Error("Cron: Failed to notify reconciliation result", "error", nerr)
	}
	return nil
}
