package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("you have already clocked in today")
	ErrNotClockedIn       = errors.New("you have not clocked in yet today, cannot clock out")
	ErrAlreadyClockedOut  = errors.New("you have already clocked out today")
	ErrAlreadyMarked      = errors.New("attendance already marked for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoRecordsForPeriod = errors.New("no attendance records found for this employee in the selected period")

	// ErrDuplicateRecord is raised by storage when (user, date) already exists.
	ErrDuplicateRecord = errors.New("attendance record already exists for this user and date")
)

// AlreadyMarkedError carries the status of the record that blocked a leave request.
type AlreadyMarkedError struct {
	Status Status
}

func (e *AlreadyMarkedError) Error() string {
	return fmt.Sprintf("You have already marked your attendance as '%s' for today.", e.Status)
}

func (e *AlreadyMarkedError) Is(target error) bool {
	return target == ErrAlreadyMarked
}
