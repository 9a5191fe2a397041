package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusHoliday Status = "Holiday"
)

// StatusNotClockedIn is reported by the "today" view when no record exists. It is never stored.
const StatusNotClockedIn = "NotClockedIn"

// AutoAbsentNote is the work plan written on records created by the absence reconciliation.
const AutoAbsentNote = "Auto-marked as Absent Because Employee not Mark Attendance!"

// LeaveNotePrefix precedes the employee's reason on leave records.
const LeaveNotePrefix = "Leave Reason: "

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusHoliday:
		return true
	}
	return false
}

// Attendance is the one record a user may hold for a calendar day.
type Attendance struct {
	ID              string
	UserID          string
	Date            time.Time
	ClockInTime     time.Time
	ClockOutTime    *time.Time
	WorkPlan        string
	WorkSummary     *string
	Status          Status
	DurationMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	UserName   *string
	UserEmail  *string
	UserMobile *string
}

func (a *Attendance) IsClockedOut() bool {
	return a.ClockOutTime != nil
}

// HasSentinelClockIn reports a record whose clock-in is the day itself, as
// written by the absence reconciliation. Such a record has no real clock-in time,
// even after an admin changes its status.
func (a *Attendance) HasSentinelClockIn() bool {
	return a.ClockInTime.Equal(a.Date)
}

// DurationMinutes rounds the worked interval to the nearest minute.
func DurationMinutes(in, out time.Time) int {
	return int(math.Round(float64(out.Sub(in).Milliseconds()) / 60000))
}

// MonthlySummary has a fixed shape; Leave is counted as Absent.
type MonthlySummary struct {
	Present int `json:"Present"`
	Absent  int `json:"Absent"`
	Holiday int `json:"Holiday"`
}

// Summarize folds raw per-status counts into a MonthlySummary.
func Summarize(counts map[Status]int) MonthlySummary {
	return MonthlySummary{
		Present: counts[StatusPresent],
		Absent:  counts[StatusAbsent] + counts[StatusLeave],
		Holiday: counts[StatusHoliday],
	}
}
