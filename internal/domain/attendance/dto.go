package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// ========================================
// LIFECYCLE DTOs
// ========================================

type ClockInRequest struct {
	UserID   string `json:"-"`
	WorkPlan string `json:"workPlan"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkPlan) {
		errs.Add("workPlan", "Work plan is required to clock in.")
	}

	return errs.Err()
}

type ClockOutRequest struct {
	UserID      string `json:"-"`
	WorkSummary string `json:"workSummary"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkSummary) {
		errs.Add("workSummary", "Work summary is required to clock out.")
	}

	return errs.Err()
}

type LeaveRequest struct {
	UserID string `json:"-"`
	Reason string `json:"reason"`
}

func (r *LeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "A reason is required to request leave.")
	}

	return errs.Err()
}

// CorrectionPatch is an administrative partial update. Nil fields are left untouched.
type CorrectionPatch struct {
	Status      *Status `json:"status,omitempty"`
	WorkPlan    *string `json:"workPlan,omitempty"`
	WorkSummary *string `json:"workSummary,omitempty"`
}

func (p *CorrectionPatch) Validate() error {
	var errs validator.ValidationErrors

	if p.Status != nil && !p.Status.Valid() {
		errs.Add("status", "status must be one of: Present, Absent, Leave, Holiday")
	}

	return errs.Err()
}

func (p *CorrectionPatch) IsEmpty() bool {
	return p.Status == nil && p.WorkPlan == nil && p.WorkSummary == nil
}

// ========================================
// QUERY DTOs
// ========================================

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%d-%d", p.Year, int(p.Month))
}

// ParsePeriod validates required year and month query values.
func ParsePeriod(yearStr, monthStr string) (Period, error) {
	var errs validator.ValidationErrors

	year, yerr := strconv.Atoi(strings.TrimSpace(yearStr))
	month, merr := strconv.Atoi(strings.TrimSpace(monthStr))
	if yerr != nil || year < 2000 || year > 2100 {
		errs.Add("year", "year is required and must be a valid year")
	}
	if merr != nil || month < 1 || month > 12 {
		errs.Add("month", "month is required and must be between 1 and 12")
	}
	if err := errs.Err(); err != nil {
		return Period{}, err
	}

	return Period{Year: year, Month: time.Month(month)}, nil
}

// ParseDate validates a required YYYY-MM-DD query value.
func ParseDate(dateStr string) (time.Time, error) {
	d, ok := validator.IsValidDate(strings.TrimSpace(dateStr))
	if !ok {
		return time.Time{}, validator.ValidationErrors{{Field: "date", Message: "date is required in YYYY-MM-DD format"}}
	}
	return d, nil
}

// RangeFilter bounds a record listing. Nil ends are open.
type RangeFilter struct {
	From        *time.Time
	To          *time.Time
	NewestFirst bool
}

// EmployeeFilter is the optional period on the admin per-employee listing.
type EmployeeFilter struct {
	Period *Period
}

// ParseEmployeeFilter accepts both year and month, or neither.
func ParseEmployeeFilter(yearStr, monthStr string) (EmployeeFilter, error) {
	if strings.TrimSpace(yearStr) == "" && strings.TrimSpace(monthStr) == "" {
		return EmployeeFilter{}, nil
	}
	p, err := ParsePeriod(yearStr, monthStr)
	if err != nil {
		return EmployeeFilter{}, err
	}
	return EmployeeFilter{Period: &p}, nil
}

func (f EmployeeFilter) Range(loc *time.Location) RangeFilter {
	r := RangeFilter{NewestFirst: true}
	if f.Period != nil {
		from, to := calendar.MonthRange(f.Period.Year, f.Period.Month, loc)
		r.From, r.To = &from, &to
	}
	return r
}

// ========================================
// RESPONSE DTOs
// ========================================

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user"`
	UserName        *string `json:"userName,omitempty"`
	UserEmail       *string `json:"userEmail,omitempty"`
	UserMobile      *string `json:"userMobile,omitempty"`
	Date            string  `json:"date"`
	ClockInTime     string  `json:"clockInTime"`
	ClockOutTime    *string `json:"clockOutTime,omitempty"`
	WorkPlan        string  `json:"workPlan"`
	WorkSummary     *string `json:"workSummary,omitempty"`
	Status          Status  `json:"status"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		UserName:        a.UserName,
		UserEmail:       a.UserEmail,
		UserMobile:      a.UserMobile,
		Date:            calendar.DateKey(a.Date),
		ClockInTime:     a.ClockInTime.Format(time.RFC3339),
		WorkPlan:        a.WorkPlan,
		WorkSummary:     a.WorkSummary,
		Status:          a.Status,
		DurationMinutes: a.DurationMinutes,
	}
	if a.ClockOutTime != nil {
		out := a.ClockOutTime.Format(time.RFC3339)
		resp.ClockOutTime = &out
	}
	return resp
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewAttendanceResponse(r))
	}
	return out
}

// TodayResponse is returned when no record exists for today.
type TodayResponse struct {
	Status string `json:"status"`
}

// ExportFile is a rendered spreadsheet ready to stream.
type ExportFile struct {
	Filename string
	Content  []byte
}

// ReconcileResult describes one absence reconciliation run.
type ReconcileResult struct {
	Target   time.Time
	Skipped  bool
	Reason   string
	Roster   int
	Marked   int
	Inserted int
}
