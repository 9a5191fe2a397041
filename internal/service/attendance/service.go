package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/report"
)

// Skip reasons reported by ReconcileAbsences.
const (
	SkipWeekend         = "weekend"
	SkipAlreadyRunning  = "previous run still in progress"
	SkipAlreadyFinished = "already reconciled"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository

	loc *time.Location
	now func() time.Time

	reconcileMu    sync.Mutex
	markerMu       sync.Mutex
	lastReconciled string
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// today is computed once per operation so every comparison uses the same day.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now()
	return now, calendar.StartOfDay(now, s.loc)
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now, today := s.today()

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:      req.UserID,
		Date:        today,
		ClockInTime: now,
		WorkPlan:    req.WorkPlan,
		Status:      attendance.StatusPresent,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.NewAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now, today := s.today()

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.IsClockedOut() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	minutes := attendance.DurationMinutes(record.ClockInTime, now)
	summary := req.WorkSummary
	record.ClockOutTime = &now
	record.WorkSummary = &summary
	record.DurationMinutes = &minutes

	if err := s.AttendanceRepository.CompleteClockOut(ctx, *record); err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedOut) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}

	return attendance.NewAttendanceResponse(*record), nil
}

// RequestLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RequestLeave(ctx context.Context, req attendance.LeaveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now, today := s.today()

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, &attendance.AlreadyMarkedError{Status: existing.Status}
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:      req.UserID,
		Date:        today,
		ClockInTime: now,
		WorkPlan:    attendance.LeaveNotePrefix + req.Reason,
		Status:      attendance.StatusLeave,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.AttendanceResponse{}, s.alreadyMarked(ctx, req.UserID, today)
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return attendance.NewAttendanceResponse(created), nil
}

// alreadyMarked reports the status of a record written by a concurrent request.
func (s *AttendanceServiceImpl) alreadyMarked(ctx context.Context, userID string, day time.Time) error {
	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil || existing == nil {
		return attendance.ErrAlreadyMarked
	}
	return &attendance.AlreadyMarkedError{Status: existing.Status}
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	_, today := s.today()

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	resp := attendance.NewAttendanceResponse(*record)
	return &resp, nil
}

// GetMyMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyMonth(ctx context.Context, userID string, period attendance.Period) ([]attendance.AttendanceResponse, error) {
	from, to := calendar.MonthRange(period.Year, period.Month, s.loc)

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, attendance.RangeFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewAttendanceResponses(records), nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return attendance.NewAttendanceResponses(records), nil
}

// ListForEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForEmployee(ctx context.Context, userID string, filter attendance.EmployeeFilter) ([]attendance.AttendanceResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, filter.Range(s.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to list employee attendance: %w", err)
	}
	return attendance.NewAttendanceResponses(records), nil
}

// AdminCorrect implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AdminCorrect(ctx context.Context, id string, patch attendance.CorrectionPatch) (attendance.AttendanceResponse, error) {
	if err := patch.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// an override with nothing to change just reports the record
	if patch.IsEmpty() {
		current, err := s.AttendanceRepository.GetByID(ctx, id)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.NewAttendanceResponse(current), nil
	}

	updated, err := s.AttendanceRepository.ApplyPatch(ctx, id, patch)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	slog.Info("Attendance corrected by admin", "attendance_id", id, "user_id", updated.UserID)
	return attendance.NewAttendanceResponse(updated), nil
}

// MonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, userID string, period attendance.Period) (attendance.MonthlySummary, error) {
	from, to := calendar.MonthRange(period.Year, period.Month, s.loc)

	counts, err := s.AttendanceRepository.CountByStatus(ctx, userID, from, to)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to count attendance: %w", err)
	}
	return attendance.Summarize(counts), nil
}

func (s *AttendanceServiceImpl) toEntry(a attendance.Attendance) report.Entry {
	e := report.Entry{
		UserID:          a.UserID,
		Date:            a.Date,
		Status:          string(a.Status),
		DurationMinutes: a.DurationMinutes,
		WorkPlan:        a.WorkPlan,
		WorkSummary:     a.WorkSummary,
	}
	if a.UserName != nil {
		e.Name = *a.UserName
	}
	if a.UserEmail != nil {
		e.Email = *a.UserEmail
	}
	if !a.HasSentinelClockIn() {
		in := a.ClockInTime.In(s.loc)
		e.ClockIn = &in
	}
	if a.ClockOutTime != nil {
		out := a.ClockOutTime.In(s.loc)
		e.ClockOut = &out
	}
	return e
}

// ExportAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAll(ctx context.Context, period attendance.Period) (attendance.ExportFile, error) {
	from, to := calendar.MonthRange(period.Year, period.Month, s.loc)

	records, err := s.AttendanceRepository.ListBetween(ctx, from, to)
	if err != nil {
		return attendance.ExportFile{}, fmt.Errorf("failed to load attendance for export: %w", err)
	}

	entries := make([]report.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, s.toEntry(r))
	}

	content, err := report.Matrix(entries, period.Year, period.Month)
	if err != nil {
		return attendance.ExportFile{}, fmt.Errorf("failed to render attendance matrix: %w", err)
	}
	return attendance.ExportFile{
		Filename: report.MatrixFilename(period.Year, period.Month),
		Content:  content,
	}, nil
}

// ExportEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportEmployee(ctx context.Context, userID string, period attendance.Period) (attendance.ExportFile, error) {
	from, to := calendar.MonthRange(period.Year, period.Month, s.loc)

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, attendance.RangeFilter{From: &from, To: &to})
	if err != nil {
		return attendance.ExportFile{}, fmt.Errorf("failed to load attendance for export: %w", err)
	}
	if len(records) == 0 {
		return attendance.ExportFile{}, attendance.ErrNoRecordsForPeriod
	}

	entries := make([]report.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, s.toEntry(r))
	}

	content, err := report.Single(entries)
	if err != nil {
		return attendance.ExportFile{}, fmt.Errorf("failed to render attendance report: %w", err)
	}
	return attendance.ExportFile{
		Filename: report.SingleFilename(entries[0].Name, period.Year, period.Month),
		Content:  content,
	}, nil
}

// ReconcileAbsences implements attendance.AttendanceService. A run that finds
// another still in flight, or a target day already reconciled, is skipped.
func (s *AttendanceServiceImpl) ReconcileAbsences(ctx context.Context) (attendance.ReconcileResult, error) {
	target := calendar.Yesterday(s.now(), s.loc)
	key := calendar.DateKey(target)
	result := attendance.ReconcileResult{Target: target}

	if !s.reconcileMu.TryLock() {
		result.Skipped, result.Reason = true, SkipAlreadyRunning
		return result, nil
	}
	defer s.reconcileMu.Unlock()

	if s.reconciled(key) {
		result.Skipped, result.Reason = true, SkipAlreadyFinished
		return result, nil
	}
	if calendar.IsWeekend(target) {
		result.Skipped, result.Reason = true, SkipWeekend
		s.markReconciled(key)
		return result, nil
	}

	roster, err := s.UserRepository.ListEmployeeIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to load employee roster: %w", err)
	}
	present, err := s.AttendanceRepository.ListUserIDsByDate(ctx, target)
	if err != nil {
		return result, fmt.Errorf("failed to load attendance for %s: %w", key, err)
	}
	result.Roster = len(roster)

	marked := make(map[string]struct{}, len(present))
	for _, id := range present {
		marked[id] = struct{}{}
	}

	var absences []attendance.Attendance
	for _, id := range roster {
		if _, ok := marked[id]; ok {
			continue
		}
		absences = append(absences, attendance.Attendance{
			UserID:      id,
			Date:        target,
			ClockInTime: target,
			WorkPlan:    attendance.AutoAbsentNote,
			Status:      attendance.StatusAbsent,
		})
	}
	result.Marked = len(absences)

	if len(absences) > 0 {
		inserted, err := s.AttendanceRepository.CreateAbsences(ctx, absences)
		result.Inserted = inserted
		if err != nil {
			slog.Error("Cron: Some absence records failed", "date", key, "inserted", inserted, "expected", len(absences), "error", err)
			return result, err
		}
	}

	s.markReconciled(key)
	return result, nil
}

func (s *AttendanceServiceImpl) reconciled(key string) bool {
	s.markerMu.Lock()
	defer s.markerMu.Unlock()
	return s.lastReconciled == key
}

func (s *AttendanceServiceImpl) markReconciled(key string) {
	s.markerMu.Lock()
	defer s.markerMu.Unlock()
	s.lastReconciled = key
}
