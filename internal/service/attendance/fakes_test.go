package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
)

// memoryAttendance enforces one record per (user, date) like the unique constraint.
type memoryAttendance struct {
	mu      sync.Mutex
	seq     int
	records map[string]attendance.Attendance
	names   map[string]string
	failFor map[string]bool
	inserts int
}

func newMemoryAttendance() *memoryAttendance {
	return &memoryAttendance{
		records: map[string]attendance.Attendance{},
		names:   map[string]string{},
		failFor: map[string]bool{},
	}
}

func dayKey(userID string, d time.Time) string {
	return userID + "|" + calendar.DateKey(d)
}

func (m *memoryAttendance) withUser(a attendance.Attendance) attendance.Attendance {
	if name, ok := m.names[a.UserID]; ok {
		n := name
		a.UserName = &n
	}
	return a
}

func (m *memoryAttendance) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := dayKey(a.UserID, a.Date)
	if _, ok := m.records[k]; ok {
		return attendance.Attendance{}, attendance.ErrDuplicateRecord
	}
	m.seq++
	a.ID = fmt.Sprintf("a%d", m.seq)
	m.records[k] = a
	return a, nil
}

func (m *memoryAttendance) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.records {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *memoryAttendance) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.records[dayKey(userID, date)]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memoryAttendance) CompleteClockOut(ctx context.Context, a attendance.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := dayKey(a.UserID, a.Date)
	cur, ok := m.records[k]
	if !ok || cur.ClockOutTime != nil {
		return attendance.ErrAlreadyClockedOut
	}
	cur.ClockOutTime, cur.WorkSummary, cur.DurationMinutes = a.ClockOutTime, a.WorkSummary, a.DurationMinutes
	m.records[k] = cur
	return nil
}

func (m *memoryAttendance) ApplyPatch(ctx context.Context, id string, patch attendance.CorrectionPatch) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, a := range m.records {
		if a.ID != id {
			continue
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		if patch.WorkPlan != nil {
			a.WorkPlan = *patch.WorkPlan
		}
		if patch.WorkSummary != nil {
			a.WorkSummary = patch.WorkSummary
		}
		m.records[k] = a
		return a, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *memoryAttendance) filter(keep func(attendance.Attendance) bool) []attendance.Attendance {
	var out []attendance.Attendance
	for _, a := range m.records {
		if keep(a) {
			out = append(out, m.withUser(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func inRange(d time.Time, from, to *time.Time) bool {
	key := calendar.DateKey(d)
	if from != nil && key < calendar.DateKey(*from) {
		return false
	}
	if to != nil && key > calendar.DateKey(*to) {
		return false
	}
	return true
}

func (m *memoryAttendance) ListByUser(ctx context.Context, userID string, f attendance.RangeFilter) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.filter(func(a attendance.Attendance) bool { return a.UserID == userID && inRange(a.Date, f.From, f.To) })
	if f.NewestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (m *memoryAttendance) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(func(a attendance.Attendance) bool { return inRange(a.Date, &date, &date) }), nil
}

func (m *memoryAttendance) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(func(a attendance.Attendance) bool { return inRange(a.Date, &from, &to) }), nil
}

func (m *memoryAttendance) CountByStatus(ctx context.Context, userID string, from, to time.Time) (map[attendance.Status]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[attendance.Status]int{}
	for _, a := range m.records {
		if a.UserID == userID && inRange(a.Date, &from, &to) {
			counts[a.Status]++
		}
	}
	return counts, nil
}

func (m *memoryAttendance) ListUserIDsByDate(ctx context.Context, date time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, a := range m.records {
		if calendar.DateKey(a.Date) == calendar.DateKey(date) {
			ids = append(ids, a.UserID)
		}
	}
	return ids, nil
}

func (m *memoryAttendance) CreateAbsences(ctx context.Context, records []attendance.Attendance) (int, error) {
	var (
		inserted int
		errs     []error
	)
	for _, r := range records {
		if m.failFor[r.UserID] {
			errs = append(errs, fmt.Errorf("user %s: insert failed", r.UserID))
			continue
		}
		if _, err := m.Create(ctx, r); err != nil {
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		m.inserts++
		inserted++
	}
	return inserted, errors.Join(errs...)
}

// memoryUsers implements only what the attendance service reads.
type memoryUsers struct {
	user.UserRepository
	users []user.User
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUsers) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, u := range m.users {
		if u.Role == user.RoleUser {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}
