package attendance

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/report"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

var kolkata = mustLoad("Asia/Kolkata")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService(users ...user.User) (*AttendanceServiceImpl, *memoryAttendance, *clock) {
	repo := newMemoryAttendance()
	c := &clock{t: time.Date(2024, 6, 10, 9, 0, 0, 0, kolkata)}
	svc := NewAttendanceService(repo, &memoryUsers{users: users}, kolkata).(*AttendanceServiceImpl)
	svc.now = c.now
	return svc, repo, c
}

func employee(id, name string) user.User {
	return user.User{ID: id, Name: name, Role: user.RoleUser}
}

func TestClockInThenOut_Duration(t *testing.T) {
	svc, _, c := newTestService()
	ctx := context.Background()

	in, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: "u1", WorkPlan: "Build exports"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, in.Status)
	assert.Equal(t, "2024-06-10", in.Date)

	c.t = time.Date(2024, 6, 10, 18, 30, 0, 0, kolkata)
	out, err := svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: "u1", WorkSummary: "Done"})
	require.NoError(t, err)
	require.NotNil(t, out.DurationMinutes)
	assert.Equal(t, 570, *out.DurationMinutes)
	assert.Equal(t, "Done", *out.WorkSummary)
}

func TestDurationRoundsToNearestMinute(t *testing.T) {
	in := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, attendance.DurationMinutes(in, in.Add(90*time.Second)))
	assert.Equal(t, 1, attendance.DurationMinutes(in, in.Add(89*time.Second)))
	assert.Equal(t, 0, attendance.DurationMinutes(in, in.Add(29*time.Second)))
	assert.Equal(t, 570, attendance.DurationMinutes(in, in.Add(9*time.Hour+30*time.Minute)))
}

func TestClockIn_Twice(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: "u1", WorkPlan: "plan"})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{UserID: "u1", WorkPlan: "plan"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_UsesReferenceDay(t *testing.T) {
	svc, _, c := newTestService()

	// 20:00 UTC on the 9th is already the 10th in Kolkata
	c.t = time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)
	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{UserID: "u1", WorkPlan: "plan"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", resp.Date)
}

func TestClockIn_RequiresWorkPlan(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{UserID: "u1", WorkPlan: "  "})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "workPlan")
	assert.Empty(t, repo.records)
}

func TestClockIn_ConcurrentRequestsCreateOneRecord(t *testing.T) {
	svc, repo, _ := newTestService()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{UserID: "u1", WorkPlan: "plan"}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Len(t, repo.records, 1)
}

func TestClockOut_Errors(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: "u1", WorkSummary: "x"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{UserID: "u1", WorkPlan: "plan"})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: "u1", WorkSummary: "x"})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: "u1", WorkSummary: "again"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestRequestLeave(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.RequestLeave(ctx, attendance.LeaveRequest{UserID: "u1", Reason: "Fever"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLeave, resp.Status)
	assert.Equal(t, "Leave Reason: Fever", resp.WorkPlan)
}

func TestRequestLeave_FailsOnAnyExistingRecord(t *testing.T) {
	for _, status := range []attendance.Status{
		attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusLeave, attendance.StatusHoliday,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, repo, c := newTestService()
			_, err := repo.Create(context.Background(), attendance.Attendance{
				UserID: "u1", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, kolkata), ClockInTime: c.t, Status: status,
			})
			require.NoError(t, err)

			_, err = svc.RequestLeave(context.Background(), attendance.LeaveRequest{UserID: "u1", Reason: "Trip"})
			assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
			assert.Contains(t, err.Error(), "'"+string(status)+"'")
		})
	}
}

func TestGetToday(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	today, err := svc.GetToday(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, today)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{UserID: "u1", WorkPlan: "plan"})
	require.NoError(t, err)

	today, err = svc.GetToday(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, attendance.StatusPresent, today.Status)
}

func TestAdminCorrect(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	leave, err := svc.RequestLeave(ctx, attendance.LeaveRequest{UserID: "u1", Reason: "x"})
	require.NoError(t, err)

	holiday := attendance.StatusHoliday
	note := "Company holiday"
	got, err := svc.AdminCorrect(ctx, leave.ID, attendance.CorrectionPatch{Status: &holiday, WorkSummary: &note})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHoliday, got.Status)
	assert.Equal(t, "Leave Reason: x", got.WorkPlan, "fields not in the patch stay untouched")
	assert.Equal(t, note, *got.WorkSummary)

	_, err = svc.AdminCorrect(ctx, "missing", attendance.CorrectionPatch{Status: &holiday})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	unchanged, err := svc.AdminCorrect(ctx, leave.ID, attendance.CorrectionPatch{})
	require.NoError(t, err)
	assert.Equal(t, got, unchanged)

	_, err = svc.AdminCorrect(ctx, "missing", attendance.CorrectionPatch{})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestToEntry_CorrectedAbsenceHasNoClockIn(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()
	day := time.Date(2024, 6, 7, 0, 0, 0, 0, kolkata)

	absent, err := repo.Create(ctx, attendance.Attendance{
		UserID:      "u1",
		Date:        day,
		ClockInTime: day,
		WorkPlan:    attendance.AutoAbsentNote,
		Status:      attendance.StatusAbsent,
	})
	require.NoError(t, err)

	present := attendance.StatusPresent
	plan := "Was on site visit"
	_, err = svc.AdminCorrect(ctx, absent.ID, attendance.CorrectionPatch{Status: &present, WorkPlan: &plan})
	require.NoError(t, err)
	corrected, err := repo.GetByID(ctx, absent.ID)
	require.NoError(t, err)

	e := svc.toEntry(corrected)
	assert.Equal(t, "Present", e.Status)
	assert.Nil(t, e.ClockIn)

	in, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: "u2", WorkPlan: "plan"})
	require.NoError(t, err)
	clocked, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	e = svc.toEntry(clocked)
	require.NotNil(t, e.ClockIn)
	assert.True(t, e.ClockIn.Equal(c.t))
}

func seedMonth(t *testing.T, repo *memoryAttendance, userID string, counts map[attendance.Status]int) {
	t.Helper()
	day := 1
	for _, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusLeave, attendance.StatusHoliday} {
		for i := 0; i < counts[status]; i++ {
			d := time.Date(2024, 6, day, 0, 0, 0, 0, kolkata)
			_, err := repo.Create(context.Background(), attendance.Attendance{UserID: userID, Date: d, ClockInTime: d.Add(9 * time.Hour), Status: status})
			require.NoError(t, err)
			day++
		}
	}
}

func TestMonthlySummary_FoldsLeaveIntoAbsent(t *testing.T) {
	svc, repo, _ := newTestService()
	seedMonth(t, repo, "u1", map[attendance.Status]int{
		attendance.StatusPresent: 10, attendance.StatusAbsent: 3, attendance.StatusLeave: 2, attendance.StatusHoliday: 1,
	})
	// outside the month
	_, err := repo.Create(context.Background(), attendance.Attendance{UserID: "u1", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, kolkata), Status: attendance.StatusPresent})
	require.NoError(t, err)

	got, err := svc.MonthlySummary(context.Background(), "u1", attendance.Period{Year: 2024, Month: time.June})
	require.NoError(t, err)
	assert.Equal(t, attendance.MonthlySummary{Present: 10, Absent: 5, Holiday: 1}, got)

	empty, err := svc.MonthlySummary(context.Background(), "nobody", attendance.Period{Year: 2024, Month: time.June})
	require.NoError(t, err)
	assert.Equal(t, attendance.MonthlySummary{}, empty)
}

func TestReconcileAbsences_MarksMissingEmployees(t *testing.T) {
	users := []user.User{
		employee("u1", "A"), employee("u2", "B"), employee("u3", "C"), employee("u4", "D"), employee("u5", "E"),
		{ID: "admin", Name: "Admin", Role: user.RoleAdmin},
	}
	svc, repo, c := newTestService(users...)
	// Tuesday 02:00, target is Monday 2024-06-10
	c.t = time.Date(2024, 6, 11, 2, 0, 0, 0, kolkata)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, kolkata)
	for _, id := range []string{"u1", "u2", "u3"} {
		_, err := repo.Create(context.Background(), attendance.Attendance{UserID: id, Date: monday, Status: attendance.StatusPresent})
		require.NoError(t, err)
	}

	result, err := svc.ReconcileAbsences(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 5, result.Roster)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, repo.inserts)

	for _, id := range []string{"u4", "u5"} {
		rec, _ := repo.GetByUserAndDate(context.Background(), id, monday)
		require.NotNil(t, rec)
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Equal(t, attendance.AutoAbsentNote, rec.WorkPlan)
		assert.True(t, rec.ClockInTime.Equal(monday))
	}
	admin, _ := repo.GetByUserAndDate(context.Background(), "admin", monday)
	assert.Nil(t, admin)

	// the same target day is not reconciled twice
	again, err := svc.ReconcileAbsences(context.Background())
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Equal(t, SkipAlreadyFinished, again.Reason)
	assert.Equal(t, 2, repo.inserts)
}

func TestReconcileAbsences_SkipsWeekends(t *testing.T) {
	for _, now := range []time.Time{
		time.Date(2024, 6, 9, 2, 0, 0, 0, kolkata),  // target Saturday
		time.Date(2024, 6, 10, 2, 0, 0, 0, kolkata), // target Sunday
	} {
		svc, repo, c := newTestService(employee("u1", "A"), employee("u2", "B"))
		c.t = now

		result, err := svc.ReconcileAbsences(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Equal(t, SkipWeekend, result.Reason)
		assert.Empty(t, repo.records)
	}
}

func TestReconcileAbsences_PartialFailureIsReported(t *testing.T) {
	svc, repo, c := newTestService(employee("u1", "A"), employee("u2", "B"), employee("u3", "C"))
	c.t = time.Date(2024, 6, 11, 2, 0, 0, 0, kolkata)
	repo.failFor["u2"] = true

	result, err := svc.ReconcileAbsences(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user u2")
	assert.Equal(t, 3, result.Marked)
	assert.Equal(t, 2, result.Inserted)

	// a failed run leaves the day open for a later run
	repo.failFor["u2"] = false
	result, err = svc.ReconcileAbsences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
}

func TestReconcileAbsences_NotReentrant(t *testing.T) {
	svc, _, c := newTestService(employee("u1", "A"))
	c.t = time.Date(2024, 6, 11, 2, 0, 0, 0, kolkata)

	svc.reconcileMu.Lock()
	result, err := svc.ReconcileAbsences(context.Background())
	svc.reconcileMu.Unlock()

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, SkipAlreadyRunning, result.Reason)
}

func TestExportAll(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.names["u1"] = "Zoya"
	repo.names["u2"] = "Arjun"
	seedMonth(t, repo, "u1", map[attendance.Status]int{attendance.StatusPresent: 2})
	seedMonth(t, repo, "u2", map[attendance.Status]int{attendance.StatusLeave: 1})

	file, err := svc.ExportAll(context.Background(), attendance.Period{Year: 2024, Month: time.June})
	require.NoError(t, err)
	assert.Equal(t, "All_Attendance_2024-6.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Len(t, rows[1], 2+report.MatrixColumns(2024, time.June))
	assert.Equal(t, "Arjun", rows[2][0])
	assert.Equal(t, []string{"09:00 AM", "N/A", "Leave"}, rows[2][2:5])
	assert.Equal(t, "Zoya", rows[3][0])
}

func TestExportEmployee(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.names["u1"] = "Asha Rao"

	_, err := svc.ExportEmployee(context.Background(), "u1", attendance.Period{Year: 2024, Month: time.June})
	assert.ErrorIs(t, err, attendance.ErrNoRecordsForPeriod)

	seedMonth(t, repo, "u1", map[attendance.Status]int{attendance.StatusPresent: 3})
	file, err := svc.ExportEmployee(context.Background(), "u1", attendance.Period{Year: 2024, Month: time.June})
	require.NoError(t, err)
	assert.Equal(t, "Asha_Rao_Attendance_2024-6.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "01/06/2024", rows[1][0])
	assert.Equal(t, "03/06/2024", rows[3][0])
}

func TestListForEmployee_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListForEmployee(context.Background(), "ghost", attendance.EmployeeFilter{})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetMyMonth_Ascending(t *testing.T) {
	svc, repo, _ := newTestService()
	seedMonth(t, repo, "u1", map[attendance.Status]int{attendance.StatusPresent: 3})

	got, err := svc.GetMyMonth(context.Background(), "u1", attendance.Period{Year: 2024, Month: time.June})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.Equal(t, "2024-06-03", got[2].Date)
}
