package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
)

type fakeReconciler struct {
	attendance.AttendanceService
	result attendance.ReconcileResult
	err    error
}

func (f *fakeReconciler) ReconcileAbsences(ctx context.Context) (attendance.ReconcileResult, error) {
	return f.result, f.err
}

type recordingNotifier struct {
	info   []string
	errors []string
}

func (r *recordingNotifier) Info(ctx context.Context, message string) error {
	r.info = append(r.info, message)
	return nil
}

func (r *recordingNotifier) Error(ctx context.Context, message string) error {
	r.errors = append(r.errors, message)
	return nil
}

var target = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestMarkAbsentEmployees_ReportsSummary(t *testing.T) {
	n := &recordingNotifier{}
	jobs := NewAttendanceJobs(&fakeReconciler{result: attendance.ReconcileResult{
		Target: target, Roster: 5, Marked: 2, Inserted: 2,
	}}, n, 2, 0, time.UTC)

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Equal(t, []string{"Absence reconciliation for 2024-06-10: 2 of 5 employees marked Absent"}, n.info)
	assert.Empty(t, n.errors)
}

func TestMarkAbsentEmployees_SkipIsQuiet(t *testing.T) {
	n := &recordingNotifier{}
	jobs := NewAttendanceJobs(&fakeReconciler{result: attendance.ReconcileResult{
		Target: target.AddDate(0, 0, -2), Skipped: true, Reason: "weekend",
	}}, n, 2, 0, time.UTC)

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, n.info)
	assert.Empty(t, n.errors)
}

func TestMarkAbsentEmployees_PartialFailure(t *testing.T) {
	n := &recordingNotifier{}
	boom := errors.New("user u2: connection reset")
	jobs := NewAttendanceJobs(&fakeReconciler{
		result: attendance.ReconcileResult{Target: target, Roster: 5, Marked: 2, Inserted: 1},
		err:    boom,
	}, n, 2, 0, time.UTC)

	err := jobs.MarkAbsentEmployees(context.Background())
	assert.ErrorIs(t, err, boom)
	require.Len(t, n.errors, 1)
	assert.Contains(t, n.errors[0], "after 1 of 2 records")
}

func TestRegisterJobs(t *testing.T) {
	s := NewScheduler()
	NewAttendanceJobs(&fakeReconciler{}, &recordingNotifier{}, 2, 0, time.UTC).RegisterJobs(s)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, "mark_absent_employees", s.jobs[0].Name)
	assert.False(t, s.jobs[0].runOnStart)
}
