package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const attendanceColumns = `a.id, a.user_id, a.date, a.clock_in_time, a.clock_out_time, a.work_plan,
		a.work_summary, a.status, a.duration_minutes, a.created_at, a.updated_at`

type attendanceRepositoryImpl struct {
	db database.Pool
}

func NewAttendanceRepository(db database.Pool) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row, withUser bool) (attendance.Attendance, error) {
	var a attendance.Attendance
	dest := []any{
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.ClockInTime,
		&a.ClockOutTime,
		&a.WorkPlan,
		&a.WorkSummary,
		&a.Status,
		&a.DurationMinutes,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
	if withUser {
		dest = append(dest, &a.UserName, &a.UserEmail, &a.UserMobile)
	}
	err := row.Scan(dest...)
	return a, err
}

func collectAttendances(rows pgx.Rows, withUser bool) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows, withUser)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances AS a (
			user_id, date, clock_in_time, clock_out_time, work_plan, work_summary, status, duration_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		a.UserID,
		calendar.DateKey(a.Date),
		a.ClockInTime,
		a.ClockOutTime,
		a.WorkPlan,
		a.WorkSummary,
		a.Status,
		a.DurationMinutes,
	), false)
	if err != nil {
		if isUniqueViolation(err, "uq_attendances_user_date") {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`
	a, err := scanAttendance(q.QueryRow(ctx, query, id), false)
	if err != nil {
		return attendance.Attendance{}, translate(err, attendance.ErrAttendanceNotFound, nil)
	}
	return a, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.user_id = $1 AND a.date = $2`
	a, err := scanAttendance(q.QueryRow(ctx, query, userID, calendar.DateKey(date)), false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CompleteClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CompleteClockOut(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out_time = $1, work_summary = $2, duration_minutes = $3, updated_at = NOW()
		WHERE id = $4 AND clock_out_time IS NULL
	`
	tag, err := q.Exec(ctx, query, a.ClockOutTime, a.WorkSummary, a.DurationMinutes, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyClockedOut
	}
	return nil
}

// ApplyPatch implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ApplyPatch(ctx context.Context, id string, patch attendance.CorrectionPatch) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances AS a
		SET status = COALESCE($1, a.status),
			work_plan = COALESCE($2, a.work_plan),
			work_summary = COALESCE($3, a.work_summary),
			updated_at = NOW()
		WHERE a.id = $4
		RETURNING ` + attendanceColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	updated, err := scanAttendance(q.QueryRow(ctx, query, status, patch.WorkPlan, patch.WorkSummary, id), false)
	if err != nil {
		return attendance.Attendance{}, translate(err, attendance.ErrAttendanceNotFound, nil)
	}
	return updated, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, filter attendance.RangeFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where = []string{"a.user_id = $1"}
		args  = []any{userID}
	)
	if filter.From != nil {
		args = append(args, calendar.DateKey(*filter.From))
		where = append(where, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, calendar.DateKey(*filter.To))
		where = append(where, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	order := "ASC"
	if filter.NewestFirst {
		order = "DESC"
	}

	query := `SELECT ` + attendanceColumns + `, u.name, u.email, u.mobile
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY a.date ` + order

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, true)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `, u.name, u.email, u.mobile
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY u.name ASC`

	rows, err := q.Query(ctx, query, calendar.DateKey(date))
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, true)
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `, u.name, u.email, u.mobile
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date ASC`

	rows, err := q.Query(ctx, query, calendar.DateKey(from), calendar.DateKey(to))
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, true)
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, userID string, from, to time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY status
	`
	rows, err := q.Query(ctx, query, userID, calendar.DateKey(from), calendar.DateKey(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[attendance.Status(status)] = count
	}
	return counts, rows.Err()
}

// ListUserIDsByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListUserIDsByDate(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT user_id FROM attendances WHERE date = $1`, calendar.DateKey(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateAbsences implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateAbsences(ctx context.Context, records []attendance.Attendance) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (user_id, date, clock_in_time, work_plan, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO NOTHING
	`

	var (
		inserted int
		errs     []error
	)
	for _, rec := range records {
		tag, err := q.Exec(ctx, query, rec.UserID, calendar.DateKey(rec.Date), rec.ClockInTime, rec.WorkPlan, string(rec.Status))
		if err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", rec.UserID, err))
			continue
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, errors.Join(errs...)
}
