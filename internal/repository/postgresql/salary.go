package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/salary"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const slipColumns = `s.id, s.user_id, s.month, s.year, s.present_days, s.loss_of_pay_days,
		s.basic_salary, s.earnings, s.deductions, s.total_earnings, s.total_deductions,
		s.net_salary, s.status, s.created_at, s.updated_at`

type slipRepositoryImpl struct {
	db database.Pool
}

func NewSlipRepository(db database.Pool) salary.SlipRepository {
	return &slipRepositoryImpl{db: db}
}

func scanSlip(row pgx.Row, withEmployee bool) (salary.Slip, error) {
	var (
		s          salary.Slip
		earnings   []byte
		deductions []byte
	)
	dest := []any{
		&s.ID,
		&s.UserID,
		&s.Month,
		&s.Year,
		&s.PresentDays,
		&s.LossOfPayDays,
		&s.BasicSalary,
		&earnings,
		&deductions,
		&s.TotalEarnings,
		&s.TotalDeductions,
		&s.NetSalary,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &s.EmployeeName, &s.EmployeeEmail)
	}
	if err := row.Scan(dest...); err != nil {
		return salary.Slip{}, err
	}
	if err := json.Unmarshal(earnings, &s.Earnings); err != nil {
		return salary.Slip{}, fmt.Errorf("decode earnings: %w", err)
	}
	if err := json.Unmarshal(deductions, &s.Deductions); err != nil {
		return salary.Slip{}, fmt.Errorf("decode deductions: %w", err)
	}
	return s, nil
}

// Create implements salary.SlipRepository.
func (r *slipRepositoryImpl) Create(ctx context.Context, slip salary.Slip) (salary.Slip, error) {
	q := GetQuerier(ctx, r.db)

	earnings, err := json.Marshal(nonNilItems(slip.Earnings))
	if err != nil {
		return salary.Slip{}, err
	}
	deductions, err := json.Marshal(nonNilItems(slip.Deductions))
	if err != nil {
		return salary.Slip{}, err
	}

	query := `
		INSERT INTO salary_slips AS s (
			user_id, month, year, present_days, loss_of_pay_days, basic_salary, earnings, deductions,
			total_earnings, total_deductions, net_salary, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + slipColumns

	created, err := scanSlip(q.QueryRow(ctx, query,
		slip.UserID,
		slip.Month,
		slip.Year,
		slip.PresentDays,
		slip.LossOfPayDays,
		slip.BasicSalary,
		earnings,
		deductions,
		slip.TotalEarnings,
		slip.TotalDeductions,
		slip.NetSalary,
		string(slip.Status),
	), false)
	if err != nil {
		if isUniqueViolation(err, "uq_salary_slips_period") {
			return salary.Slip{}, salary.ErrSlipExists
		}
		return salary.Slip{}, fmt.Errorf("insert salary slip: %w", err)
	}
	return created, nil
}

func nonNilItems(items []salary.LineItem) []salary.LineItem {
	if items == nil {
		return []salary.LineItem{}
	}
	return items
}

// GetByID implements salary.SlipRepository.
func (r *slipRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + slipColumns + `, u.name, u.email
		FROM salary_slips s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`
	s, err := scanSlip(q.QueryRow(ctx, query, id), true)
	if err != nil {
		return salary.Slip{}, translate(err, salary.ErrSlipNotFound, nil)
	}
	return s, nil
}

// MarkPublished implements salary.SlipRepository.
func (r *slipRepositoryImpl) MarkPublished(ctx context.Context, id string) (salary.Slip, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_slips AS s
		SET status = $1, updated_at = NOW()
		WHERE s.id = $2 AND s.status = $3
		RETURNING ` + slipColumns

	s, err := scanSlip(q.QueryRow(ctx, query,
		string(salary.SlipStatusPublished), id, string(salary.SlipStatusDraft),
	), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Slip{}, false, nil
		}
		return salary.Slip{}, false, err
	}
	return s, true, nil
}

// List implements salary.SlipRepository. Slips are ordered by year, newest first.
func (r *slipRepositoryImpl) List(ctx context.Context, filter salary.SlipFilter) ([]salary.Slip, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.UserID != nil {
		add("s.user_id = $%d", *filter.UserID)
	}
	if filter.Month != nil {
		add("s.month = $%d", *filter.Month)
	}
	if filter.Year != nil {
		add("s.year = $%d", *filter.Year)
	}
	if filter.PublishedOnly {
		add("s.status = $%d", string(salary.SlipStatusPublished))
	}

	query := `SELECT ` + slipColumns + `, u.name, u.email
		FROM salary_slips s
		JOIN users u ON u.id = s.user_id`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY s.year DESC, s.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []salary.Slip
	for rows.Next() {
		s, err := scanSlip(rows, true)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}
	return slips, rows.Err()
}
