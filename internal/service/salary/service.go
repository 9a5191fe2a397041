package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/domain/salary"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

const notAvailable = "N/A"

type SalaryServiceImpl struct {
	slipRepo          salary.SlipRepository
	userRepo          user.UserRepository
	profileRepo       profile.ProfileRepository
	attendanceService attendance.AttendanceService
}

func NewSalaryService(
	slipRepo salary.SlipRepository,
	userRepo user.UserRepository,
	profileRepo profile.ProfileRepository,
	attendanceService attendance.AttendanceService,
) salary.SalaryService {
	return &SalaryServiceImpl{
		slipRepo:          slipRepo,
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		attendanceService: attendanceService,
	}
}

func period(month string, year int) (attendance.Period, error) {
	m, err := calendar.ParseMonthName(month)
	if err != nil || !calendar.ValidYearMonth(year, int(m)) {
		return attendance.Period{}, validator.ValidationErrors{{Field: "period", Message: salary.ErrInvalidPeriod.Error()}}
	}
	return attendance.Period{Year: year, Month: m}, nil
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

// DeriveAttendanceInputs implements salary.SalaryService. Leave days are loss of pay.
func (s *SalaryServiceImpl) DeriveAttendanceInputs(ctx context.Context, userID, month string, year int) (salary.AttendanceInputs, error) {
	p, err := period(month, year)
	if err != nil {
		return salary.AttendanceInputs{}, err
	}

	summary, err := s.attendanceService.MonthlySummary(ctx, userID, p)
	if err != nil {
		return salary.AttendanceInputs{}, err
	}
	return salary.AttendanceInputs{
		PresentDays:   summary.Present,
		LossOfPayDays: summary.Absent,
	}, nil
}

// GetDetails implements salary.SalaryService.
func (s *SalaryServiceImpl) GetDetails(ctx context.Context, userID, month string, year int) (salary.DetailsResponse, error) {
	if _, err := period(month, year); err != nil {
		return salary.DetailsResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return salary.DetailsResponse{}, salary.ErrEmployeeNotFound
		}
		return salary.DetailsResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return salary.DetailsResponse{}, salary.ErrProfileIncomplete
		}
		return salary.DetailsResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	inputs, err := s.DeriveAttendanceInputs(ctx, userID, month, year)
	if err != nil {
		return salary.DetailsResponse{}, err
	}

	joined := notAvailable
	if !p.JoiningDate.IsZero() {
		joined = p.JoiningDate.Format(time.DateOnly)
	}
	return salary.DetailsResponse{
		EmployeeName:      u.Name,
		DateOfJoining:     joined,
		Designation:       orNA(p.Designation),
		PAN:               orNA(p.PANNumber),
		BankAccountNumber: orNA(p.BankAccountNumber),
		PresentDays:       inputs.PresentDays,
		LossOfPayDays:     inputs.LossOfPayDays,
	}, nil
}

// CreateManual implements salary.SalaryService.
func (s *SalaryServiceImpl) CreateManual(ctx context.Context, req salary.CreateSlipRequest) (salary.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SlipResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return salary.SlipResponse{}, salary.ErrEmployeeNotFound
		}
		return salary.SlipResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.slipRepo.Create(ctx, req.ToSlip())
	if err != nil {
		return salary.SlipResponse{}, err
	}

	slog.Info("Salary slip drafted", "slip_id", created.ID, "user_id", created.UserID, "month", created.Month, "year", created.Year)
	return salary.NewSlipResponse(created), nil
}

// Publish implements salary.SalaryService. The draft check and the status flip are
// one conditional update, so two concurrent publishes cannot both succeed.
func (s *SalaryServiceImpl) Publish(ctx context.Context, slipID string) (salary.SlipResponse, error) {
	published, ok, err := s.slipRepo.MarkPublished(ctx, slipID)
	if err != nil {
		return salary.SlipResponse{}, fmt.Errorf("failed to publish slip: %w", err)
	}
	if ok {
		slog.Info("Salary slip published", "slip_id", slipID)
		return salary.NewSlipResponse(published), nil
	}

	// Nothing flipped: either the slip is missing or it was already published.
	current, err := s.slipRepo.GetByID(ctx, slipID)
	if err != nil {
		return salary.SlipResponse{}, err
	}
	if err := current.Publish(); err != nil {
		return salary.SlipResponse{}, err
	}
	return salary.SlipResponse{}, fmt.Errorf("slip %s is %s but could not be published", slipID, current.Status)
}

// ListForUser implements salary.SalaryService.
func (s *SalaryServiceImpl) ListForUser(ctx context.Context, userID string) ([]salary.SlipResponse, error) {
	slips, err := s.slipRepo.List(ctx, salary.SlipFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list slips: %w", err)
	}
	return salary.NewSlipResponses(slips), nil
}

// History implements salary.SalaryService.
func (s *SalaryServiceImpl) History(ctx context.Context, month string, year int) (salary.HistoryResponse, error) {
	if _, err := period(month, year); err != nil {
		return salary.HistoryResponse{}, err
	}

	slips, err := s.slipRepo.List(ctx, salary.SlipFilter{Month: &month, Year: &year, PublishedOnly: true})
	if err != nil {
		return salary.HistoryResponse{}, fmt.Errorf("failed to list slips: %w", err)
	}

	return salary.HistoryResponse{
		Slips: salary.NewSlipResponses(slips),
		Summary: salary.HistorySummary{
			TotalEmployeesPaid: len(slips),
			TotalPaidSalary:    salary.SumNet(slips).StringFixed(2),
			Month:              month,
			Year:               year,
		},
	}, nil
}

// MySlips implements salary.SalaryService. Month and year filter together or not at all.
func (s *SalaryServiceImpl) MySlips(ctx context.Context, userID string, month *string, year *int) ([]salary.SlipResponse, error) {
	if (month == nil) != (year == nil) {
		return nil, validator.ValidationErrors{{Field: "period", Message: salary.ErrPeriodFilterPartial.Error()}}
	}
	if month != nil {
		if _, err := period(*month, *year); err != nil {
			return nil, err
		}
	}

	slips, err := s.slipRepo.List(ctx, salary.SlipFilter{UserID: &userID, Month: month, Year: year, PublishedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list slips: %w", err)
	}
	return salary.NewSlipResponses(slips), nil
}
