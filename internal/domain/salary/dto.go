package salary

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type LineItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreateSlipRequest struct {
	UserID          string            `json:"-"`
	Month           string            `json:"month" validate:"required"`
	Year            int               `json:"year" validate:"gte=2000,lte=2100"`
	PresentDays     int               `json:"presentDays" validate:"gte=0,lte=31"`
	LossOfPayDays   int               `json:"lossOfPayDays" validate:"gte=0,lte=31"`
	BasicSalary     decimal.Decimal   `json:"basicSalary"`
	Earnings        []LineItemRequest `json:"earnings" validate:"dive"`
	Deductions      []LineItemRequest `json:"deductions" validate:"dive"`
	TotalEarnings   decimal.Decimal   `json:"totalEarnings"`
	TotalDeductions decimal.Decimal   `json:"totalDeductions"`
	NetSalary       decimal.Decimal   `json:"netSalary"`
}

func (r *CreateSlipRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = verrs
		} else {
			return err
		}
	}

	if r.Month != "" {
		if _, err := calendar.ParseMonthName(r.Month); err != nil {
			errs.Add("month", "month must be a full month name such as January")
		}
	}

	for field, v := range map[string]decimal.Decimal{
		"basicSalary":     r.BasicSalary,
		"totalEarnings":   r.TotalEarnings,
		"totalDeductions": r.TotalDeductions,
	} {
		if v.IsNegative() {
			errs.Add(field, ErrNegativeAmount.Error())
		}
	}
	for _, items := range [][]LineItemRequest{r.Earnings, r.Deductions} {
		for _, it := range items {
			if it.Amount.IsNegative() {
				errs.Add("items", ErrNegativeAmount.Error())
			}
		}
	}

	return errs.Err()
}

func toLineItems(items []LineItemRequest) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, LineItem{Description: it.Description, Amount: it.Amount})
	}
	return out
}

// ToSlip builds a draft slip from the request.
func (r *CreateSlipRequest) ToSlip() Slip {
	return Slip{
		UserID:          r.UserID,
		Month:           r.Month,
		Year:            r.Year,
		PresentDays:     r.PresentDays,
		LossOfPayDays:   r.LossOfPayDays,
		BasicSalary:     r.BasicSalary,
		Earnings:        toLineItems(r.Earnings),
		Deductions:      toLineItems(r.Deductions),
		TotalEarnings:   r.TotalEarnings,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,
		Status:          SlipStatusDraft,
	}
}

type SlipEmployee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SlipResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user"`
	Employee        *SlipEmployee   `json:"employee,omitempty"`
	Month           string          `json:"month"`
	Year            int             `json:"year"`
	PresentDays     int             `json:"presentDays"`
	LossOfPayDays   int             `json:"lossOfPayDays"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	Earnings        []LineItem      `json:"earnings"`
	Deductions      []LineItem      `json:"deductions"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	Status          SlipStatus      `json:"status"`
	CreatedAt       string          `json:"createdAt"`
}

func NewSlipResponse(s Slip) SlipResponse {
	resp := SlipResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Month:           s.Month,
		Year:            s.Year,
		PresentDays:     s.PresentDays,
		LossOfPayDays:   s.LossOfPayDays,
		BasicSalary:     s.BasicSalary,
		Earnings:        s.Earnings,
		Deductions:      s.Deductions,
		TotalEarnings:   s.TotalEarnings,
		TotalDeductions: s.TotalDeductions,
		NetSalary:       s.NetSalary,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
	if resp.Earnings == nil {
		resp.Earnings = []LineItem{}
	}
	if resp.Deductions == nil {
		resp.Deductions = []LineItem{}
	}
	if s.EmployeeName != nil {
		emp := SlipEmployee{Name: *s.EmployeeName}
		if s.EmployeeEmail != nil {
			emp.Email = *s.EmployeeEmail
		}
		resp.Employee = &emp
	}
	return resp
}

func NewSlipResponses(slips []Slip) []SlipResponse {
	out := make([]SlipResponse, 0, len(slips))
	for _, s := range slips {
		out = append(out, NewSlipResponse(s))
	}
	return out
}

// DetailsResponse prefills the manual slip form.
type DetailsResponse struct {
	EmployeeName      string `json:"employeeName"`
	DateOfJoining     string `json:"dateOfJoining"`
	Designation       string `json:"designation"`
	PAN               string `json:"pan"`
	BankAccountNumber string `json:"bankAccountNumber"`
	PresentDays       int    `json:"presentDays"`
	LossOfPayDays     int    `json:"lossOfPayDays"`
}

type HistorySummary struct {
	TotalEmployeesPaid int    `json:"totalEmployeesPaid"`
	TotalPaidSalary    string `json:"totalPaidSalary"`
	Month              string `json:"month"`
	Year               int    `json:"year"`
}

type HistoryResponse struct {
	Slips   []SlipResponse `json:"slips"`
	Summary HistorySummary `json:"summary"`
}
