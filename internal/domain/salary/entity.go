package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlipStatus enum
type SlipStatus string

const (
	SlipStatusDraft     SlipStatus = "Draft"
	SlipStatusPublished SlipStatus = "Published"
)

// LineItem is one earning or deduction row on a slip.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Slip - monthly salary document, Draft until published
type Slip struct {
	ID              string
	UserID          string
	Month           string // January..December
	Year            int
	PresentDays     int
	LossOfPayDays   int
	BasicSalary     decimal.Decimal
	Earnings        []LineItem
	Deductions      []LineItem
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Status          SlipStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}

// Publish moves a draft to Published. A published slip never changes again.
func (s *Slip) Publish() error {
	if s.Status == SlipStatusPublished {
		return ErrAlreadyPublished
	}
	s.Status = SlipStatusPublished
	return nil
}

// AttendanceInputs are the attendance-derived day counts for a slip.
type AttendanceInputs struct {
	PresentDays   int
	LossOfPayDays int
}

// SumNet totals net salary across slips.
func SumNet(slips []Slip) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slips {
		total = total.Add(s.NetSalary)
	}
	return total
}
