package job

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeFullTime   Type = "Full-time"
	TypePartTime   Type = "Part-time"
	TypeContract   Type = "Contract"
	TypeInternship Type = "Internship"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID               string
	Title            string
	Department       string
	Location         string
	Type             Type
	SalaryMin        int64
	SalaryMax        int64
	Experience       string
	Description      string
	Requirements     []string
	Responsibilities []string
	Benefits         []string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var lakh = decimal.NewFromInt(100000)

// SalaryLPA renders the range in lakhs per annum, e.g. "4.5 - 6.0 LPA".
func (j Job) SalaryLPA() string {
	lo := decimal.NewFromInt(j.SalaryMin).Div(lakh).StringFixed(1)
	hi := decimal.NewFromInt(j.SalaryMax).Div(lakh).StringFixed(1)
	return lo + " - " + hi + " LPA"
}
