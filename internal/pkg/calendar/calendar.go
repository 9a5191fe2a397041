// Package calendar holds the day and month boundary arithmetic used by attendance
// and payroll. Every function takes the reference location explicitly.
package calendar

import (
	"fmt"
	"time"
)

// MonthNames lists month names in calendar order, as used on salary slips.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// Yesterday returns local midnight of the day before t in loc.
func Yesterday(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, -1)
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysInMonth returns 28..31 for the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last calendar day of the month in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, loc)
	return start, end
}

// DateKey formats a calendar day for DATE columns.
func DateKey(d time.Time) string {
	return d.Format(time.DateOnly)
}

// ParseMonthName accepts a full month name such as "March".
func ParseMonthName(name string) (time.Month, error) {
	for i, m := range MonthNames {
		if m == name {
			return time.Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month name: %q", name)
}

// ValidYearMonth reports whether year and month form a usable period.
func ValidYearMonth(year, month int) bool {
	return year >= 2000 && year <= 2100 && month >= 1 && month <= 12
}
