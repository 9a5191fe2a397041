// Package report renders attendance spreadsheets. Callers pass plain rows so the
// workbook layout stays independent of storage.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
)

const (
	SheetName     = "Attendance Report"
	EmptyMessage  = "No attendance records found for the selected period."
	timeLayout    = "03:04 PM"
	dateLayout    = "02/01/2006"
	missingValue  = "N/A"
	colsPerDay    = 3
	leadingCols   = 2
	headerFill    = "#03286D"
	headerFont    = "#FFFFFF"
	defaultStatus = "Absent"
)

// Entry is one attendance record as shown in a report. Times are already in the
// reference timezone.
type Entry struct {
	UserID          string
	Name            string
	Email           string
	Date            time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	Status          string
	DurationMinutes *int
	WorkPlan        string
	WorkSummary     *string
}

// MatrixColumns is the number of per-day data columns for a month.
func MatrixColumns(year int, month time.Month) int {
	return colsPerDay * calendar.DaysInMonth(year, month)
}

func formatClock(t *time.Time) string {
	if t == nil {
		return missingValue
	}
	return t.Format(timeLayout)
}

func formatDuration(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return missingValue
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}

func newWorkbook() (*excelize.File, int, error) {
	f := excelize.NewFile()
	_ = f.SetDocProps(&excelize.DocProperties{Creator: "TechDigi Software"})

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, 0, err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFont},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, style, nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type matrixRow struct {
	name  string
	email string
	days  map[int]Entry
}

// Matrix renders one row per employee with In, Out and Status columns for every
// day of the month. Days without a record read "-", "-", "Absent".
func Matrix(entries []Entry, year int, month time.Month) ([]byte, error) {
	f, headerStyle, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if len(entries) == 0 {
		if err := f.SetCellValue(SheetName, "A1", EmptyMessage); err != nil {
			return nil, err
		}
		return toBytes(f)
	}

	users := make(map[string]*matrixRow)
	for _, e := range entries {
		row, ok := users[e.UserID]
		if !ok {
			row = &matrixRow{name: orNA(e.Name), email: orNA(e.Email), days: make(map[int]Entry)}
			users[e.UserID] = row
		}
		row.days[e.Date.Day()] = e
	}
	rows := make([]*matrixRow, 0, len(users))
	for _, r := range users {
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].name == rows[j].name {
			return rows[i].email < rows[j].email
		}
		return rows[i].name < rows[j].name
	})

	days := calendar.DaysInMonth(year, month)
	lastCol, _ := excelize.ColumnNumberToName(leadingCols + colsPerDay*days)

	header1 := []any{"Employee Name", "Email"}
	header2 := []any{"", ""}
	for day := 1; day <= days; day++ {
		label := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("02-Jan")
		header1 = append(header1, label, "", "")
		header2 = append(header2, "In", "Out", "Status")
	}
	if err := f.SetSheetRow(SheetName, "A1", &header1); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(SheetName, "A2", &header2); err != nil {
		return nil, err
	}
	for day := 1; day <= days; day++ {
		start := leadingCols + (day-1)*colsPerDay + 1
		from, _ := excelize.CoordinatesToCellName(start, 1)
		to, _ := excelize.CoordinatesToCellName(start+colsPerDay-1, 1)
		if err := f.MergeCell(SheetName, from, to); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"2", headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetName, "A", "A", 25)
	_ = f.SetColWidth(SheetName, "B", "B", 30)

	for i, r := range rows {
		values := []any{r.name, r.email}
		for day := 1; day <= days; day++ {
			e, ok := r.days[day]
			if !ok {
				values = append(values, "-", "-", defaultStatus)
				continue
			}
			values = append(values, formatClock(e.ClockIn), formatClock(e.ClockOut), e.Status)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return toBytes(f)
}

// Single renders one row per entry in the order given.
func Single(entries []Entry) ([]byte, error) {
	f, headerStyle, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := []any{"Date", "Name", "Status", "Clock In", "Clock Out", "Duration (H:M)", "Work Plan / Summary"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}
	for col, width := range map[string]float64{"A": 15, "B": 30, "C": 15, "D": 15, "E": 15, "F": 15, "G": 60} {
		_ = f.SetColWidth(SheetName, col, col, width)
	}

	for i, e := range entries {
		work := e.WorkPlan
		if e.WorkSummary != nil && *e.WorkSummary != "" {
			work = *e.WorkSummary
		}
		values := []any{
			e.Date.Format(dateLayout),
			orNA(e.Name),
			e.Status,
			formatClock(e.ClockIn),
			formatClock(e.ClockOut),
			formatDuration(e.DurationMinutes),
			orNA(work),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return toBytes(f)
}

func orNA(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}

// MatrixFilename is the download name for the all-employee export.
func MatrixFilename(year int, month time.Month) string {
	return fmt.Sprintf("All_Attendance_%d-%d.xlsx", year, int(month))
}

// SingleFilename is the download name for one employee's export. Whitespace in
// the name becomes underscores.
func SingleFilename(name string, year int, month time.Month) string {
	clean := underscoreSpaces(name)
	if clean == "" {
		clean = "Employee"
	}
	return fmt.Sprintf("%s_Attendance_%d-%d.xlsx", clean, year, int(month))
}
