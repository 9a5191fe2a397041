package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
		{2100, time.February, 28},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInMonth(c.year, c.month), "%d-%s", c.year, c.month)
	}
}

func TestStartOfDayUsesReferenceZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC on the 9th is 01:30 on the 10th in Kolkata.
	now := time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)
	got := StartOfDay(now, kolkata)

	assert.Equal(t, "2024-06-10", DateKey(got))
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, kolkata, got.Location())
}

func TestYesterdayAndWeekend(t *testing.T) {
	monday := time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC)
	y := Yesterday(monday, time.UTC)

	assert.Equal(t, "2024-06-09", DateKey(y))
	assert.True(t, IsWeekend(y))
	assert.False(t, IsWeekend(monday))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.September, time.UTC)
	assert.Equal(t, "2024-09-01", DateKey(start))
	assert.Equal(t, "2024-09-30", DateKey(end))
}

func TestParseMonthName(t *testing.T) {
	m, err := ParseMonthName("March")
	require.NoError(t, err)
	assert.Equal(t, time.March, m)

	_, err = ParseMonthName("march")
	assert.Error(t, err)
}

func TestValidYearMonth(t *testing.T) {
	assert.True(t, ValidYearMonth(2024, 1))
	assert.False(t, ValidYearMonth(2024, 13))
	assert.False(t, ValidYearMonth(1999, 5))
}
