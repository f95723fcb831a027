package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washera/carwash-scheduler/internal/domain/schedule"
)

func TestGenerateMonthDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		days  int
		first string
		last  string
	}{
		{"31-day month", 2025, 10, 31, "2025-10-01", "2025-10-31"},
		{"30-day month", 2025, 11, 30, "2025-11-01", "2025-11-30"},
		{"february common year", 2025, 2, 28, "2025-02-01", "2025-02-28"},
		{"february leap year", 2024, 2, 29, "2024-02-01", "2024-02-29"},
		{"december year boundary", 2025, 12, 31, "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := schedule.GenerateMonthDates(tt.year, tt.month)
			require.Len(t, dates, tt.days)
			assert.Equal(t, tt.first, dates[0])
			assert.Equal(t, tt.last, dates[len(dates)-1])

			for i := 1; i < len(dates); i++ {
				assert.Equal(t, 1, schedule.DaysBetween(dates[i-1], dates[i]))
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-10-04", "Saturday"},
		{"2025-10-06", "Monday"},
		{"2024-02-29", "Thursday"},
		{"2025-12-31", "Wednesday"},
		{"2026-01-01", "Thursday"},
		{"not-a-date", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, schedule.WeekdayName(tt.date), tt.date)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2025-10-04", 3, "2025-10-07"},
		{"2025-10-30", 3, "2025-11-02"},
		{"2025-12-30", 5, "2026-01-04"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-02-28", 1, "2025-03-01"},
		{"2025-10-04", -4, "2025-09-30"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, schedule.AddDays(tt.date, tt.n))
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 3, schedule.DaysBetween("2025-10-04", "2025-10-07"))
	assert.Equal(t, -3, schedule.DaysBetween("2025-10-07", "2025-10-04"))
	assert.Equal(t, 0, schedule.DaysBetween("2025-10-04", "2025-10-04"))
	assert.Equal(t, 366, schedule.DaysBetween("2024-01-01", "2025-01-01"))
}

func TestIsValidISODate(t *testing.T) {
	assert.True(t, schedule.IsValidISODate("2025-10-04"))
	assert.False(t, schedule.IsValidISODate("2025-13-04"))
	assert.False(t, schedule.IsValidISODate("2025-02-30"))
	assert.False(t, schedule.IsValidISODate("04/10/2025"))
}
