package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

func TestCheckConflict(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	booked := newAppointment(7, "2025-10-10", "09:00", schedule.PeriodMorning, schedule.StatusUpcoming)

	t.Run("exact time conflict", func(t *testing.T) {
		check := eng.CheckConflict(schedule.Candidate{
			CustomerID: 8,
			Date:       "2025-10-10",
			Time:       "09:00",
			Period:     schedule.PeriodMorning,
		}, []models.Appointment{booked}, 0)

		require.True(t, check.HasConflict)
		require.Len(t, check.Conflicts, 1)
		assert.Equal(t, schedule.ConflictExactTime, check.Conflicts[0].Type)
		assert.Equal(t, booked.ID, check.Conflicts[0].AppointmentID)
		assert.Contains(t, check.Conflicts[0].Message, booked.CustomerName)
	})

	t.Run("capacity conflict", func(t *testing.T) {
		full := fillPeriod("2025-10-10", schedule.PeriodMorning, 15, eng.Config())

		check := eng.CheckConflict(schedule.Candidate{
			CustomerID: 8,
			Date:       "2025-10-10",
			Time:       "10:15",
			Period:     schedule.PeriodMorning,
		}, full, 0)

		require.True(t, check.HasConflict)
		require.Len(t, check.Conflicts, 1)
		assert.Equal(t, schedule.ConflictCapacity, check.Conflicts[0].Type)
		assert.Contains(t, check.Conflicts[0].Message, "15/15")
	})

	t.Run("customer duplicate conflict", func(t *testing.T) {
		check := eng.CheckConflict(schedule.Candidate{
			CustomerID: 7,
			Date:       "2025-10-10",
			Time:       "11:00",
			Period:     schedule.PeriodMorning,
		}, []models.Appointment{booked}, 0)

		require.True(t, check.HasConflict)
		require.Len(t, check.Conflicts, 1)
		assert.Equal(t, schedule.ConflictCustomerDuplicate, check.Conflicts[0].Type)
		assert.Equal(t, booked.ID, check.Conflicts[0].AppointmentID)
	})

	t.Run("multiple conflicts at once", func(t *testing.T) {
		check := eng.CheckConflict(schedule.Candidate{
			CustomerID: 7,
			Date:       "2025-10-10",
			Time:       "09:00",
			Period:     schedule.PeriodMorning,
		}, []models.Appointment{booked}, 0)

		require.True(t, check.HasConflict)
		types := make([]schedule.ConflictType, 0, len(check.Conflicts))
		for _, c := range check.Conflicts {
			types = append(types, c.Type)
		}
		assert.Contains(t, types, schedule.ConflictExactTime)
		assert.Contains(t, types, schedule.ConflictCustomerDuplicate)
	})

	t.Run("cancelled and rescheduled do not occupy", func(t *testing.T) {
		gone := []models.Appointment{
			newAppointment(7, "2025-10-10", "09:00", schedule.PeriodMorning, schedule.StatusCancelled),
			newAppointment(7, "2025-10-10", "09:30", schedule.PeriodMorning, schedule.StatusRescheduled),
		}

		check := eng.CheckConflict(schedule.Candidate{
			CustomerID: 7,
			Date:       "2025-10-10",
			Time:       "09:00",
			Period:     schedule.PeriodMorning,
		}, gone, 0)

		assert.False(t, check.HasConflict)
	})

	t.Run("exclude id skips self during edit", func(t *testing.T) {
		check := eng.CheckConflict(schedule.Candidate{
			CustomerID: 7,
			Date:       "2025-10-10",
			Time:       "09:00",
			Period:     schedule.PeriodMorning,
		}, []models.Appointment{booked}, booked.ID)

		assert.False(t, check.HasConflict)
	})

	t.Run("repeated calls return the same result", func(t *testing.T) {
		cand := schedule.Candidate{
			CustomerID: 8,
			Date:       "2025-10-10",
			Time:       "09:00",
			Period:     schedule.PeriodMorning,
		}
		existing := []models.Appointment{booked}

		first := eng.CheckConflict(cand, existing, 0)
		second := eng.CheckConflict(cand, existing, 0)
		assert.Equal(t, first, second)
	})
}

func TestDayCapacity(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	existing := fillPeriod("2025-10-10", schedule.PeriodMorning, 15, eng.Config())
	existing = append(existing, fillPeriod("2025-10-10", schedule.PeriodEvening, 10, eng.Config())...)

	// Cancelados em outra data / mesmo dia não contam
	existing = append(existing,
		newAppointment(50, "2025-10-10", "18:30", schedule.PeriodEvening, schedule.StatusCancelled),
		newAppointment(51, "2025-10-11", "09:00", schedule.PeriodMorning, schedule.StatusUpcoming),
	)

	capacity := eng.DayCapacity("2025-10-10", existing)

	assert.Equal(t, schedule.DayCapacity{
		MorningUsed:      15,
		MorningAvailable: 0,
		EveningUsed:      10,
		EveningAvailable: 8,
		TotalUsed:        25,
		TotalAvailable:   8,
	}, capacity)
}

func TestAvailableTimeSlots(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	existing := []models.Appointment{
		newAppointment(1, "2025-10-10", "07:00", schedule.PeriodMorning, schedule.StatusUpcoming),
		newAppointment(2, "2025-10-10", "08:00", schedule.PeriodMorning, schedule.StatusUpcoming),
		newAppointment(3, "2025-10-10", "07:30", schedule.PeriodMorning, schedule.StatusCancelled),
	}

	free := eng.AvailableTimeSlots("2025-10-10", schedule.PeriodMorning, existing)

	require.NotEmpty(t, free)
	assert.Equal(t, "07:30", free[0])
	assert.NotContains(t, free, "07:00")
	assert.NotContains(t, free, "08:00")
	assert.Len(t, free, len(eng.Config().MorningSlots)-2)
}

func TestCanScheduleCustomerInMonth(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	t.Run("empty month is feasible", func(t *testing.T) {
		feasibility := eng.CanScheduleCustomerInMonth(1, 2025, 10, 10, nil)
		assert.True(t, feasibility.Possible)
		assert.Equal(t, 31, feasibility.AvailableDays)
	})

	t.Run("saturated month is infeasible", func(t *testing.T) {
		var existing []models.Appointment
		for _, date := range schedule.GenerateMonthDates(2025, 10) {
			existing = append(existing, fillPeriod(date, schedule.PeriodMorning, 15, eng.Config())...)
			existing = append(existing, fillPeriod(date, schedule.PeriodEvening, 18, eng.Config())...)
		}

		feasibility := eng.CanScheduleCustomerInMonth(1, 2025, 10, 10, existing)
		assert.False(t, feasibility.Possible)
		assert.Equal(t, 0, feasibility.AvailableDays)
		assert.NotEmpty(t, feasibility.Reason)
	})
}

func TestValidateIntegrity(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	t.Run("clean schedule is valid", func(t *testing.T) {
		existing := []models.Appointment{
			newAppointment(1, "2025-10-10", "09:00", schedule.PeriodMorning, schedule.StatusUpcoming),
			newAppointment(2, "2025-10-10", "09:30", schedule.PeriodMorning, schedule.StatusUpcoming),
		}

		report := eng.ValidateIntegrity(existing)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Issues)
	})

	t.Run("duplicate time slot is reported once with both ids", func(t *testing.T) {
		first := newAppointment(1, "2025-10-10", "09:00", schedule.PeriodMorning, schedule.StatusUpcoming)
		second := newAppointment(2, "2025-10-10", "09:00", schedule.PeriodMorning, schedule.StatusUpcoming)

		report := eng.ValidateIntegrity([]models.Appointment{first, second})

		require.False(t, report.Valid)
		require.Len(t, report.Issues, 1)
		issue := report.Issues[0]
		assert.Equal(t, schedule.SeverityError, issue.Severity)
		assert.ElementsMatch(t, []uint{first.ID, second.ID}, issue.AppointmentIDs)
	})

	t.Run("period over capacity is reported", func(t *testing.T) {
		// 16 na manhã, todos em horários distintos até estourar a grade
		over := fillPeriod("2025-10-10", schedule.PeriodMorning, 11, eng.Config())
		slots := []string{"06:00", "06:10", "06:20", "06:30", "06:40"}
		for i, s := range slots {
			over = append(over, newAppointment(uint(200+i), "2025-10-10", s, schedule.PeriodMorning, schedule.StatusUpcoming))
		}

		report := eng.ValidateIntegrity(over)

		require.False(t, report.Valid)
		found := false
		for _, issue := range report.Issues {
			if issue.Severity == schedule.SeverityError && issue.AppointmentIDs == nil {
				assert.Contains(t, issue.Message, "morning capacity exceeded on 2025-10-10")
				found = true
			}
		}
		assert.True(t, found)
	})
}
