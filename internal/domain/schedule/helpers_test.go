package schedule_test

import (
	"github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

var nextID uint

func newCustomer(days []string, period schedule.PreferredPeriod) models.Customer {
	nextID++
	return models.Customer{
		ID:              nextID,
		Name:            "Test Customer",
		Phone:           "0501234567",
		CarType:         "Toyota Camry",
		CarSize:         "small",
		TotalWashes:     10,
		RemainingWashes: 10,
		PreferredDays:   days,
		PreferredPeriod: string(period),
		JoinDate:        "2025-01-01",
		Status:          string(schedule.CustomerActive),
	}
}

func newAppointment(customerID uint, date, at string, period schedule.Period, status schedule.Status) models.Appointment {
	nextID++
	return models.Appointment{
		ID:           nextID,
		CustomerID:   customerID,
		CustomerName: "Booked Customer",
		Date:         date,
		DayName:      schedule.WeekdayName(date),
		Time:         at,
		Period:       string(period),
		Status:       string(status),
	}
}

// fillPeriod ocupa n vagas do período na data, cada uma num horário
// distinto da grade (repetindo a grade se n exceder o tamanho dela).
func fillPeriod(date string, period schedule.Period, n int, cfg schedule.Settings) []models.Appointment {
	slots := cfg.MorningSlots
	if period == schedule.PeriodEvening {
		slots = cfg.EveningSlots
	}

	appointments := make([]models.Appointment, 0, n)
	for i := 0; i < n; i++ {
		appointments = append(appointments, newAppointment(
			uint(1000+i),
			date,
			slots[i%len(slots)],
			period,
			schedule.StatusUpcoming,
		))
	}
	return appointments
}
