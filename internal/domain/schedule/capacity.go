package schedule

import "github.com/washera/carwash-scheduler/internal/models"

// ======================================================
// CAPACIDADE MENSAL / UTILIZAÇÃO
// ======================================================

type Utilization struct {
	TotalCapacity   int     `json:"total_capacity"`
	UsedSlots       int     `json:"used_slots"`
	AvailableSlots  int     `json:"available_slots"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// MonthlyCapacity é a capacidade total teórica do mês.
func (e *Engine) MonthlyCapacity(year, month int) int {
	return len(GenerateMonthDates(year, month)) * e.cfg.DailyCapacity()
}

// Utilization mede o uso real do mês. Cancelados não contam; os demais
// status (inclusive reagendados, que já ocuparam operação) contam.
func (e *Engine) Utilization(
	appointments []models.Appointment,
	year, month int,
) Utilization {

	total := e.MonthlyCapacity(year, month)

	used := 0
	for _, a := range appointments {
		if Status(a.Status) == StatusCancelled {
			continue
		}
		if t, ok := parseISO(a.Date); ok &&
			t.Year() == year && int(t.Month()) == month {
			used++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(used) / float64(total) * 100
	}

	return Utilization{
		TotalCapacity:   total,
		UsedSlots:       used,
		AvailableSlots:  total - used,
		UtilizationRate: rate,
	}
}
