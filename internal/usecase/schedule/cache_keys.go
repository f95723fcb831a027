package schedule

import (
	"context"

	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

// invalidateCapacity derruba as chaves de capacidade afetadas por uma
// escrita: o mês e cada dia tocado.
func invalidateCapacity(
	ctx context.Context,
	c cache.Cache,
	year int,
	month int,
	touched []models.Appointment,
) {

	keys := []string{cache.MonthUtilizationKey(year, month)}

	seen := make(map[string]bool, len(touched))
	for _, ap := range touched {
		if seen[ap.Date] {
			continue
		}
		seen[ap.Date] = true
		keys = append(keys, cache.DayCapacityKey(ap.Date))
	}

	c.Delete(ctx, keys...)
}

// invalidateCapacityForDate cobre transições de status de um único
// agendamento.
func invalidateCapacityForDate(ctx context.Context, c cache.Cache, date string) {
	if y, m, ok := domain.YearMonthOf(date); ok {
		c.Delete(ctx, cache.DayCapacityKey(date), cache.MonthUtilizationKey(y, m))
		return
	}
	c.Delete(ctx, cache.DayCapacityKey(date))
}
