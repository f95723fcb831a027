package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

func TestSortByPriority(t *testing.T) {
	older := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	older.JoinDate = "2024-01-15"

	vipNewer := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	vipNewer.JoinDate = "2025-06-01"
	vipNewer.IsVIP = true

	middle := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	middle.JoinDate = "2024-08-01"

	ordered := schedule.SortByPriority([]models.Customer{older, vipNewer, middle})

	// VIP primeiro mesmo tendo aderido depois; depois por antiguidade
	require.Len(t, ordered, 3)
	assert.Equal(t, vipNewer.ID, ordered[0].ID)
	assert.Equal(t, older.ID, ordered[1].ID)
	assert.Equal(t, middle.ID, ordered[2].ID)
}

func TestSortByPriorityStable(t *testing.T) {
	a := newCustomer([]string{"Saturday"}, schedule.PreferMorning)
	b := newCustomer([]string{"Saturday"}, schedule.PreferMorning)
	a.JoinDate = "2024-01-01"
	b.JoinDate = "2024-01-01"

	ordered := schedule.SortByPriority([]models.Customer{a, b})
	assert.Equal(t, a.ID, ordered[0].ID)
	assert.Equal(t, b.ID, ordered[1].ID)
}

func TestScheduleBulkAccumulatesCapacity(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	// Dois clientes disputando só sábados de manhã: o segundo precisa
	// enxergar as vagas consumidas pelo primeiro; o fallback entra
	// para os dois e nenhum (data, horário) pode colidir.
	first := newCustomer([]string{"Saturday"}, schedule.PreferMorning)
	second := newCustomer([]string{"Saturday"}, schedule.PreferMorning)
	first.JoinDate = "2024-01-01"
	second.JoinDate = "2024-02-01"

	result := eng.ScheduleBulk([]models.Customer{first, second}, 2025, 10, nil)

	require.Len(t, result.Results, 2)
	require.True(t, result.Results[0].Result.Success)
	require.True(t, result.Results[1].Result.Success)

	var produced []models.Appointment
	for _, r := range result.Results {
		produced = append(produced, r.Result.Schedule...)
	}

	assert.Equal(t, len(produced), result.TotalScheduled)
	assertScheduleInvariants(t, eng, produced, nil)
}

func TestScheduleBulkOrdering(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	nonVIPOlder := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	nonVIPOlder.JoinDate = "2023-01-01"

	vipNewer := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	vipNewer.JoinDate = "2025-01-01"
	vipNewer.IsVIP = true

	result := eng.ScheduleBulk([]models.Customer{nonVIPOlder, vipNewer}, 2025, 10, nil)

	require.Len(t, result.Results, 2)
	assert.Equal(t, vipNewer.ID, result.Results[0].Customer.ID)
	assert.Equal(t, nonVIPOlder.ID, result.Results[1].Customer.ID)
}

func TestScheduleBulkCountsFailures(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	ok := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	broken := newCustomer(nil, schedule.PreferMorning) // sem dias preferidos

	result := eng.ScheduleBulk([]models.Customer{ok, broken}, 2025, 10, nil)

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.TotalFailed)
	assert.Greater(t, result.TotalScheduled, 0)
}

func TestScheduleBulkChunkedEquivalence(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	customers := []models.Customer{
		newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning),
		newCustomer([]string{"Sunday", "Tuesday", "Thursday"}, schedule.PreferEvening),
		newCustomer([]string{"Saturday", "Tuesday", "Friday"}, schedule.PreferFlexible),
		newCustomer([]string{"Monday", "Thursday", "Friday"}, schedule.PreferMorning),
	}
	for i := range customers {
		customers[i].JoinDate = schedule.AddDays("2024-01-01", i)
	}

	whole := eng.ScheduleBulk(customers, 2025, 10, nil)

	// Mesmo lote em dois blocos, dobrando o resultado do primeiro no
	// conjunto antes do segundo: contrato de acumulação preservado.
	firstChunk := eng.ScheduleBulk(customers[:2], 2025, 10, nil)

	working := []models.Appointment{}
	for _, r := range firstChunk.Results {
		working = append(working, r.Result.Schedule...)
	}

	secondChunk := eng.ScheduleBulk(customers[2:], 2025, 10, working)

	chunkedTotal := firstChunk.TotalScheduled + secondChunk.TotalScheduled
	assert.Equal(t, whole.TotalScheduled, chunkedTotal)

	var produced []models.Appointment
	for _, r := range append(firstChunk.Results, secondChunk.Results...) {
		produced = append(produced, r.Result.Schedule...)
	}
	assertScheduleInvariants(t, eng, produced, nil)
}
