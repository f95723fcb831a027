package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

func TestPriorityScore(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())

	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	base := func() models.Customer {
		c := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
		c.JoinDate = "2025-10-01" // menos de um mês: sem bônus de antiguidade
		c.RemainingWashes = 5
		c.CompletedWashes = 0
		c.MissedWashes = 1
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*models.Customer)
		waiting time.Time
		want    int
	}{
		{
			name:    "baseline scores zero",
			mutate:  func(c *models.Customer) {},
			waiting: now,
			want:    0,
		},
		{
			name:    "vip bonus",
			mutate:  func(c *models.Customer) { c.IsVIP = true },
			waiting: now,
			want:    50,
		},
		{
			name:    "tenure accrues per month and caps at 30",
			mutate:  func(c *models.Customer) { c.JoinDate = "2020-01-01" },
			waiting: now,
			want:    30,
		},
		{
			name:    "five months of tenure",
			mutate:  func(c *models.Customer) { c.JoinDate = "2025-05-01" },
			waiting: now,
			want:    10,
		},
		{
			name:    "waiting hours cap at 20",
			mutate:  func(c *models.Customer) {},
			waiting: now.Add(-72 * time.Hour),
			want:    20,
		},
		{
			name:    "four waiting hours",
			mutate:  func(c *models.Customer) {},
			waiting: now.Add(-4 * time.Hour),
			want:    4,
		},
		{
			name:    "low balance bonus",
			mutate:  func(c *models.Customer) { c.RemainingWashes = 2 },
			waiting: now,
			want:    10,
		},
		{
			name: "attendance bonus",
			mutate: func(c *models.Customer) {
				c.MissedWashes = 0
				c.CompletedWashes = 6
			},
			waiting: now,
			want:    15,
		},
		{
			name: "components add up",
			mutate: func(c *models.Customer) {
				c.IsVIP = true
				c.RemainingWashes = 1
				c.MissedWashes = 0
				c.CompletedWashes = 8
			},
			waiting: now.Add(-2 * time.Hour),
			want:    50 + 10 + 15 + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := base()
			tt.mutate(&customer)
			assert.Equal(t, tt.want, eng.PriorityScore(&customer, tt.waiting, now))
		})
	}
}

func TestPriorityScoreDeterministic(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	customer := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	customer.IsVIP = true

	first := eng.PriorityScore(&customer, now.Add(-5*time.Hour), now)
	second := eng.PriorityScore(&customer, now.Add(-5*time.Hour), now)
	assert.Equal(t, first, second)
}

func TestSortWaitingList(t *testing.T) {
	eng := schedule.NewEngine(schedule.DefaultSettings())
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	regular := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	regular.JoinDate = "2025-10-01"
	regular.RemainingWashes = 5
	regular.MissedWashes = 1

	vip := newCustomer([]string{"Saturday", "Monday", "Wednesday"}, schedule.PreferMorning)
	vip.JoinDate = "2025-10-01"
	vip.RemainingWashes = 5
	vip.MissedWashes = 1
	vip.IsVIP = true

	entries := []models.WaitListEntry{
		{ID: 1, CustomerID: regular.ID, RequestedAt: now},
		{ID: 2, CustomerID: vip.ID, RequestedAt: now},
	}

	ordered := eng.SortWaitingList(entries, map[uint]models.Customer{
		regular.ID: regular,
		vip.ID:     vip,
	}, now)

	require.Len(t, ordered, 2)
	assert.Equal(t, uint(2), ordered[0].ID)
	assert.Equal(t, uint(1), ordered[1].ID)
}
