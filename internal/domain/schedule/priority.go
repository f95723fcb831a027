package schedule

import (
	"sort"
	"time"

	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// PRIORIDADE (lista de espera / desempate)
// ======================================================

const (
	vipBonus        = 50
	tenurePerMonth  = 2
	tenureCap       = 30
	waitPerHour     = 1
	waitCap         = 20
	lowBalanceBonus = 10
	lowBalanceLimit = 3
	attendanceBonus = 15
	attendanceMin   = 5
)

// PriorityScore pontua um cliente para ordenação de lista de espera.
// Determinístico para um "now" fixo; maior pontuação = mais prioridade.
func (e *Engine) PriorityScore(
	customer *models.Customer,
	waitingSince time.Time,
	now time.Time,
) int {

	score := 0

	if customer.IsVIP {
		score += vipBonus
	}

	// Antiguidade: +2 por mês completo desde a adesão, teto de 30
	if join, ok := parseISO(customer.JoinDate); ok {
		months := int(now.Sub(join).Hours() / 24 / 30)
		if months > 0 {
			tenure := months * tenurePerMonth
			if tenure > tenureCap {
				tenure = tenureCap
			}
			score += tenure
		}
	}

	// Tempo de espera: +1 por hora, teto de 20
	if !waitingSince.IsZero() {
		hours := int(now.Sub(waitingSince).Hours())
		if hours > 0 {
			wait := hours * waitPerHour
			if wait > waitCap {
				wait = waitCap
			}
			score += wait
		}
	}

	if customer.RemainingWashes < lowBalanceLimit {
		score += lowBalanceBonus
	}

	if customer.MissedWashes == 0 && customer.CompletedWashes > attendanceMin {
		score += attendanceBonus
	}

	return score
}

// SortWaitingList devolve as entradas em ordem decrescente de
// prioridade. Entradas sem cliente correspondente mantêm a posição
// relativa entre si.
func (e *Engine) SortWaitingList(
	entries []models.WaitListEntry,
	customers map[uint]models.Customer,
	now time.Time,
) []models.WaitListEntry {

	ordered := append([]models.WaitListEntry{}, entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, okI := customers[ordered[i].CustomerID]
		cj, okJ := customers[ordered[j].CustomerID]
		if !okI || !okJ {
			return false
		}

		return e.PriorityScore(&ci, ordered[i].RequestedAt, now) >
			e.PriorityScore(&cj, ordered[j].RequestedAt, now)
	})
	return ordered
}
