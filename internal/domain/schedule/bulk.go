package schedule

import (
	"sort"

	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// AGENDAMENTO EM LOTE
// ======================================================

type BulkCustomerResult struct {
	Customer models.Customer  `json:"customer"`
	Result   GenerationResult `json:"result"`
}

type BulkResult struct {
	Success        bool                 `json:"success"`
	Results        []BulkCustomerResult `json:"results"`
	TotalScheduled int                  `json:"total_scheduled"`
	TotalFailed    int                  `json:"total_failed"`
}

// SortByPriority ordena clientes para o lote: VIP primeiro, depois os
// mais antigos (joinDate crescente). Ordenação estável: empates mantêm
// a ordem de entrada.
func SortByPriority(customers []models.Customer) []models.Customer {
	ordered := append([]models.Customer{}, customers...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsVIP != ordered[j].IsVIP {
			return ordered[i].IsVIP
		}
		return ordered[i].JoinDate < ordered[j].JoinDate
	})
	return ordered
}

// ScheduleBulk processa os clientes em sequência, acumulando os
// agendamentos produzidos num conjunto de trabalho explícito, de modo
// que cada cliente enxergue a capacidade já consumida pelos anteriores.
// O mesmo contrato vale para quem fatiar o lote em blocos: o resultado
// de cada bloco precisa ser dobrado no conjunto antes do próximo.
func (e *Engine) ScheduleBulk(
	customers []models.Customer,
	year, month int,
	existing []models.Appointment,
) BulkResult {

	working := append([]models.Appointment{}, existing...)

	results := make([]BulkCustomerResult, 0, len(customers))
	totalScheduled := 0
	totalFailed := 0

	for _, customer := range SortByPriority(customers) {
		customer := customer
		result := e.ScheduleCustomer(&customer, year, month, working)

		results = append(results, BulkCustomerResult{Customer: customer, Result: result})

		if result.Success {
			working = append(working, result.Schedule...)
			totalScheduled += len(result.Schedule)
		} else {
			totalFailed++
		}
	}

	return BulkResult{
		Success:        totalFailed == 0,
		Results:        results,
		TotalScheduled: totalScheduled,
		TotalFailed:    totalFailed,
	}
}
