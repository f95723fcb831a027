package schedule

import (
	"fmt"
	"sort"

	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// REQUEST / RESULT
// ======================================================

type GenerationRequest struct {
	CustomerID      uint
	Year            int
	Month           int
	PreferredDays   []string
	PreferredPeriod PreferredPeriod
	TotalWashes     int
}

type GenerationResult struct {
	Success  bool                 `json:"success"`
	Schedule []models.Appointment `json:"schedule"`
	Message  string               `json:"message"`
	Warnings []string             `json:"warnings,omitempty"`
}

func failure(message string, warnings []string) GenerationResult {
	return GenerationResult{Success: false, Schedule: []models.Appointment{}, Message: message, Warnings: warnings}
}

// ======================================================
// AGENDAMENTO DE UM CLIENTE
// ======================================================

// ScheduleCustomer distribui as lavagens do ciclo do cliente pelo mês,
// honrando dias/período preferidos e o intervalo mínimo entre visitas.
// Nunca propaga panic: qualquer falha vira resultado estruturado.
func (e *Engine) ScheduleCustomer(
	customer *models.Customer,
	year, month int,
	existing []models.Appointment,
) (res GenerationResult) {

	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Sprintf("schedule generation failed: %v", r), nil)
		}
	}()

	total := customer.TotalWashes
	if total <= 0 {
		total = e.cfg.TotalWashes
	}

	req := GenerationRequest{
		CustomerID:      customer.ID,
		Year:            year,
		Month:           month,
		PreferredDays:   customer.PreferredDays,
		PreferredPeriod: PreferredPeriod(customer.PreferredPeriod),
		TotalWashes:     total,
	}

	res = e.generate(req, customer, existing)
	return res
}

func (e *Engine) generate(
	req GenerationRequest,
	customer *models.Customer,
	existing []models.Appointment,
) GenerationResult {

	var warnings []string
	var produced []models.Appointment

	// 1. Dias do mês que caem nos dias preferidos
	allDates := GenerateMonthDates(req.Year, req.Month)

	var preferredDates []string
	for _, date := range allDates {
		if containsDay(req.PreferredDays, WeekdayName(date)) {
			preferredDates = append(preferredDates, date)
		}
	}

	if len(preferredDates) == 0 {
		return failure("no preferred days available in this month", warnings)
	}

	// 2. Dias menos congestionados primeiro (heurística gulosa de
	// balanceamento; empates ficam na ordem do calendário)
	ranked := e.rankByAvailability(preferredDates, existing)

	// 3. Caminhada com intervalo mínimo entre visitas
	working := append([]models.Appointment{}, existing...)
	lastScheduled := ""
	washNumber := 1

	for _, candidate := range ranked {
		if washNumber > req.TotalWashes {
			break
		}

		if lastScheduled != "" && DaysBetween(lastScheduled, candidate) < e.cfg.MinGapDays {
			continue
		}

		ap := e.placeOnDate(customer, candidate, washNumber, req.PreferredPeriod, working)
		if ap == nil {
			warnings = append(warnings, fmt.Sprintf("could not schedule on %s", candidate))
			continue
		}

		produced = append(produced, *ap)
		working = append(working, *ap)
		lastScheduled = candidate
		washNumber++
	}

	// 4. Passe de fallback: ignora preferência de dia e período
	if len(produced) < req.TotalWashes {
		used := make(map[string]bool, len(produced))
		for _, ap := range produced {
			used[ap.Date] = true
		}

		for _, date := range allDates {
			if len(produced) >= req.TotalWashes {
				break
			}
			if used[date] {
				continue
			}
			if lastScheduled != "" && DaysBetween(lastScheduled, date) < e.cfg.MinGapDays {
				continue
			}

			ap := e.placeOnDate(customer, date, len(produced)+1, PreferFlexible, working)
			if ap == nil {
				continue
			}

			produced = append(produced, *ap)
			working = append(working, *ap)
			used[date] = true
			lastScheduled = date
		}
	}

	// 5. Resultado
	if len(produced) == 0 {
		return failure("failed to schedule any appointment", warnings)
	}

	sort.Slice(produced, func(i, j int) bool {
		return produced[i].Date < produced[j].Date
	})

	message := "schedule generated successfully"
	if len(produced) < req.TotalWashes {
		warnings = append(warnings, fmt.Sprintf("scheduled only %d of %d washes", len(produced), req.TotalWashes))
		message = fmt.Sprintf("partial schedule generated: %d/%d", len(produced), req.TotalWashes)
	}

	return GenerationResult{
		Success:  true,
		Schedule: produced,
		Message:  message,
		Warnings: warnings,
	}
}

// rankByAvailability ordena por capacidade total livre, decrescente.
func (e *Engine) rankByAvailability(dates []string, existing []models.Appointment) []string {
	ranked := append([]string{}, dates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return e.DayCapacity(ranked[i], existing).TotalAvailable >
			e.DayCapacity(ranked[j], existing).TotalAvailable
	})
	return ranked
}

// placeOnDate tenta um período de cada vez, varrendo a grade de
// horários na ordem fixa e aceitando o primeiro sem conflito.
func (e *Engine) placeOnDate(
	customer *models.Customer,
	date string,
	washNumber int,
	preference PreferredPeriod,
	working []models.Appointment,
) *models.Appointment {

	var periods []Period
	switch preference {
	case PreferMorning:
		periods = []Period{PeriodMorning, PeriodEvening}
	case PreferEvening:
		periods = []Period{PeriodEvening, PeriodMorning}
	default:
		// flexível: primeiro o período com mais vagas no dia
		capacity := e.DayCapacity(date, working)
		if capacity.MorningAvailable >= capacity.EveningAvailable {
			periods = []Period{PeriodMorning, PeriodEvening}
		} else {
			periods = []Period{PeriodEvening, PeriodMorning}
		}
	}

	for _, period := range periods {
		for _, slot := range e.cfg.SlotsFor(period) {
			cand := Candidate{
				CustomerID: customer.ID,
				Date:       date,
				Time:       slot,
				Period:     period,
			}

			if !e.CheckConflict(cand, working, 0).HasConflict {
				ap := e.newAppointment(customer, date, slot, period, washNumber)
				return &ap
			}
		}
	}

	return nil
}

// newAppointment monta o registro completo, com snapshot do cliente e
// a regra de pagamento (primeiras N pagas, restantes grátis).
func (e *Engine) newAppointment(
	customer *models.Customer,
	date string,
	slot string,
	period Period,
	washNumber int,
) models.Appointment {

	isPaid := washNumber <= e.cfg.PaidWashes

	return models.Appointment{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		CarType:      customer.CarType,
		CarSize:      customer.CarSize,
		Date:         date,
		DayName:      WeekdayName(date),
		Time:         slot,
		Period:       string(period),
		WashNumber:   washNumber,
		Status:       string(InitialStatus()),
		Price:        e.cfg.PricePerWash,
		IsPaid:       isPaid,
		IsFree:       !isPaid,
	}
}
