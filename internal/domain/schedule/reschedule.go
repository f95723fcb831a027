package schedule

import (
	"fmt"

	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// REAGENDAMENTO
// ======================================================

type SlotSuggestion struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Period Period `json:"period"`
}

type RescheduleRequest struct {
	AppointmentID uint
	NewDate       string
	Reason        string
	IsAutomatic   bool
}

type RescheduleResult struct {
	Success        bool                `json:"success"`
	NewAppointment *models.Appointment `json:"new_appointment,omitempty"`
	Message        string              `json:"message"`
	Conflicts      []string            `json:"conflicts,omitempty"`
}

const (
	RescheduledBySystem = "system"
	RescheduledByManual = "manual"

	defaultRescheduleReason = "customer absence"
)

// SuggestNextSlot procura, de afterDate + intervalo mínimo até o fim
// da janela de busca, o primeiro horário livre num dia preferido do
// cliente. Devolve nil se a janela se esgota.
func (e *Engine) SuggestNextSlot(
	customer *models.Customer,
	afterDate string,
	appointments []models.Appointment,
) *SlotSuggestion {

	var periods []Period
	switch PreferredPeriod(customer.PreferredPeriod) {
	case PreferMorning:
		periods = []Period{PeriodMorning}
	case PreferEvening:
		periods = []Period{PeriodEvening}
	default:
		periods = []Period{PeriodMorning, PeriodEvening}
	}

	for i := e.cfg.MinGapDays; i <= e.cfg.RescheduleWindowDays; i++ {
		candidate := AddDays(afterDate, i)
		if !containsDay(customer.PreferredDays, WeekdayName(candidate)) {
			continue
		}

		for _, period := range periods {
			if free := e.AvailableTimeSlots(candidate, period, appointments); len(free) > 0 {
				return &SlotSuggestion{
					Date:   candidate,
					Time:   free[0],
					Period: period,
				}
			}
		}
	}

	return nil
}

// AutoReschedule produz um agendamento novo para uma visita perdida; o
// antigo não é alterado aqui — marcar como missed/rescheduled é papel
// do chamador. Nunca propaga panic.
func (e *Engine) AutoReschedule(
	req RescheduleRequest,
	customer *models.Customer,
	allAppointments []models.Appointment,
) (res RescheduleResult) {

	defer func() {
		if r := recover(); r != nil {
			res = RescheduleResult{
				Success: false,
				Message: fmt.Sprintf("reschedule failed: %v", r),
			}
		}
	}()

	var oldAp *models.Appointment
	for i := range allAppointments {
		if allAppointments[i].ID == req.AppointmentID {
			oldAp = &allAppointments[i]
			break
		}
	}
	if oldAp == nil {
		return RescheduleResult{Success: false, Message: "appointment not found"}
	}

	anchor := req.NewDate
	if anchor == "" {
		anchor = oldAp.Date
	}

	suggestion := e.SuggestNextSlot(customer, anchor, allAppointments)
	if suggestion == nil {
		return RescheduleResult{
			Success: false,
			Message: fmt.Sprintf("no available slot within %d days on the preferred days and periods", e.cfg.RescheduleWindowDays),
		}
	}

	// Revalidação completa do candidato (defesa em profundidade: a
	// sugestão só olhou a grade de horários).
	check := e.CheckConflict(Candidate{
		CustomerID: customer.ID,
		Date:       suggestion.Date,
		Time:       suggestion.Time,
		Period:     suggestion.Period,
	}, allAppointments, oldAp.ID)

	if check.HasConflict {
		messages := make([]string, 0, len(check.Conflicts))
		for _, c := range check.Conflicts {
			messages = append(messages, c.Message)
		}
		return RescheduleResult{
			Success:   false,
			Message:   "reschedule blocked by conflicts",
			Conflicts: messages,
		}
	}

	reason := req.Reason
	if reason == "" {
		reason = defaultRescheduleReason
	}

	actor := RescheduledByManual
	if req.IsAutomatic {
		actor = RescheduledBySystem
	}

	newAp := *oldAp
	newAp.ID = 0
	newAp.Date = suggestion.Date
	newAp.DayName = WeekdayName(suggestion.Date)
	newAp.Time = suggestion.Time
	newAp.Period = string(suggestion.Period)
	newAp.Status = string(StatusUpcoming)
	newAp.WasRescheduled = true
	newAp.OriginalDate = oldAp.Date
	newAp.RescheduleReason = reason
	newAp.RescheduledBy = actor
	newAp.CompletedAt = nil
	newAp.CancelledAt = nil

	return RescheduleResult{
		Success:        true,
		NewAppointment: &newAp,
		Message:        fmt.Sprintf("new slot suggested: %s %s", suggestion.Date, suggestion.Time),
	}
}

type AppointmentRescheduleResult struct {
	AppointmentID uint             `json:"appointment_id"`
	Result        RescheduleResult `json:"result"`
}

// BulkAutoReschedule reagenda cada falta de forma independente, mas
// dobra cada sugestão aceita no conjunto de trabalho antes da próxima,
// para que duas faltas nunca recebam o mesmo horário.
func (e *Engine) BulkAutoReschedule(
	missed []models.Appointment,
	customers map[uint]models.Customer,
	allAppointments []models.Appointment,
) []AppointmentRescheduleResult {

	working := append([]models.Appointment{}, allAppointments...)
	results := make([]AppointmentRescheduleResult, 0, len(missed))

	for _, ap := range missed {
		customer, ok := customers[ap.CustomerID]
		if !ok {
			results = append(results, AppointmentRescheduleResult{
				AppointmentID: ap.ID,
				Result:        RescheduleResult{Success: false, Message: "customer not found"},
			})
			continue
		}

		result := e.AutoReschedule(RescheduleRequest{
			AppointmentID: ap.ID,
			NewDate:       ap.Date,
			Reason:        "bulk absence",
			IsAutomatic:   true,
		}, &customer, working)

		if result.Success {
			working = append(working, *result.NewAppointment)
		}

		results = append(results, AppointmentRescheduleResult{
			AppointmentID: ap.ID,
			Result:        result,
		})
	}

	return results
}
