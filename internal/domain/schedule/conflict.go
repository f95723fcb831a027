package schedule

import (
	"fmt"
	"sort"

	"github.com/washera/carwash-scheduler/internal/models"
)

// ===============================
// Tipos de conflito
// ===============================

type ConflictType string

const (
	ConflictExactTime         ConflictType = "exact_time"
	ConflictCapacity          ConflictType = "capacity"
	ConflictCustomerDuplicate ConflictType = "customer_duplicate"
)

type Conflict struct {
	Type          ConflictType `json:"type"`
	Message       string       `json:"message"`
	AppointmentID uint         `json:"appointment_id,omitempty"`
}

type ConflictCheck struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []Conflict `json:"conflicts"`
}

// Candidate é o agendamento proposto, antes de existir como registro.
type Candidate struct {
	CustomerID uint
	Date       string
	Time       string
	Period     Period
}

// ===============================
// Detecção
// ===============================

// activeOnly filtra cancelados/reagendados (não ocupam mais vaga) e o
// próprio registro em edição (excludeID).
func activeOnly(existing []models.Appointment, excludeID uint) []models.Appointment {
	active := make([]models.Appointment, 0, len(existing))
	for _, a := range existing {
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		if !Status(a.Status).Occupies() {
			continue
		}
		active = append(active, a)
	}
	return active
}

// CheckConflict roda as três verificações de forma independente: um
// candidato pode disparar mais de uma ao mesmo tempo.
func (e *Engine) CheckConflict(
	cand Candidate,
	existing []models.Appointment,
	excludeID uint,
) ConflictCheck {

	var conflicts []Conflict
	active := activeOnly(existing, excludeID)

	// 1. Mesmo (data, horário) exato
	for _, a := range active {
		if a.Date == cand.Date && a.Time == cand.Time {
			conflicts = append(conflicts, Conflict{
				Type:          ConflictExactTime,
				Message:       fmt.Sprintf("another appointment at the same time: %s", a.CustomerName),
				AppointmentID: a.ID,
			})
			break
		}
	}

	// 2. Capacidade do período (data, período)
	if cand.Date != "" && cand.Period != "" {
		used := 0
		for _, a := range active {
			if a.Date == cand.Date && a.Period == string(cand.Period) {
				used++
			}
		}

		capacity := e.cfg.PeriodCapacity(cand.Period)
		if used >= capacity {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictCapacity,
				Message: fmt.Sprintf("%s period is full (%d/%d)", cand.Period, used, capacity),
			})
		}
	}

	// 3. Mesmo cliente, mesmo dia
	if cand.CustomerID != 0 && cand.Date != "" {
		for _, a := range active {
			if a.CustomerID == cand.CustomerID && a.Date == cand.Date {
				conflicts = append(conflicts, Conflict{
					Type:          ConflictCustomerDuplicate,
					Message:       "customer already has an appointment on this date",
					AppointmentID: a.ID,
				})
				break
			}
		}
	}

	return ConflictCheck{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}

// ===============================
// Disponibilidade
// ===============================

// AvailableTimeSlots devolve os horários da grade ainda não ocupados
// em (data, período), preservando a ordem da grade.
func (e *Engine) AvailableTimeSlots(
	date string,
	period Period,
	existing []models.Appointment,
) []string {

	booked := make(map[string]bool)
	for _, a := range existing {
		if a.Date == date && a.Period == string(period) && Status(a.Status).Occupies() {
			booked[a.Time] = true
		}
	}

	var free []string
	for _, slot := range e.cfg.SlotsFor(period) {
		if !booked[slot] {
			free = append(free, slot)
		}
	}
	return free
}

type DayCapacity struct {
	MorningUsed      int `json:"morning_used"`
	MorningAvailable int `json:"morning_available"`
	EveningUsed      int `json:"evening_used"`
	EveningAvailable int `json:"evening_available"`
	TotalUsed        int `json:"total_used"`
	TotalAvailable   int `json:"total_available"`
}

// DayCapacity conta agendamentos ativos por período. Os campos
// "available" podem ficar negativos se a integridade já foi violada a
// montante; o chamador não deve assumir valores não-negativos.
func (e *Engine) DayCapacity(date string, existing []models.Appointment) DayCapacity {
	morning, evening := 0, 0
	for _, a := range existing {
		if a.Date != date || !Status(a.Status).Occupies() {
			continue
		}
		if a.Period == string(PeriodMorning) {
			morning++
		} else {
			evening++
		}
	}

	total := morning + evening
	return DayCapacity{
		MorningUsed:      morning,
		MorningAvailable: e.cfg.MorningCapacity - morning,
		EveningUsed:      evening,
		EveningAvailable: e.cfg.EveningCapacity - evening,
		TotalUsed:        total,
		TotalAvailable:   e.cfg.DailyCapacity() - total,
	}
}

type MonthFeasibility struct {
	Possible      bool   `json:"possible"`
	Reason        string `json:"reason,omitempty"`
	AvailableDays int    `json:"available_days"`
}

// CanScheduleCustomerInMonth é condição necessária, não suficiente:
// dias com alguma vaga >= lavagens pedidas.
func (e *Engine) CanScheduleCustomerInMonth(
	customerID uint,
	year, month int,
	requiredWashes int,
	existing []models.Appointment,
) MonthFeasibility {

	available := 0
	for _, date := range GenerateMonthDates(year, month) {
		if e.DayCapacity(date, existing).TotalAvailable > 0 {
			available++
		}
	}

	if available < requiredWashes {
		return MonthFeasibility{
			Possible:      false,
			Reason:        fmt.Sprintf("available days (%d) fewer than required washes (%d)", available, requiredWashes),
			AvailableDays: available,
		}
	}

	return MonthFeasibility{Possible: true, AvailableDays: available}
}

// ===============================
// Auditoria global
// ===============================

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

type IntegrityIssue struct {
	Severity       string `json:"severity"`
	Message        string `json:"message"`
	AppointmentIDs []uint `json:"appointment_ids,omitempty"`
}

type IntegrityReport struct {
	Valid  bool             `json:"valid"`
	Issues []IntegrityIssue `json:"issues"`
}

// ValidateIntegrity é uma auditoria a posteriori: o agendador só evita
// violações novas, dados importados podem chegar já inconsistentes.
func (e *Engine) ValidateIntegrity(appointments []models.Appointment) IntegrityReport {
	var issues []IntegrityIssue
	active := activeOnly(appointments, 0)

	// (data, horário) com mais de um agendamento ativo
	timeMap := make(map[string][]uint)
	for _, a := range active {
		key := a.Date + " " + a.Time
		timeMap[key] = append(timeMap[key], a.ID)
	}

	timeKeys := make([]string, 0, len(timeMap))
	for key := range timeMap {
		timeKeys = append(timeKeys, key)
	}
	sort.Strings(timeKeys)

	for _, key := range timeKeys {
		if ids := timeMap[key]; len(ids) > 1 {
			issues = append(issues, IntegrityIssue{
				Severity:       SeverityError,
				Message:        fmt.Sprintf("time conflict at %s", key),
				AppointmentIDs: ids,
			})
		}
	}

	// (data, período) acima da capacidade
	type counts struct{ morning, evening int }
	dateMap := make(map[string]counts)
	for _, a := range active {
		c := dateMap[a.Date]
		if a.Period == string(PeriodMorning) {
			c.morning++
		} else {
			c.evening++
		}
		dateMap[a.Date] = c
	}

	dates := make([]string, 0, len(dateMap))
	for date := range dateMap {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		c := dateMap[date]
		if c.morning > e.cfg.MorningCapacity {
			issues = append(issues, IntegrityIssue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("morning capacity exceeded on %s: %d/%d", date, c.morning, e.cfg.MorningCapacity),
			})
		}
		if c.evening > e.cfg.EveningCapacity {
			issues = append(issues, IntegrityIssue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("evening capacity exceeded on %s: %d/%d", date, c.evening, e.cfg.EveningCapacity),
			})
		}
	}

	valid := true
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			valid = false
			break
		}
	}

	return IntegrityReport{Valid: valid, Issues: issues}
}
