package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/httpresp"
	ucSchedule "github.com/washera/carwash-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo        domain.Repository
	listByMonth *ucSchedule.ListAppointmentsByMonth
	complete    *ucSchedule.CompleteAppointment
	markMissed  *ucSchedule.MarkAppointmentMissed
	cancel      *ucSchedule.CancelAppointment
	start       *ucSchedule.StartAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	listByMonth *ucSchedule.ListAppointmentsByMonth,
	complete *ucSchedule.CompleteAppointment,
	markMissed *ucSchedule.MarkAppointmentMissed,
	cancel *ucSchedule.CancelAppointment,
	start *ucSchedule.StartAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:        repo,
		listByMonth: listByMonth,
		complete:    complete,
		markMissed:  markMissed,
		cancel:      cancel,
		start:       start,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = todayISO()
	}
	if !domain.IsValidISODate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.repo.ListAppointmentsForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// TRANSIÇÕES DE STATUS
// ======================================================

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.transition(c, func(id uint, userID *uint) (any, error) {
		return h.start.Execute(c.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(id uint, userID *uint) (any, error) {
		return h.complete.Execute(c.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) MarkMissed(c *gin.Context) {
	h.transition(c, func(id uint, userID *uint) (any, error) {
		return h.markMissed.Execute(c.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(id uint, userID *uint) (any, error) {
		return h.cancel.Execute(c.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(id uint, userID *uint) (any, error),
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := run(id, currentUserID(c))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
		default:
			httperr.Internal(c, "appointment_transition_failed", "Erro ao atualizar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}
