package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/httpresp"
	ucSchedule "github.com/washera/carwash-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	generate      *ucSchedule.GenerateCustomerSchedule
	bulkGenerate  *ucSchedule.BulkGenerateSchedules
	reschedule    *ucSchedule.RescheduleAppointment
	rescheduleAll *ucSchedule.BulkRescheduleMissed
}

func NewScheduleHandler(
	generate *ucSchedule.GenerateCustomerSchedule,
	bulkGenerate *ucSchedule.BulkGenerateSchedules,
	reschedule *ucSchedule.RescheduleAppointment,
	rescheduleAll *ucSchedule.BulkRescheduleMissed,
) *ScheduleHandler {
	return &ScheduleHandler{
		generate:      generate,
		bulkGenerate:  bulkGenerate,
		reschedule:    reschedule,
		rescheduleAll: rescheduleAll,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateScheduleRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

type BulkGenerateRequest struct {
	CustomerIDs []uint `json:"customer_ids"`
	Year        int    `json:"year" binding:"required"`
	Month       int    `json:"month" binding:"required,min=1,max=12"`
	ChunkSize   int    `json:"chunk_size"`
}

type RescheduleRequest struct {
	NewDate string `json:"new_date"`
	Reason  string `json:"reason"`
}

// ======================================================
// GERAÇÃO
// ======================================================

func (h *ScheduleHandler) GenerateForCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.generate.Execute(c.Request.Context(), ucSchedule.GenerateCustomerScheduleInput{
		CustomerID: customerID,
		Year:       req.Year,
		Month:      req.Month,
		UserID:     currentUserID(c),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "customer_not_found"):
			httperr.NotFound(c, "customer_not_found", "Assinante não encontrado.")
		case httperr.IsBusiness(err, "customer_not_active"):
			httperr.BadRequest(c, "customer_not_active", "Assinante sem assinatura ativa.")
		default:
			httperr.Internal(c, "schedule_generation_failed", "Erro ao gerar agenda.")
		}
		return
	}

	httpresp.OK(c, result)
}

func (h *ScheduleHandler) BulkGenerate(c *gin.Context) {
	var req BulkGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.bulkGenerate.Execute(c.Request.Context(), ucSchedule.BulkGenerateInput{
		CustomerIDs: req.CustomerIDs,
		Year:        req.Year,
		Month:       req.Month,
		ChunkSize:   req.ChunkSize,
		UserID:      currentUserID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "no_customers_in_batch") {
			httperr.BadRequest(c, "no_customers_in_batch", "Nenhum cliente para agendar.")
			return
		}
		httperr.Internal(c, "bulk_generation_failed", "Erro ao gerar agenda em lote.")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// REAGENDAMENTO
// ======================================================

func (h *ScheduleHandler) Reschedule(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.reschedule.Execute(c.Request.Context(), ucSchedule.RescheduleAppointmentInput{
		AppointmentID: appointmentID,
		NewDate:       req.NewDate,
		Reason:        req.Reason,
		IsAutomatic:   false,
		UserID:        currentUserID(c),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser reagendado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "reschedule_failed", "Erro ao reagendar.")
		}
		return
	}

	httpresp.OK(c, result)
}

func (h *ScheduleHandler) RescheduleMissed(c *gin.Context) {
	out, err := h.rescheduleAll.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "bulk_reschedule_failed", "Erro ao reagendar faltas.")
		return
	}

	httpresp.OK(c, out)
}
