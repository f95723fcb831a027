package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/httpresp"
)

const capacityTTL = 60 * time.Second

// ======================================================
// HANDLER
// ======================================================

type CapacityHandler struct {
	repo   domain.Repository
	engine *domain.Engine
	cache  cache.Cache
}

func NewCapacityHandler(
	repo domain.Repository,
	engine *domain.Engine,
	c cache.Cache,
) *CapacityHandler {
	return &CapacityHandler{
		repo:   repo,
		engine: engine,
		cache:  c,
	}
}

// ======================================================
// DIA
// ======================================================

func (h *CapacityHandler) Day(c *gin.Context) {
	date := c.Param("date")
	if !domain.IsValidISODate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	key := cache.DayCapacityKey(date)
	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(200, "application/json", []byte(cached))
		return
	}

	aps, err := h.repo.ListAppointmentsForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_load_day", "Erro ao carregar o dia.")
		return
	}

	capacity := h.engine.DayCapacity(date, aps)

	payload := gin.H{"date": date, "capacity": capacity}
	if body, err := json.Marshal(payload); err == nil {
		h.cache.Set(c.Request.Context(), key, string(body), capacityTTL)
	}

	httpresp.OK(c, payload)
}

// Vagas livres da grade de um período do dia.
func (h *CapacityHandler) DaySlots(c *gin.Context) {
	date := c.Param("date")
	if !domain.IsValidISODate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	period := domain.Period(c.DefaultQuery("period", string(domain.PeriodMorning)))
	if period != domain.PeriodMorning && period != domain.PeriodEvening {
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	aps, err := h.repo.ListAppointmentsForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_load_day", "Erro ao carregar o dia.")
		return
	}

	c.JSON(200, gin.H{
		"date":   date,
		"period": period,
		"slots":  h.engine.AvailableTimeSlots(date, period, aps),
	})
}

// ======================================================
// MÊS
// ======================================================

func (h *CapacityHandler) Month(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	key := cache.MonthUtilizationKey(year, month)
	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(200, "application/json", []byte(cached))
		return
	}

	aps, err := h.repo.ListAppointmentsForMonth(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_load_month", "Erro ao carregar o mês.")
		return
	}

	payload := gin.H{
		"year":        year,
		"month":       month,
		"utilization": h.engine.Utilization(aps, year, month),
	}
	if body, err := json.Marshal(payload); err == nil {
		h.cache.Set(c.Request.Context(), key, string(body), capacityTTL)
	}

	httpresp.OK(c, payload)
}

// ======================================================
// DIAGNÓSTICO
// ======================================================

func (h *CapacityHandler) Integrity(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	aps, err := h.repo.ListAppointmentsForMonth(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_load_month", "Erro ao carregar o mês.")
		return
	}

	httpresp.OK(c, h.engine.ValidateIntegrity(aps))
}

func (h *CapacityHandler) Feasibility(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	customer, err := h.repo.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		httperr.NotFound(c, "customer_not_found", "Assinante não encontrado.")
		return
	}

	aps, err := h.repo.ListAppointmentsForMonth(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_load_month", "Erro ao carregar o mês.")
		return
	}

	httpresp.OK(c, h.engine.CanScheduleCustomerInMonth(
		customer.ID,
		year,
		month,
		customer.TotalWashes,
		aps,
	))
}
