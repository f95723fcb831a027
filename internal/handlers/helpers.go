package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/middleware"
	"github.com/washera/carwash-scheduler/internal/timezone"
)

// todayISO é a data operacional corrente no fuso da lavagem.
func todayISO() string {
	return timezone.Now().Format(domain.ISODate)
}

// parseYearMonth lê e valida ?year=&month=. Já responde o erro; o
// chamador só precisa checar ok.
func parseYearMonth(c *gin.Context) (int, int, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return 0, 0, false
	}

	return year, month, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// currentUserID devolve o usuário autenticado como ponteiro, pronto
// para os campos de auditoria.
func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
