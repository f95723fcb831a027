package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/clock"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type WaitListHandler struct {
	repo   domain.Repository
	engine *domain.Engine
	clock  clock.Clock
	audit  *audit.Dispatcher
}

func NewWaitListHandler(
	repo domain.Repository,
	engine *domain.Engine,
	clk clock.Clock,
	dispatcher *audit.Dispatcher,
) *WaitListHandler {
	return &WaitListHandler{
		repo:   repo,
		engine: engine,
		clock:  clk,
		audit:  dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type JoinWaitListRequest struct {
	CustomerID      uint   `json:"customer_id" binding:"required"`
	PreferredDate   string `json:"preferred_date"`
	PreferredPeriod string `json:"preferred_period"`
}

type waitListItem struct {
	Entry    models.WaitListEntry `json:"entry"`
	Customer *models.Customer     `json:"customer,omitempty"`
	Score    int                  `json:"score"`
}

// ======================================================
// LIST (ordem de prioridade)
// ======================================================

func (h *WaitListHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.repo.ListWaitingEntries(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_waitlist", "Erro ao listar a fila.")
		return
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CustomerID)
	}

	customers, err := h.repo.ListCustomersByIDs(ctx, ids)
	if err != nil {
		httperr.Internal(c, "failed_to_list_waitlist", "Erro ao listar a fila.")
		return
	}

	byID := make(map[uint]models.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}

	now := h.clock.Now()
	ordered := h.engine.SortWaitingList(entries, byID, now)

	items := make([]waitListItem, 0, len(ordered))
	for _, entry := range ordered {
		item := waitListItem{Entry: entry}
		if customer, ok := byID[entry.CustomerID]; ok {
			customer := customer
			item.Customer = &customer
			item.Score = h.engine.PriorityScore(&customer, entry.RequestedAt, now)
		}
		items = append(items, item)
	}

	c.JSON(200, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// ======================================================
// JOIN
// ======================================================

func (h *WaitListHandler) Join(c *gin.Context) {
	var req JoinWaitListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.repo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		httperr.NotFound(c, "customer_not_found", "Assinante não encontrado.")
		return
	}

	if req.PreferredDate != "" && !domain.IsValidISODate(req.PreferredDate) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	entry := models.WaitListEntry{
		CustomerID:      req.CustomerID,
		RequestedAt:     h.clock.Now(),
		PreferredDate:   req.PreferredDate,
		PreferredPeriod: req.PreferredPeriod,
		Status:          "waiting",
	}

	if err := h.repo.CreateWaitListEntry(ctx, &entry); err != nil {
		httperr.Internal(c, "failed_to_join_waitlist", "Erro ao entrar na fila.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   audit.ActionWaitListJoined,
		Entity:   "waitlist_entry",
		EntityID: &entry.ID,
	})

	c.JSON(201, entry)
}
