package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washera/carwash-scheduler/internal/audit"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/httpresp"
	"github.com/washera/carwash-scheduler/internal/models"
	"github.com/washera/carwash-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCustomerHandler(
	db *gorm.DB,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CustomerHandler {
	return &CustomerHandler{
		db:    db,
		repo:  repo,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`

	CarType     string `json:"car_type"`
	CarSize     string `json:"car_size"`
	PlateNumber string `json:"plate_number"`
	CarColor    string `json:"car_color"`

	PreferredDays   []string `json:"preferred_days" binding:"required"`
	PreferredPeriod string   `json:"preferred_period"`

	SubscriptionStart string  `json:"subscription_start"`
	SubscriptionEnd   string  `json:"subscription_end"`
	MonthlyPrice      float64 `json:"monthly_price"`
	IsVIP             bool    `json:"is_vip"`
	Notes             string  `json:"notes"`
	Address           string  `json:"address"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`

	PreferredDays   []string `json:"preferred_days"`
	PreferredPeriod *string  `json:"preferred_period"`

	Status *string `json:"status"`
	IsVIP  *bool   `json:"is_vip"`
	Notes  *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidMobile(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Celular fora do padrão 05XXXXXXXX.")
		return
	}

	if !validators.HasValidPreferredDays(req.PreferredDays) {
		httperr.BadRequest(c, "invalid_preferred_days", "Informe exatamente 3 dias da semana distintos.")
		return
	}

	period := req.PreferredPeriod
	if period == "" {
		period = string(domain.PreferFlexible)
	}
	if !domain.PreferredPeriod(period).Valid() {
		httperr.BadRequest(c, "invalid_preferred_period", "Período preferido inválido.")
		return
	}

	var count int64
	h.db.Model(&models.Customer{}).Where("phone = ?", req.Phone).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "phone_already_exists", "Já existe assinante com esse celular.")
		return
	}

	joinDate := req.SubscriptionStart
	if joinDate == "" {
		joinDate = todayISO()
	}

	customer := models.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,

		CarType:     req.CarType,
		CarSize:     req.CarSize,
		PlateNumber: req.PlateNumber,
		CarColor:    req.CarColor,

		SubscriptionStart: joinDate,
		SubscriptionEnd:   req.SubscriptionEnd,

		TotalWashes:     10,
		PaidWashes:      8,
		FreeWashes:      2,
		RemainingWashes: 10,

		PreferredDays:   req.PreferredDays,
		PreferredPeriod: period,

		Status:       string(domain.CustomerActive),
		MonthlyPrice: req.MonthlyPrice,
		JoinDate:     joinDate,
		IsVIP:        req.IsVIP,
		Notes:        req.Notes,
		Address:      req.Address,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Erro ao criar assinante.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   audit.ActionCustomerCreated,
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(201, customer)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Customer{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.Order("join_date ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar assinantes.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Assinante não encontrado.")
		return
	}

	httpresp.OK(c, customer)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Assinante não encontrado.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Phone != nil {
		if !validators.IsValidMobile(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Celular fora do padrão 05XXXXXXXX.")
			return
		}
		customer.Phone = *req.Phone
	}

	if req.PreferredDays != nil {
		if !validators.HasValidPreferredDays(req.PreferredDays) {
			httperr.BadRequest(c, "invalid_preferred_days", "Informe exatamente 3 dias da semana distintos.")
			return
		}
		customer.PreferredDays = req.PreferredDays
	}

	if req.PreferredPeriod != nil {
		if !domain.PreferredPeriod(*req.PreferredPeriod).Valid() {
			httperr.BadRequest(c, "invalid_preferred_period", "Período preferido inválido.")
			return
		}
		customer.PreferredPeriod = *req.PreferredPeriod
	}

	if req.Status != nil {
		if !domain.CustomerStatus(*req.Status).Valid() {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		customer.Status = *req.Status
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.IsVIP != nil {
		customer.IsVIP = *req.IsVIP
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Erro ao atualizar assinante.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   audit.ActionCustomerUpdated,
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.OK(c, customer)
}

// ======================================================
// DELETE (cascata: leva o histórico junto)
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.GetCustomerByID(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, "customer_not_found", "Assinante não encontrado.")
		return
	}

	if err := h.repo.DeleteCustomerCascade(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erro ao excluir assinante.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   audit.ActionCustomerDeleted,
		Entity:   "customer",
		EntityID: &id,
	})

	c.JSON(200, gin.H{"deleted": true})
}
