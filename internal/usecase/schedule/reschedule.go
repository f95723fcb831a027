package schedule

import (
	"context"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleAppointmentInput struct {
	AppointmentID uint
	NewDate       string
	Reason        string
	IsAutomatic   bool
	UserID        *uint
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo   domain.Repository
	engine *domain.Engine
	cache  cache.Cache
	audit  *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	engine *domain.Engine,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		engine: engine,
		cache:  c,
		audit:  dispatcher,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*domain.RescheduleResult, error) {

	// --------------------------------------------------
	// 1. Agendamento + cliente
	// --------------------------------------------------
	oldAp, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(oldAp.Status)); err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomerByID(ctx, oldAp.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	// --------------------------------------------------
	// 2. Janela de busca em memória
	// --------------------------------------------------
	anchor := in.NewDate
	if anchor == "" {
		anchor = oldAp.Date
	}
	if !domain.IsValidISODate(anchor) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	window, err := uc.repo.ListAppointmentsInRange(
		ctx,
		anchor,
		domain.AddDays(anchor, uc.engine.Config().RescheduleWindowDays),
	)
	if err != nil {
		return nil, err
	}

	// O agendamento antigo precisa estar no conjunto para o motor
	// localizá-lo, mesmo quando a âncora avança além da data dele.
	window = ensureIncluded(window, *oldAp)

	// --------------------------------------------------
	// 3. Motor
	// --------------------------------------------------
	result := uc.engine.AutoReschedule(domain.RescheduleRequest{
		AppointmentID: in.AppointmentID,
		NewDate:       in.NewDate,
		Reason:        in.Reason,
		IsAutomatic:   in.IsAutomatic,
	}, customer, window)

	if !result.Success {
		return &result, nil
	}

	// --------------------------------------------------
	// 4. Persistência: novo registro + antigo vira rescheduled
	// --------------------------------------------------
	persisted, err := uc.repo.CreateAppointments(
		ctx,
		[]models.Appointment{*result.NewAppointment},
	)
	if err != nil {
		return nil, err
	}
	result.NewAppointment = &persisted[0]

	oldAp.Status = string(domain.StatusRescheduled)
	if err := uc.repo.UpdateAppointment(ctx, oldAp); err != nil {
		return nil, err
	}

	invalidateCapacityForDate(ctx, uc.cache, oldAp.Date)
	invalidateCapacityForDate(ctx, uc.cache, result.NewAppointment.Date)

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   "appointment",
		EntityID: &oldAp.ID,
		Metadata: map[string]any{
			"from":           oldAp.Date,
			"to":             result.NewAppointment.Date,
			"rescheduled_by": result.NewAppointment.RescheduledBy,
		},
	})

	return &result, nil
}

func ensureIncluded(set []models.Appointment, ap models.Appointment) []models.Appointment {
	for _, existing := range set {
		if existing.ID == ap.ID {
			return set
		}
	}
	return append(set, ap)
}
