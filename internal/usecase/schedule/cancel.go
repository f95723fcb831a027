package schedule

import (
	"context"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	"github.com/washera/carwash-scheduler/internal/clock"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	cache cache.Cache
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	c cache.Cache,
	clk clock.Clock,
	dispatcher *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: c,
		clock: clk,
		audit: dispatcher,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	invalidateCapacityForDate(ctx, uc.cache, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
