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

type CompleteAppointment struct {
	repo  domain.Repository
	cache cache.Cache
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	c cache.Cache,
	clk clock.Clock,
	dispatcher *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		cache: c,
		clock: clk,
		audit: dispatcher,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	ap.Status = string(domain.StatusCompleted)
	ap.CompletedAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Contadores do ciclo do cliente acompanham a lavagem feita.
	if customer, err := uc.repo.GetCustomerByID(ctx, ap.CustomerID); err == nil {
		customer.CompletedWashes++
		if customer.RemainingWashes > 0 {
			customer.RemainingWashes--
		}
		customer.LastWashDate = ap.Date
		if ap.IsPaid {
			customer.TotalSpent += ap.Price
		}

		if err := uc.repo.UpdateCustomer(ctx, customer); err != nil {
			return nil, err
		}
	}

	invalidateCapacityForDate(ctx, uc.cache, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionAppointmentCompleted,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
