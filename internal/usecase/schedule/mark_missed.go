package schedule

import (
	"context"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/models"
)

type MarkAppointmentMissed struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewMarkAppointmentMissed(
	repo domain.Repository,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *MarkAppointmentMissed {
	return &MarkAppointmentMissed{
		repo:  repo,
		cache: c,
		audit: dispatcher,
	}
}

func (uc *MarkAppointmentMissed) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanMiss(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusMissed)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if customer, err := uc.repo.GetCustomerByID(ctx, ap.CustomerID); err == nil {
		customer.MissedWashes++
		if err := uc.repo.UpdateCustomer(ctx, customer); err != nil {
			return nil, err
		}
	}

	invalidateCapacityForDate(ctx, uc.cache, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionAppointmentMissed,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
