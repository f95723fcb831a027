package schedule

import (
	"context"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type GenerateCustomerScheduleInput struct {
	CustomerID uint
	Year       int
	Month      int
	UserID     *uint
}

// ======================================================
// USE CASE
// ======================================================

type GenerateCustomerSchedule struct {
	repo   domain.Repository
	engine *domain.Engine
	cache  cache.Cache
	audit  *audit.Dispatcher
}

func NewGenerateCustomerSchedule(
	repo domain.Repository,
	engine *domain.Engine,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *GenerateCustomerSchedule {
	return &GenerateCustomerSchedule{
		repo:   repo,
		engine: engine,
		cache:  c,
		audit:  dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GenerateCustomerSchedule) Execute(
	ctx context.Context,
	in GenerateCustomerScheduleInput,
) (*domain.GenerationResult, error) {

	// --------------------------------------------------
	// 1. Cliente
	// --------------------------------------------------
	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	if domain.CustomerStatus(customer.Status) != domain.CustomerActive {
		return nil, httperr.ErrBusiness("customer_not_active")
	}

	// --------------------------------------------------
	// 2. Snapshot do mês
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsForMonth(ctx, in.Year, in.Month)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Motor (puro, em memória)
	// --------------------------------------------------
	result := uc.engine.ScheduleCustomer(customer, in.Year, in.Month, existing)
	if !result.Success {
		return &result, nil
	}

	// --------------------------------------------------
	// 4. Persistência
	// --------------------------------------------------
	persisted, err := uc.repo.CreateAppointments(ctx, result.Schedule)
	if err != nil {
		return nil, err
	}
	result.Schedule = persisted

	if len(persisted) > 0 {
		customer.NextWashDate = persisted[0].Date
		if err := uc.repo.UpdateCustomer(ctx, customer); err != nil {
			return nil, err
		}
	}

	invalidateCapacity(ctx, uc.cache, in.Year, in.Month, result.Schedule)

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionScheduleGenerated,
		Entity:   "customer",
		EntityID: &customer.ID,
		Metadata: map[string]any{
			"year":      in.Year,
			"month":     in.Month,
			"scheduled": len(result.Schedule),
		},
	})

	return &result, nil
}
