package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type BulkRescheduleOutput struct {
	BatchID      string                               `json:"batch_id"`
	Results      []domain.AppointmentRescheduleResult `json:"results"`
	Rescheduled  int                                  `json:"rescheduled"`
	Unresolvable int                                  `json:"unresolvable"`
}

// ======================================================
// USE CASE
// ======================================================

// BulkRescheduleMissed reagenda todas as faltas pendentes de uma vez,
// na ordem das datas, dobrando cada sugestão aceita antes da próxima.
type BulkRescheduleMissed struct {
	repo   domain.Repository
	engine *domain.Engine
	cache  cache.Cache
	audit  *audit.Dispatcher
}

func NewBulkRescheduleMissed(
	repo domain.Repository,
	engine *domain.Engine,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *BulkRescheduleMissed {
	return &BulkRescheduleMissed{
		repo:   repo,
		engine: engine,
		cache:  c,
		audit:  dispatcher,
	}
}

func (uc *BulkRescheduleMissed) Execute(
	ctx context.Context,
	userID *uint,
) (*BulkRescheduleOutput, error) {

	// --------------------------------------------------
	// 1. Faltas pendentes (sem reagendamento anterior)
	// --------------------------------------------------
	missed, err := uc.repo.ListAppointmentsByStatus(ctx, domain.StatusMissed)
	if err != nil {
		return nil, err
	}
	if len(missed) == 0 {
		return &BulkRescheduleOutput{
			BatchID: uuid.New().String(),
			Results: []domain.AppointmentRescheduleResult{},
		}, nil
	}

	// --------------------------------------------------
	// 2. Clientes e janela de busca
	// --------------------------------------------------
	ids := make([]uint, 0, len(missed))
	seen := make(map[uint]bool, len(missed))
	for _, ap := range missed {
		if !seen[ap.CustomerID] {
			seen[ap.CustomerID] = true
			ids = append(ids, ap.CustomerID)
		}
	}

	customers, err := uc.repo.ListCustomersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	// missed vem ordenado por data; a janela vai da primeira falta até
	// a última mais o horizonte de reagendamento.
	from := missed[0].Date
	to := domain.AddDays(
		missed[len(missed)-1].Date,
		uc.engine.Config().RescheduleWindowDays,
	)

	window, err := uc.repo.ListAppointmentsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Motor
	// --------------------------------------------------
	results := uc.engine.BulkAutoReschedule(missed, byID, window)

	// --------------------------------------------------
	// 4. Persistência
	// --------------------------------------------------
	out := &BulkRescheduleOutput{
		BatchID: uuid.New().String(),
		Results: results,
	}

	var produced []models.Appointment
	byAppointmentID := make(map[uint]*models.Appointment, len(missed))
	for i := range missed {
		byAppointmentID[missed[i].ID] = &missed[i]
	}

	for i := range results {
		r := &results[i]
		if !r.Result.Success {
			out.Unresolvable++
			continue
		}

		persisted, err := uc.repo.CreateAppointments(
			ctx,
			[]models.Appointment{*r.Result.NewAppointment},
		)
		if err != nil {
			return nil, err
		}
		r.Result.NewAppointment = &persisted[0]
		produced = append(produced, persisted...)

		if oldAp := byAppointmentID[r.AppointmentID]; oldAp != nil {
			oldAp.Status = string(domain.StatusRescheduled)
			if err := uc.repo.UpdateAppointment(ctx, oldAp); err != nil {
				return nil, err
			}
			produced = append(produced, *oldAp)
		}

		out.Rescheduled++
	}

	for _, ap := range produced {
		invalidateCapacityForDate(ctx, uc.cache, ap.Date)
	}

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: audit.ActionBulkScheduleRun,
		Entity: "reschedule_batch",
		Metadata: map[string]any{
			"batch_id":     out.BatchID,
			"missed":       len(missed),
			"rescheduled":  out.Rescheduled,
			"unresolvable": out.Unresolvable,
		},
	})

	return out, nil
}
