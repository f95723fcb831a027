package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/httperr"
	"github.com/washera/carwash-scheduler/internal/models"
)

const defaultChunkSize = 10

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BulkGenerateInput struct {
	// Vazio = todos os clientes ativos.
	CustomerIDs []uint
	Year        int
	Month       int
	ChunkSize   int
	UserID      *uint
}

type BulkGenerateOutput struct {
	BatchID string            `json:"batch_id"`
	Result  domain.BulkResult `json:"result"`
}

// ======================================================
// USE CASE
// ======================================================

// BulkGenerateSchedules processa a carteira em blocos, dobrando os
// agendamentos aceitos de cada bloco no conjunto de trabalho antes do
// próximo, para que a capacidade consumida seja sempre visível.
type BulkGenerateSchedules struct {
	repo   domain.Repository
	engine *domain.Engine
	cache  cache.Cache
	audit  *audit.Dispatcher
}

func NewBulkGenerateSchedules(
	repo domain.Repository,
	engine *domain.Engine,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *BulkGenerateSchedules {
	return &BulkGenerateSchedules{
		repo:   repo,
		engine: engine,
		cache:  c,
		audit:  dispatcher,
	}
}

func (uc *BulkGenerateSchedules) Execute(
	ctx context.Context,
	in BulkGenerateInput,
) (*BulkGenerateOutput, error) {

	// --------------------------------------------------
	// 1. Clientes do lote
	// --------------------------------------------------
	var customers []models.Customer
	var err error

	if len(in.CustomerIDs) > 0 {
		customers, err = uc.repo.ListCustomersByIDs(ctx, in.CustomerIDs)
	} else {
		customers, err = uc.repo.ListActiveCustomers(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, httperr.ErrBusiness("no_customers_in_batch")
	}

	// Ordenação global antes de fatiar: VIP primeiro, depois os mais
	// antigos. Dentro de cada bloco o motor reordena de forma estável,
	// então a ordem global se preserva.
	ordered := domain.SortByPriority(customers)

	chunkSize := in.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	// --------------------------------------------------
	// 2. Snapshot do mês + blocos
	// --------------------------------------------------
	working, err := uc.repo.ListAppointmentsForMonth(ctx, in.Year, in.Month)
	if err != nil {
		return nil, err
	}

	total := domain.BulkResult{Success: true}

	for start := 0; start < len(ordered); start += chunkSize {
		end := start + chunkSize
		if end > len(ordered) {
			end = len(ordered)
		}

		chunk := uc.engine.ScheduleBulk(ordered[start:end], in.Year, in.Month, working)

		for _, r := range chunk.Results {
			working = append(working, r.Result.Schedule...)
		}

		total.Results = append(total.Results, chunk.Results...)
		total.TotalScheduled += chunk.TotalScheduled
		total.TotalFailed += chunk.TotalFailed
	}
	total.Success = total.TotalFailed == 0

	// --------------------------------------------------
	// 3. Persistência por cliente atendido
	// --------------------------------------------------
	var produced []models.Appointment
	for i := range total.Results {
		r := &total.Results[i]
		if !r.Result.Success || len(r.Result.Schedule) == 0 {
			continue
		}

		persisted, err := uc.repo.CreateAppointments(ctx, r.Result.Schedule)
		if err != nil {
			return nil, err
		}
		r.Result.Schedule = persisted
		produced = append(produced, persisted...)

		customer := r.Customer
		customer.NextWashDate = persisted[0].Date
		if err := uc.repo.UpdateCustomer(ctx, &customer); err != nil {
			return nil, err
		}
	}

	invalidateCapacity(ctx, uc.cache, in.Year, in.Month, produced)

	// --------------------------------------------------
	// 4. Auditoria do lote
	// --------------------------------------------------
	batchID := uuid.New().String()

	uc.audit.Dispatch(audit.Event{
		UserID: in.UserID,
		Action: audit.ActionBulkScheduleRun,
		Entity: "schedule_batch",
		Metadata: map[string]any{
			"batch_id":        batchID,
			"year":            in.Year,
			"month":           in.Month,
			"customers":       len(ordered),
			"total_scheduled": total.TotalScheduled,
			"total_failed":    total.TotalFailed,
		},
	})

	return &BulkGenerateOutput{BatchID: batchID, Result: total}, nil
}
