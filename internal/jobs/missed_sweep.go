package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/clock"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/timezone"
	ucSchedule "github.com/washera/carwash-scheduler/internal/usecase/schedule"
)

// MissedSweep roda de madrugada: agendamentos que passaram do dia sem
// conclusão viram falta e entram no reagendamento automático em lote.
type MissedSweep struct {
	repo       domain.Repository
	markMissed *ucSchedule.MarkAppointmentMissed
	reschedule *ucSchedule.BulkRescheduleMissed
	clock      clock.Clock
	audit      *audit.Dispatcher
}

func NewMissedSweep(
	repo domain.Repository,
	markMissed *ucSchedule.MarkAppointmentMissed,
	reschedule *ucSchedule.BulkRescheduleMissed,
	clk clock.Clock,
	dispatcher *audit.Dispatcher,
) *MissedSweep {
	return &MissedSweep{
		repo:       repo,
		markMissed: markMissed,
		reschedule: reschedule,
		clock:      clk,
		audit:      dispatcher,
	}
}

func (j *MissedSweep) Register(c *cron.Cron) error {
	_, err := c.AddFunc("0 1 * * *", j.Run)
	return err
}

func (j *MissedSweep) Run() {
	ctx := context.Background()

	today := j.clock.Now().
		In(timezone.Location(timezone.DefaultTimezone)).
		Format(domain.ISODate)

	overdue, err := j.repo.ListUpcomingBefore(ctx, today)
	if err != nil {
		log.Println("missed sweep: failed to list overdue appointments:", err)
		return
	}

	marked := 0
	for _, ap := range overdue {
		if _, err := j.markMissed.Execute(ctx, ap.ID, nil); err != nil {
			log.Printf("missed sweep: appointment %d: %v", ap.ID, err)
			continue
		}
		marked++
	}

	out, err := j.reschedule.Execute(ctx, nil)
	if err != nil {
		log.Println("missed sweep: bulk reschedule failed:", err)
		return
	}

	j.audit.Dispatch(audit.Event{
		Action: audit.ActionMissedSweepRun,
		Entity: "schedule_batch",
		Metadata: map[string]any{
			"batch_id":     out.BatchID,
			"marked":       marked,
			"rescheduled":  out.Rescheduled,
			"unresolvable": out.Unresolvable,
		},
	})

	log.Printf(
		"missed sweep: %d marked missed, %d rescheduled, %d unresolvable (batch %s)",
		marked,
		out.Rescheduled,
		out.Unresolvable,
		out.BatchID,
	)
}
