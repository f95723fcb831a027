package audit

import "log"

// Ações registradas pela operação da lavagem.
const (
	ActionCustomerCreated        = "customer_created"
	ActionCustomerUpdated        = "customer_updated"
	ActionCustomerDeleted        = "customer_deleted"
	ActionScheduleGenerated      = "schedule_generated"
	ActionBulkScheduleRun        = "bulk_schedule_run"
	ActionAppointmentStarted     = "appointment_started"
	ActionAppointmentCompleted   = "appointment_completed"
	ActionAppointmentMissed      = "appointment_missed"
	ActionAppointmentCancelled   = "appointment_cancelled"
	ActionAppointmentRescheduled = "appointment_rescheduled"
	ActionMissedSweepRun         = "missed_sweep_run"
	ActionWaitListJoined         = "waitlist_joined"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}
