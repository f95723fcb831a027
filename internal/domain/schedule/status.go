package schedule

import "github.com/washera/carwash-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusUpcoming    Status = "upcoming"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusMissed      Status = "missed"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusInProgress, StatusCompleted,
		StatusMissed, StatusRescheduled, StatusCancelled:
		return true
	}
	return false
}

// Occupies diz se um agendamento neste status ainda ocupa o horário.
// Cancelados e reagendados liberam a vaga.
func (s Status) Occupies() bool {
	switch s {
	case StatusCancelled, StatusRescheduled:
		return false
	}
	return true
}

func InitialStatus() Status {
	return StatusUpcoming
}

// ===============================
// Transições
// ===============================

func CanStart(current Status) error {
	if current != StatusUpcoming {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusUpcoming && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanMiss(current Status) error {
	if current != StatusUpcoming && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusUpcoming {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Um agendamento só sai para reagendamento se ainda está de pé ou se o
// cliente faltou.
func CanReschedule(current Status) error {
	if current != StatusUpcoming && current != StatusMissed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Customer Status
// ===============================

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerExpired   CustomerStatus = "expired"
	CustomerSuspended CustomerStatus = "suspended"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerActive, CustomerExpired, CustomerSuspended:
		return true
	}
	return false
}
