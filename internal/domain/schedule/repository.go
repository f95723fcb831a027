package schedule

import (
	"context"

	"github.com/washera/carwash-scheduler/internal/models"
)

// Colaborador de armazenamento: o motor nunca toca o banco, opera
// sempre sobre o snapshot em memória que o chamador carregou daqui.
type Repository interface {
	// -------- Customer --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	ListCustomersByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Customer, error)

	ListActiveCustomers(
		ctx context.Context,
	) ([]models.Customer, error)

	UpdateCustomer(
		ctx context.Context,
		customer *models.Customer,
	) error

	DeleteCustomerCascade(
		ctx context.Context,
		id uint,
	) error

	// -------- Appointment (leitura) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForMonth(
		ctx context.Context,
		year int,
		month int,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsInRange(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Appointment, error)

	ListUpcomingBefore(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment (escrita) --------
	CreateAppointments(
		ctx context.Context,
		appointments []models.Appointment,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		appointment *models.Appointment,
	) error

	// -------- Wait list --------
	ListWaitingEntries(
		ctx context.Context,
	) ([]models.WaitListEntry, error)

	CreateWaitListEntry(
		ctx context.Context,
		entry *models.WaitListEntry,
	) error
}
