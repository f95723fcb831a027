package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *ScheduleGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *ScheduleGormRepository) ListCustomersByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Customer, error) {

	var customers []models.Customer
	if len(ids) == 0 {
		return customers, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *ScheduleGormRepository) ListActiveCustomers(
	ctx context.Context,
) ([]models.Customer, error) {

	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.CustomerActive)).
		Order("join_date ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *ScheduleGormRepository) UpdateCustomer(
	ctx context.Context,
	customer *models.Customer,
) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// DeleteCustomerCascade remove o cliente junto com todo o seu
// histórico de agendamentos e entradas de lista de espera.
func (r *ScheduleGormRepository) DeleteCustomerCascade(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("customer_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("customer_id = ?", id).
			Delete(&models.WaitListEntry{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Customer{}, id).Error
	})
}

// --------------------------------------------------
// Appointment (leitura)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForMonth(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	start := fmt.Sprintf("%04d-%02d-01", year, month)

	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	end := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListUpcomingBefore(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ? AND date < ?", string(domain.StatusUpcoming), date).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (escrita)
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointments(
	ctx context.Context,
	appointments []models.Appointment,
) ([]models.Appointment, error) {

	if len(appointments) == 0 {
		return appointments, nil
	}

	if err := r.db.WithContext(ctx).
		CreateInBatches(&appointments, 50).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	appointment *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

// --------------------------------------------------
// Wait list
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWaitingEntries(
	ctx context.Context,
) ([]models.WaitListEntry, error) {

	var entries []models.WaitListEntry
	if err := r.db.WithContext(ctx).
		Where("status = ?", "waiting").
		Order("requested_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ScheduleGormRepository) CreateWaitListEntry(
	ctx context.Context,
	entry *models.WaitListEntry,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
