package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Snapshot do cliente no momento da criação (para exibição).
	// Não é atualizado retroativamente quando o cadastro muda.
	CustomerName string `gorm:"size:100" json:"customer_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	CarType      string `gorm:"size:100" json:"car_type"`
	CarSize      string `gorm:"size:20" json:"car_size"`

	Date    string `gorm:"size:10;index" json:"date"`
	DayName string `gorm:"size:10" json:"day_name"`
	Time    string `gorm:"size:5" json:"time"`
	Period  string `gorm:"size:10" json:"period"`

	WashNumber int    `json:"wash_number"`
	Status     string `gorm:"size:20;default:'upcoming'" json:"status"`

	Price  float64 `json:"price"`
	IsPaid bool    `json:"is_paid"`
	IsFree bool    `json:"is_free"`

	Notes string `gorm:"size:255" json:"notes"`

	WasRescheduled   bool   `json:"was_rescheduled"`
	OriginalDate     string `gorm:"size:10" json:"original_date,omitempty"`
	RescheduleReason string `gorm:"size:100" json:"reschedule_reason,omitempty"`
	RescheduledBy    string `gorm:"size:20" json:"rescheduled_by,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}
