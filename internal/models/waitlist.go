package models

import "time"

// Entrada na lista de espera por um horário liberado.
type WaitListEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RequestedAt     time.Time `json:"requested_at"`
	PreferredDate   string    `gorm:"size:10" json:"preferred_date"`
	PreferredPeriod string    `gorm:"size:20" json:"preferred_period"`

	Status string `gorm:"size:20;default:'waiting'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
