package models

import "time"

// Assinante do serviço de lavagem. Datas de calendário ficam em ISO
// YYYY-MM-DD (string) porque todo o motor de agendamento trabalha
// sobre dias de calendário, nunca sobre instantes.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CarType     string `gorm:"size:100" json:"car_type"`
	CarSize     string `gorm:"size:20;default:'small'" json:"car_size"`
	PlateNumber string `gorm:"size:20" json:"plate_number"`
	CarColor    string `gorm:"size:30" json:"car_color"`

	SubscriptionStart string `gorm:"size:10" json:"subscription_start"`
	SubscriptionEnd   string `gorm:"size:10" json:"subscription_end"`

	TotalWashes     int `gorm:"default:10" json:"total_washes"`
	PaidWashes      int `gorm:"default:8" json:"paid_washes"`
	FreeWashes      int `gorm:"default:2" json:"free_washes"`
	RemainingWashes int `json:"remaining_washes"`
	CompletedWashes int `json:"completed_washes"`
	MissedWashes    int `json:"missed_washes"`

	// Exatamente 3 dias da semana distintos, validados na criação.
	PreferredDays   StringList `gorm:"serializer:json" json:"preferred_days"`
	PreferredPeriod string     `gorm:"size:20;default:'flexible'" json:"preferred_period"`

	Status       string  `gorm:"size:20;default:'active'" json:"status"`
	MonthlyPrice float64 `gorm:"default:80" json:"monthly_price"`
	TotalSpent   float64 `json:"total_spent"`

	JoinDate     string `gorm:"size:10" json:"join_date"`
	LastWashDate string `gorm:"size:10" json:"last_wash_date"`
	NextWashDate string `gorm:"size:10" json:"next_wash_date"`

	IsVIP bool `gorm:"column:is_vip" json:"is_vip"`

	Notes   string `gorm:"size:255" json:"notes"`
	Address string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StringList []string
