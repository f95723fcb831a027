package dto

type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	DayName      string `json:"day_name"`
	Time         string `json:"time"`
	Period       string `json:"period"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
	WashNumber   int    `json:"wash_number"`
	IsPaid       bool   `json:"is_paid"`
}
