package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking statuses
const (
	BookingStatusCreated   = "created"
	BookingStatusSubmitted = "submitted"
)

// FerryBooking сохранённая бронь (создание сессии; оплата и подтверждение
// у оператора выполняются дальше по цепочке, вне этого сервиса)
type FerryBooking struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	SessionID     string         `json:"session_id" gorm:"uniqueIndex;size:64;not null"`
	Operator      string         `json:"operator" gorm:"not null;index:idx_booking_operator"`
	FerryID       string         `json:"ferry_id" gorm:"not null"`
	FerryName     string         `json:"ferry_name"`
	ClassID       string         `json:"class_id" gorm:"not null"`
	RouteFrom     string         `json:"route_from"`
	RouteTo       string         `json:"route_to"`
	TravelDate    string         `json:"travel_date" gorm:"index:idx_booking_date"`
	DepartureTime string         `json:"departure_time"`
	Adults        int            `json:"adults"`
	Children      int            `json:"children"`
	Infants       int            `json:"infants"`
	Seats         datatypes.JSON `json:"seats"`
	Passengers    datatypes.JSON `json:"passengers"`
	ContactName   string         `json:"contact_name"`
	ContactEmail  string         `json:"contact_email"`
	ContactPhone  string         `json:"contact_phone"`
	TotalFare     float64        `json:"total_fare"`
	Status        string         `json:"status" gorm:"default:'created';index:idx_booking_status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// PassengerDetail данные одного пассажира в заявке
type PassengerDetail struct {
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
	IDNumber string `json:"id_number"`
}

// ContactDetails контактные данные заявки
type ContactDetails struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}
