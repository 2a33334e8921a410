package models

import (
	"fmt"
	"strings"
	"time"
)

// Operator identifiers used across the ferry core
const (
	OperatorSealink    = "sealink"
	OperatorMakruzz    = "makruzz"
	OperatorGreenOcean = "greenocean"
)

// AllOperators lists every aggregated ferry operator
var AllOperators = []string{OperatorSealink, OperatorMakruzz, OperatorGreenOcean}

// Seat statuses in the unified seat model
const (
	SeatStatusAvailable = "available"
	SeatStatusBooked    = "booked"
	SeatStatusBlocked   = "blocked"
)

// Operator health statuses
const (
	HealthOnline   = "online"
	HealthDegraded = "degraded"
	HealthOffline  = "offline"
	HealthError    = "error"
)

// Overall health across all operators
const (
	OverallAllOnline     = "all_online"
	OverallPartialOnline = "partial_online"
	OverallAllOffline    = "all_offline"
)

// FerrySearchParams параметры поиска паромов
type FerrySearchParams struct {
	From          string `form:"from" json:"from" binding:"required"`
	To            string `form:"to" json:"to" binding:"required"`
	Date          string `form:"date" json:"date" binding:"required"` // YYYY-MM-DD
	Adults        int    `form:"adults" json:"adults"`
	Children      int    `form:"children" json:"children"`
	Infants       int    `form:"infants" json:"infants"`
	PreferredTime string `form:"time" json:"time,omitempty"` // HH:MM, optional
}

// Validate проверяет инварианты параметров поиска
func (p FerrySearchParams) Validate() error {
	if strings.TrimSpace(p.From) == "" || strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("from and to are required")
	}
	if strings.EqualFold(strings.TrimSpace(p.From), strings.TrimSpace(p.To)) {
		return fmt.Errorf("from and to must be different ports")
	}
	if p.Adults < 1 {
		return fmt.Errorf("at least one adult passenger is required")
	}
	if p.Children < 0 || p.Infants < 0 {
		return fmt.Errorf("passenger counts cannot be negative")
	}
	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD: %v", err)
	}
	// Сравнение по календарной дате в локальной зоне: сегодняшний рейс
	// валиден до конца дня
	if p.Date < time.Now().Format("2006-01-02") {
		return fmt.Errorf("travel date cannot be in the past")
	}
	return nil
}

// SeatedPassengers возвращает количество пассажиров с местами (infants travel on lap)
func (p FerrySearchParams) SeatedPassengers() int {
	return p.Adults + p.Children
}

// FerryRoute маршрут парома
type FerryRoute struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FerrySchedule расписание рейса
type FerrySchedule struct {
	Date          string `json:"date"`          // YYYY-MM-DD
	DepartureTime string `json:"departureTime"` // HH:MM
	ArrivalTime   string `json:"arrivalTime"`   // HH:MM
}

// FerryFeatures возможности оператора по выбору мест
type FerryFeatures struct {
	SupportsSeatSelection  bool `json:"supportsSeatSelection"`
	SupportsAutoAssignment bool `json:"supportsAutoAssignment"`
}

// FerryClass класс обслуживания на пароме
type FerryClass struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Price          float64 `json:"price"`
	TotalSeats     int     `json:"totalSeats,omitempty"`
	AvailableSeats int     `json:"availableSeats"`
}

// OperatorData непрозрачные данные оператора, нужные последующим запросам
// (например числовой route id для seat-layout)
type OperatorData struct {
	OriginalResponse interface{} `json:"originalResponse,omitempty"`
}

// UnifiedFerryResult единый результат поиска, не зависящий от оператора
type UnifiedFerryResult struct {
	Operator        string        `json:"operator"`
	OperatorFerryID string        `json:"operatorFerryId"`
	FerryName       string        `json:"ferryName"`
	Route           FerryRoute    `json:"route"`
	Schedule        FerrySchedule `json:"schedule"`
	Features        FerryFeatures `json:"features"`
	Classes         []FerryClass  `json:"classes"`
	OperatorData    OperatorData  `json:"operatorData"`
}

// Class возвращает класс по id или nil
func (r *UnifiedFerryResult) Class(classID string) *FerryClass {
	for i := range r.Classes {
		if r.Classes[i].ID == classID {
			return &r.Classes[i]
		}
	}
	return nil
}

// Seat единое представление места
type Seat struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`
	Row    int    `json:"row,omitempty"`
	Column string `json:"column,omitempty"`
	Tier   string `json:"tier,omitempty"`
}

// SeatLayout схема мест для одного парома+класса+даты
type SeatLayout struct {
	Operator   string `json:"operator"`
	FerryID    string `json:"ferryId"`
	ClassID    string `json:"classId"`
	TravelDate string `json:"travelDate"`
	Seats      []Seat `json:"seats"`
}

// Seat ищет место по id
func (l *SeatLayout) Seat(id string) *Seat {
	for i := range l.Seats {
		if l.Seats[i].ID == id {
			return &l.Seats[i]
		}
	}
	return nil
}

// AvailableCount количество свободных мест
func (l *SeatLayout) AvailableCount() int {
	n := 0
	for i := range l.Seats {
		if l.Seats[i].Status == SeatStatusAvailable {
			n++
		}
	}
	return n
}

// SeatLayoutRequest запрос схемы мест
type SeatLayoutRequest struct {
	Operator     string `json:"operator" binding:"required"`
	FerryID      string `json:"ferry_id" binding:"required"`
	ClassID      string `json:"class_id" binding:"required"`
	RouteID      int    `json:"route_id,omitempty"`
	TravelDate   string `json:"travel_date,omitempty"`
	ForceRefresh bool   `json:"force_refresh,omitempty"`
}

// OperatorHealth состояние одного оператора
type OperatorHealth struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latencyMs,omitempty"`
}

// OperatorError ошибка, привязанная к конкретному оператору
type OperatorError struct {
	Operator string `json:"operator"`
	Error    string `json:"error"`
}
