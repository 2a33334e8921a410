package models

// MakruzzLoginRequest запрос токена Makruzz
type MakruzzLoginRequest struct {
	Data struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"data"`
}

// MakruzzLoginResponse ответ на логин
type MakruzzLoginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// MakruzzScheduleRequest запрос расписания
type MakruzzScheduleRequest struct {
	Data struct {
		TripType      string `json:"trip_type"` // single_trip
		FromLocation  string `json:"from_location"`
		ToLocation    string `json:"to_location"`
		TravelDate    string `json:"travel_date"` // YYYY-MM-DD
		NoOfPassenger int    `json:"no_of_passenger"`
	} `json:"data"`
}

// MakruzzSchedule одна строка расписания. Makruzz возвращает отдельную строку
// на каждый класс обслуживания одного и того же рейса.
type MakruzzSchedule struct {
	ScheduleID     string `json:"id"`
	ShipTitle      string `json:"ship_title"`
	FromLocation   string `json:"from_location"`
	ToLocation     string `json:"to_location"`
	DepartureTime  string `json:"departure_time"` // HH:MM:SS
	ArrivalTime    string `json:"arrival_time"`   // HH:MM:SS
	ShipClassID    string `json:"ship_class_id"`
	ShipClassTitle string `json:"ship_class_title"`
	ShipClassPrice string `json:"ship_class_price"`
	Seat           int    `json:"seat"` // свободные места в классе
}

// MakruzzScheduleResponse ответ schedule_search
type MakruzzScheduleResponse struct {
	Data []MakruzzSchedule `json:"data"`
	Code string            `json:"code"`
	Msg  string            `json:"msg"`
}
