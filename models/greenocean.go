package models

// GreenOceanRouteRequest запрос рейсов Green Ocean.
// HashString = sha512(from_id + dest_to + date_of_journey + public_key + private_key).
type GreenOceanRouteRequest struct {
	FromID        int    `json:"from_id"`
	DestTo        int    `json:"dest_to"`
	DateOfJourney string `json:"date_of_journey"` // DD-MM-YYYY
	PublicKey     string `json:"public_key"`
	HashString    string `json:"hash_string"`
}

// GreenOceanClassDetail класс обслуживания в ответе Green Ocean
type GreenOceanClassDetail struct {
	ClassID       int     `json:"class_id"`
	ClassName     string  `json:"class_name"`
	SeatAvailable int     `json:"seat_available"`
	TotalSeat     int     `json:"total_seat"`
	ShipClassFare float64 `json:"ship_class_price"`
}

// GreenOceanTrip один рейс Green Ocean
type GreenOceanTrip struct {
	RouteID       int                     `json:"route_id"`
	ShipID        int                     `json:"ship_id"`
	ShipTitle     string                  `json:"ship_title"`
	DepartureTime string                  `json:"departure_time"` // HH:MM:SS
	ArrivalTime   string                  `json:"arrival_time"`   // HH:MM:SS
	ClassDetails  []GreenOceanClassDetail `json:"class_details"`
}

// GreenOceanRouteResponse ответ route-details
type GreenOceanRouteResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    []GreenOceanTrip `json:"data"`
}

// GreenOceanSeatLayoutRequest запрос схемы мест
type GreenOceanSeatLayoutRequest struct {
	ShipID        int    `json:"ship_id"`
	RouteID       int    `json:"route_id"`
	ClassID       int    `json:"class_id"`
	DateOfJourney string `json:"date_of_journey"` // DD-MM-YYYY
	PublicKey     string `json:"public_key"`
	HashString    string `json:"hash_string"`
}

// GreenOceanSeat место в схеме Green Ocean.
// Status: "" — свободно, "B" — занято, "H" — заблокировано (hold).
type GreenOceanSeat struct {
	SeatNo        string `json:"seat_no"`
	SeatNumbering string `json:"seat_numbering"`
	Status        string `json:"status"`
	RowNo         int    `json:"row_no"`
	ColumnNo      string `json:"column_no"`
}

// GreenOceanSeatLayoutResponse ответ seat-layout
type GreenOceanSeatLayoutResponse struct {
	Status string `json:"status"`
	Data   struct {
		Layout []GreenOceanSeat `json:"layout"`
	} `json:"data"`
}
