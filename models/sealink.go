package models

// SealinkTripRequest запрос расписания к Sealink API
type SealinkTripRequest struct {
	Date     string `json:"date"` // DD-MM-YYYY
	From     string `json:"from"`
	To       string `json:"to"`
	UserName string `json:"userName"`
	Token    string `json:"token"`
}

// SealinkTime время в формате Sealink
type SealinkTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// SealinkSeat место в ответе Sealink
type SealinkSeat struct {
	Number    string `json:"number"`
	Tier      string `json:"tier"` // "P" (premium) или "B" (business)
	IsBooked  int    `json:"isBooked"`
	IsBlocked int    `json:"isBlocked"`
}

// SealinkClass занятость и цена одного класса
type SealinkClass struct {
	Price float64 `json:"fare"`
	Seats int     `json:"seats"`
	Avail int     `json:"avail"`
}

// SealinkTrip один рейс в ответе Sealink
type SealinkTrip struct {
	ID       string       `json:"id"`
	TripID   int          `json:"tripId"`
	VesselID int          `json:"vesselID"`
	From     string       `json:"from"`
	To       string       `json:"to"`
	DTime    SealinkTime  `json:"dTime"`
	ATime    SealinkTime  `json:"aTime"`
	PClass   SealinkClass `json:"pClass"`
	BClass   SealinkClass `json:"bClass"`
}

// SealinkTripResponse ответ getTripData
type SealinkTripResponse struct {
	Err  string        `json:"err"`
	Data []SealinkTrip `json:"data"`
}

// SealinkSeatStatusRequest запрос занятости мест одного рейса
type SealinkSeatStatusRequest struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // DD-MM-YYYY
	UserName string `json:"userName"`
	Token    string `json:"token"`
}

// SealinkSeatStatusResponse ответ getSeatStatus
type SealinkSeatStatusResponse struct {
	Err  string `json:"err"`
	Data struct {
		Seats []SealinkSeat `json:"seats"`
	} `json:"data"`
}
