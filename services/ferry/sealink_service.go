package ferry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// SealinkService сервис для работы с Sealink API.
// Sealink поддерживает только ручной выбор мест (авторассадки нет).
type SealinkService struct {
	baseURL    string
	userName   string
	token      string
	httpClient *http.Client
}

// NewSealinkService создает новый экземпляр сервиса
func NewSealinkService(cfg *config.Config) *SealinkService {
	return &SealinkService{
		baseURL:  cfg.SealinkBaseURL,
		userName: cfg.SealinkUserName,
		token:    cfg.SealinkToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *SealinkService) Name() string {
	return models.OperatorSealink
}

// Search выполняет поиск рейсов Sealink и приводит ответ к единому виду
func (s *SealinkService) Search(ctx context.Context, params models.FerrySearchParams) ([]models.UnifiedFerryResult, error) {
	fromPort, ok := models.ResolvePort(params.From)
	if !ok {
		return nil, fmt.Errorf("unknown port: %s", params.From)
	}
	toPort, ok := models.ResolvePort(params.To)
	if !ok {
		return nil, fmt.Errorf("unknown port: %s", params.To)
	}

	reqBody := models.SealinkTripRequest{
		Date:     sealinkDate(params.Date),
		From:     fromPort.SealinkName,
		To:       toPort.SealinkName,
		UserName: s.userName,
		Token:    s.token,
	}

	var tripResp models.SealinkTripResponse
	if err := s.post(ctx, "/api/v1/getTripData", reqBody, &tripResp); err != nil {
		return nil, err
	}
	if tripResp.Err != "" {
		return nil, fmt.Errorf("sealink API error: %s", tripResp.Err)
	}

	results := make([]models.UnifiedFerryResult, 0, len(tripResp.Data))
	for _, trip := range tripResp.Data {
		results = append(results, s.transformTrip(trip, params))
	}
	return results, nil
}

// transformTrip переводит рейс Sealink в UnifiedFerryResult
func (s *SealinkService) transformTrip(trip models.SealinkTrip, params models.FerrySearchParams) models.UnifiedFerryResult {
	classes := []models.FerryClass{
		{
			ID:             "pClass",
			Label:          "Premium",
			Price:          trip.PClass.Price,
			TotalSeats:     trip.PClass.Seats,
			AvailableSeats: trip.PClass.Avail,
		},
		{
			ID:             "bClass",
			Label:          "Business",
			Price:          trip.BClass.Price,
			TotalSeats:     trip.BClass.Seats,
			AvailableSeats: trip.BClass.Avail,
		},
	}

	return models.UnifiedFerryResult{
		Operator:        models.OperatorSealink,
		OperatorFerryID: trip.ID,
		FerryName:       sealinkVesselName(trip.VesselID),
		Route:           models.FerryRoute{From: trip.From, To: trip.To},
		Schedule: models.FerrySchedule{
			Date:          params.Date,
			DepartureTime: fmt.Sprintf("%02d:%02d", trip.DTime.Hour, trip.DTime.Minute),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", trip.ATime.Hour, trip.ATime.Minute),
		},
		Features: models.FerryFeatures{
			SupportsSeatSelection:  true,
			SupportsAutoAssignment: false,
		},
		Classes:      classes,
		OperatorData: models.OperatorData{OriginalResponse: trip},
	}
}

// SeatLayout загружает занятость мест рейса и отдает места выбранного класса
func (s *SealinkService) SeatLayout(ctx context.Context, req models.SeatLayoutRequest) (*models.SeatLayout, error) {
	body := models.SealinkSeatStatusRequest{
		ID:       req.FerryID,
		Date:     sealinkDate(req.TravelDate),
		UserName: s.userName,
		Token:    s.token,
	}

	var seatResp models.SealinkSeatStatusResponse
	if err := s.post(ctx, "/api/v1/getSeatStatus", body, &seatResp); err != nil {
		return nil, err
	}
	if seatResp.Err != "" {
		return nil, fmt.Errorf("sealink API error: %s", seatResp.Err)
	}

	// Tier "P"/"B" соответствует классам pClass/bClass
	wantTier := "P"
	if req.ClassID == "bClass" {
		wantTier = "B"
	}

	layout := &models.SeatLayout{
		Operator:   models.OperatorSealink,
		FerryID:    req.FerryID,
		ClassID:    req.ClassID,
		TravelDate: req.TravelDate,
	}
	for _, seat := range seatResp.Data.Seats {
		if seat.Tier != wantTier {
			continue
		}
		status := models.SeatStatusAvailable
		if seat.IsBooked == 1 {
			status = models.SeatStatusBooked
		} else if seat.IsBlocked == 1 {
			status = models.SeatStatusBlocked
		}
		layout.Seats = append(layout.Seats, models.Seat{
			ID:     seat.Number,
			Number: seat.Number,
			Status: status,
			Tier:   seat.Tier,
		})
	}
	return layout, nil
}

// CheckHealth легкая проба Sealink API
func (s *SealinkService) CheckHealth(ctx context.Context) models.OperatorHealth {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/api/v1/ping", nil)
	if err != nil {
		return models.OperatorHealth{Status: models.HealthError, Message: err.Error()}
	}
	resp, err := s.httpClient.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return classifyProbe(err, latency, 3000)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.OperatorHealth{
			Status:    models.HealthDegraded,
			Message:   fmt.Sprintf("unexpected status: %d", resp.StatusCode),
			LatencyMs: latency,
		}
	}
	return classifyProbe(nil, latency, 3000)
}

// post выполняет POST запрос к Sealink API и декодирует ответ
func (s *SealinkService) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sealink API status %d: %s", resp.StatusCode, string(responseBody))
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	return nil
}

// sealinkDate переводит YYYY-MM-DD в DD-MM-YYYY, как ждет Sealink
func sealinkDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02-01-2006")
}

// sealinkVesselName известные суда Sealink
func sealinkVesselName(vesselID int) string {
	switch vesselID {
	case 1:
		return "Sealink"
	case 2:
		return "Nautika"
	default:
		return fmt.Sprintf("Sealink Vessel %d", vesselID)
	}
}
