package ferry

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// GreenOceanService сервис для работы с Green Ocean Seaways API.
// Авторизация через public key + sha512 подпись тела запроса.
type GreenOceanService struct {
	baseURL    string
	publicKey  string
	privateKey string
	httpClient *http.Client
}

// NewGreenOceanService создает новый экземпляр сервиса
func NewGreenOceanService(cfg *config.Config) *GreenOceanService {
	return &GreenOceanService{
		baseURL:    cfg.GreenOceanBaseURL,
		publicKey:  cfg.GreenOceanPublicKey,
		privateKey: cfg.GreenOceanPrivateKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (g *GreenOceanService) Name() string {
	return models.OperatorGreenOcean
}

// hash подписывает конкатенацию полей приватным ключом
func (g *GreenOceanService) hash(fields ...string) string {
	var buf bytes.Buffer
	for _, f := range fields {
		buf.WriteString(f)
	}
	buf.WriteString(g.privateKey)
	sum := sha512.Sum512(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

// Search выполняет поиск рейсов Green Ocean и приводит ответ к единому виду
func (g *GreenOceanService) Search(ctx context.Context, params models.FerrySearchParams) ([]models.UnifiedFerryResult, error) {
	fromPort, ok := models.ResolvePort(params.From)
	if !ok {
		return nil, fmt.Errorf("unknown port: %s", params.From)
	}
	toPort, ok := models.ResolvePort(params.To)
	if !ok {
		return nil, fmt.Errorf("unknown port: %s", params.To)
	}

	journeyDate := greenOceanDate(params.Date)
	reqBody := models.GreenOceanRouteRequest{
		FromID:        fromPort.GreenOceanID,
		DestTo:        toPort.GreenOceanID,
		DateOfJourney: journeyDate,
		PublicKey:     g.publicKey,
		HashString: g.hash(
			strconv.Itoa(fromPort.GreenOceanID),
			strconv.Itoa(toPort.GreenOceanID),
			journeyDate,
			g.publicKey,
		),
	}

	var routeResp models.GreenOceanRouteResponse
	if err := g.post(ctx, "/api/v1/route-details", reqBody, &routeResp); err != nil {
		return nil, err
	}
	if routeResp.Status != "success" {
		return nil, fmt.Errorf("greenocean API error: %s", routeResp.Message)
	}

	results := make([]models.UnifiedFerryResult, 0, len(routeResp.Data))
	for _, trip := range routeResp.Data {
		classes := make([]models.FerryClass, 0, len(trip.ClassDetails))
		for _, cd := range trip.ClassDetails {
			classes = append(classes, models.FerryClass{
				ID:             strconv.Itoa(cd.ClassID),
				Label:          cd.ClassName,
				Price:          cd.ShipClassFare,
				TotalSeats:     cd.TotalSeat,
				AvailableSeats: cd.SeatAvailable,
			})
		}
		results = append(results, models.UnifiedFerryResult{
			Operator:        models.OperatorGreenOcean,
			OperatorFerryID: strconv.Itoa(trip.ShipID),
			FerryName:       trip.ShipTitle,
			Route:           models.FerryRoute{From: fromPort.Label, To: toPort.Label},
			Schedule: models.FerrySchedule{
				Date:          params.Date,
				DepartureTime: trimSeconds(trip.DepartureTime),
				ArrivalTime:   trimSeconds(trip.ArrivalTime),
			},
			Features: models.FerryFeatures{
				SupportsSeatSelection:  true,
				SupportsAutoAssignment: false,
			},
			Classes:      classes,
			OperatorData: models.OperatorData{OriginalResponse: trip},
		})
	}
	return results, nil
}

// SeatLayout загружает схему мест Green Ocean.
// route_id берется из operatorData исходного результата поиска.
func (g *GreenOceanService) SeatLayout(ctx context.Context, req models.SeatLayoutRequest) (*models.SeatLayout, error) {
	shipID, err := strconv.Atoi(req.FerryID)
	if err != nil {
		return nil, fmt.Errorf("invalid greenocean ferry id: %s", req.FerryID)
	}
	classID, err := strconv.Atoi(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("invalid greenocean class id: %s", req.ClassID)
	}
	if req.RouteID == 0 {
		return nil, fmt.Errorf("route_id is required for greenocean seat layout")
	}

	journeyDate := greenOceanDate(req.TravelDate)
	body := models.GreenOceanSeatLayoutRequest{
		ShipID:        shipID,
		RouteID:       req.RouteID,
		ClassID:       classID,
		DateOfJourney: journeyDate,
		PublicKey:     g.publicKey,
		HashString: g.hash(
			strconv.Itoa(shipID),
			strconv.Itoa(req.RouteID),
			strconv.Itoa(classID),
			journeyDate,
			g.publicKey,
		),
	}

	var seatResp models.GreenOceanSeatLayoutResponse
	if err := g.post(ctx, "/api/v1/seat-layout", body, &seatResp); err != nil {
		return nil, err
	}
	if seatResp.Status != "success" {
		return nil, fmt.Errorf("greenocean API error: seat layout request failed")
	}

	layout := &models.SeatLayout{
		Operator:   models.OperatorGreenOcean,
		FerryID:    req.FerryID,
		ClassID:    req.ClassID,
		TravelDate: req.TravelDate,
	}
	for _, seat := range seatResp.Data.Layout {
		status := models.SeatStatusAvailable
		switch seat.Status {
		case "B":
			status = models.SeatStatusBooked
		case "H":
			status = models.SeatStatusBlocked
		}
		number := seat.SeatNumbering
		if number == "" {
			number = seat.SeatNo
		}
		layout.Seats = append(layout.Seats, models.Seat{
			ID:     seat.SeatNo,
			Number: number,
			Status: status,
			Row:    seat.RowNo,
			Column: seat.ColumnNo,
		})
	}
	return layout, nil
}

// LocationList возвращает сырой справочник локаций (кэшируется кроном в Redis)
func (g *GreenOceanService) LocationList(ctx context.Context) ([]byte, error) {
	body := map[string]string{
		"public_key":  g.publicKey,
		"hash_string": g.hash(g.publicKey),
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/api/v1/location-list", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// CheckHealth легкая проба Green Ocean API
func (g *GreenOceanService) CheckHealth(ctx context.Context) models.OperatorHealth {
	start := time.Now()
	_, err := g.LocationList(ctx)
	latency := time.Since(start).Milliseconds()
	return classifyProbe(err, latency, 3000)
}

// post выполняет POST запрос к Green Ocean API и декодирует ответ
func (g *GreenOceanService) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("greenocean API status %d: %s", resp.StatusCode, string(responseBody))
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	return nil
}

// greenOceanDate переводит YYYY-MM-DD в DD-MM-YYYY
func greenOceanDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02-01-2006")
}
