package ferry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// ErrSeatSelectionNotSupported Makruzz рассаживает пассажиров сам,
// схему мест он не отдает
var ErrSeatSelectionNotSupported = fmt.Errorf("operator does not support seat selection")

// MakruzzService сервис для работы с Makruzz API
type MakruzzService struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewMakruzzService создает новый экземпляр сервиса
func NewMakruzzService(cfg *config.Config) *MakruzzService {
	return &MakruzzService{
		baseURL:  cfg.MakruzzBaseURL,
		username: cfg.MakruzzUsername,
		password: cfg.MakruzzPassword,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (m *MakruzzService) Name() string {
	return models.OperatorMakruzz
}

// ensureTokenValid проверяет и обновляет токен если нужно
func (m *MakruzzService) ensureTokenValid(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.accessToken != "" && time.Now().Before(m.tokenExpiry) {
		return m.accessToken, nil
	}

	var loginReq models.MakruzzLoginRequest
	loginReq.Data.Username = m.username
	loginReq.Data.Password = m.password

	var loginResp models.MakruzzLoginResponse
	if err := m.post(ctx, "/booking_api/login", "", loginReq, &loginResp); err != nil {
		return "", err
	}
	if loginResp.Code != "200" || loginResp.Data.Token == "" {
		return "", fmt.Errorf("makruzz login failed: %s", loginResp.Msg)
	}

	m.accessToken = loginResp.Data.Token
	// Токен живет сутки, обновляем заранее
	m.tokenExpiry = time.Now().Add(20 * time.Hour)
	return m.accessToken, nil
}

// Search выполняет поиск рейсов Makruzz и приводит ответ к единому виду
func (m *MakruzzService) Search(ctx context.Context, params models.FerrySearchParams) ([]models.UnifiedFerryResult, error) {
	fromPort, ok := models.ResolvePort(params.From)
	if !ok {
		return nil, fmt.Errorf("unknown port: %s", params.From)
	}
	toPort, ok := models.ResolvePort(params.To)
	if !ok {
		return nil, fmt.Errorf("unknown port: %s", params.To)
	}

	token, err := m.ensureTokenValid(ctx)
	if err != nil {
		return nil, err
	}

	var schedReq models.MakruzzScheduleRequest
	schedReq.Data.TripType = "single_trip"
	schedReq.Data.FromLocation = fromPort.MakruzzID
	schedReq.Data.ToLocation = toPort.MakruzzID
	schedReq.Data.TravelDate = params.Date
	schedReq.Data.NoOfPassenger = params.SeatedPassengers()

	var schedResp models.MakruzzScheduleResponse
	if err := m.post(ctx, "/booking_api/schedule_search", token, schedReq, &schedResp); err != nil {
		return nil, err
	}
	if schedResp.Code != "200" {
		return nil, fmt.Errorf("makruzz API error: %s", schedResp.Msg)
	}

	return m.transformSchedules(schedResp.Data, params), nil
}

// transformSchedules группирует построчное расписание Makruzz (строка на класс)
// в один результат на судно+отправление
func (m *MakruzzService) transformSchedules(schedules []models.MakruzzSchedule, params models.FerrySearchParams) []models.UnifiedFerryResult {
	type group struct {
		first models.MakruzzSchedule
		rows  []models.MakruzzSchedule
	}
	groups := make(map[string]*group)
	var order []string

	for _, row := range schedules {
		key := row.ShipTitle + "|" + row.DepartureTime
		g, ok := groups[key]
		if !ok {
			g = &group{first: row}
			groups[key] = g
			order = append(order, key)
		}
		g.rows = append(g.rows, row)
	}

	results := make([]models.UnifiedFerryResult, 0, len(order))
	for _, key := range order {
		g := groups[key]
		classes := make([]models.FerryClass, 0, len(g.rows))
		for _, row := range g.rows {
			price, _ := strconv.ParseFloat(row.ShipClassPrice, 64)
			classes = append(classes, models.FerryClass{
				ID:             row.ShipClassID,
				Label:          row.ShipClassTitle,
				Price:          price,
				AvailableSeats: row.Seat,
			})
		}
		sort.Slice(classes, func(i, j int) bool { return classes[i].Price < classes[j].Price })

		results = append(results, models.UnifiedFerryResult{
			Operator:        models.OperatorMakruzz,
			OperatorFerryID: g.first.ScheduleID,
			FerryName:       g.first.ShipTitle,
			Route:           models.FerryRoute{From: g.first.FromLocation, To: g.first.ToLocation},
			Schedule: models.FerrySchedule{
				Date:          params.Date,
				DepartureTime: trimSeconds(g.first.DepartureTime),
				ArrivalTime:   trimSeconds(g.first.ArrivalTime),
			},
			Features: models.FerryFeatures{
				SupportsSeatSelection:  false,
				SupportsAutoAssignment: true,
			},
			Classes:      classes,
			OperatorData: models.OperatorData{OriginalResponse: g.rows},
		})
	}
	return results
}

// SeatLayout у Makruzz недоступен: места назначает оператор
func (m *MakruzzService) SeatLayout(ctx context.Context, req models.SeatLayoutRequest) (*models.SeatLayout, error) {
	return nil, ErrSeatSelectionNotSupported
}

// CheckHealth проба Makruzz API через логин
func (m *MakruzzService) CheckHealth(ctx context.Context) models.OperatorHealth {
	start := time.Now()
	_, err := m.ensureTokenValid(ctx)
	latency := time.Since(start).Milliseconds()
	return classifyProbe(err, latency, 3000)
}

// post выполняет POST запрос к Makruzz API (с bearer токеном, если передан)
func (m *MakruzzService) post(ctx context.Context, endpoint, token string, body interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.baseURL+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Mak_Authorization", token)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("makruzz API status %d: %s", resp.StatusCode, string(responseBody))
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	return nil
}

// trimSeconds обрезает HH:MM:SS до HH:MM
func trimSeconds(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
