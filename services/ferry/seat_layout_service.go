package ferry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// SeatLayoutTTL время жизни закэшированной схемы мест
const SeatLayoutTTL = 60 * time.Second

// ErrLayoutSuperseded ответ устарел: пока он летел, успел завершиться
// более свежий запрос той же схемы
var ErrLayoutSuperseded = errors.New("seat layout response superseded by a newer request")

type layoutEntry struct {
	layout *models.SeatLayout
	expiry time.Time
}

// SeatLayoutService загружает и кэширует схемы мест.
// Повторный вызов для того же ключа во время полета предыдущего безопасен:
// номер поколения гарантирует, что запоздавший ответ будет явно отброшен,
// а не перезапишет более свежий.
type SeatLayoutService struct {
	adapters map[string]OperatorAdapter

	mu      sync.Mutex
	cache   map[string]layoutEntry
	gen     map[string]uint64 // последний выданный номер запроса
	applied map[string]uint64 // номер запроса, чей ответ сейчас применен
	now     func() time.Time
}

// NewSeatLayoutService создает сервис схем мест поверх адаптеров
func NewSeatLayoutService(adapters ...OperatorAdapter) *SeatLayoutService {
	byName := make(map[string]OperatorAdapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}
	return &SeatLayoutService{
		adapters: byName,
		cache:    make(map[string]layoutEntry),
		gen:      make(map[string]uint64),
		applied:  make(map[string]uint64),
		now:      time.Now,
	}
}

func layoutKey(req models.SeatLayoutRequest) string {
	return fmt.Sprintf("%s:%s:%s:%s", req.Operator, req.FerryID, req.ClassID, req.TravelDate)
}

// LoadSeatLayout возвращает схему мест, из кэша или от оператора.
// ForceRefresh пробивает кэш — используется после попытки бронирования,
// чтобы увидеть только что занятые места.
func (s *SeatLayoutService) LoadSeatLayout(ctx context.Context, req models.SeatLayoutRequest) (*models.SeatLayout, error) {
	adapter, ok := s.adapters[req.Operator]
	if !ok {
		return nil, fmt.Errorf("unknown operator: %s", req.Operator)
	}

	key := layoutKey(req)

	if !req.ForceRefresh {
		s.mu.Lock()
		entry, ok := s.cache[key]
		if ok && s.now().Before(entry.expiry) {
			s.mu.Unlock()
			log.Printf("[SEAT LAYOUT CACHE] HIT key=%s", key)
			return entry.layout, nil
		}
		if ok {
			delete(s.cache, key)
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.gen[key]++
	myGen := s.gen[key]
	s.mu.Unlock()

	layout, err := adapter.SeatLayout(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if myGen < s.applied[key] {
		// Более новый запрос уже завершился — этот ответ выбрасываем
		log.Printf("[SEAT LAYOUT] stale response discarded key=%s gen=%d applied=%d", key, myGen, s.applied[key])
		return nil, ErrLayoutSuperseded
	}
	s.applied[key] = myGen
	s.cache[key] = layoutEntry{layout: layout, expiry: s.now().Add(SeatLayoutTTL)}
	return layout, nil
}

// RequestFromResult собирает запрос схемы мест из результата поиска,
// вытаскивая операторские идентификаторы из operatorData
func RequestFromResult(ferry *models.UnifiedFerryResult, classID string, forceRefresh bool) models.SeatLayoutRequest {
	req := models.SeatLayoutRequest{
		Operator:     ferry.Operator,
		FerryID:      ferry.OperatorFerryID,
		ClassID:      classID,
		TravelDate:   ferry.Schedule.Date,
		ForceRefresh: forceRefresh,
	}
	if ferry.Operator == models.OperatorGreenOcean {
		req.RouteID = greenOceanRouteID(ferry.OperatorData.OriginalResponse)
	}
	return req
}

// greenOceanRouteID достает route_id из нативного ответа. После JSON
// round-trip через клиента нативные данные приходят как map.
func greenOceanRouteID(original interface{}) int {
	switch v := original.(type) {
	case models.GreenOceanTrip:
		return v.RouteID
	case *models.GreenOceanTrip:
		return v.RouteID
	case map[string]interface{}:
		if id, ok := v["route_id"].(float64); ok {
			return int(id)
		}
	}
	return 0
}
