package ferry

import (
	"context"
	"sync"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// HealthReport снимок состояния всех операторов
type HealthReport struct {
	Operators     map[string]models.OperatorHealth `json:"operators"`
	OverallStatus string                           `json:"overallStatus"`
	Timestamp     time.Time                        `json:"timestamp"`
}

// HealthService независимо опрашивает статус каждого оператора.
// Вызов идемпотентен и без побочных эффектов, его можно дергать хоть каждые 30 секунд.
type HealthService struct {
	adapters []OperatorAdapter
	timeout  time.Duration
}

// NewHealthService создает монитор здоровья операторов
func NewHealthService(timeout time.Duration, adapters ...OperatorAdapter) *HealthService {
	return &HealthService{
		adapters: adapters,
		timeout:  timeout,
	}
}

// CheckOperatorHealth опрашивает все адаптеры конкурентно, каждый со своим
// таймаутом. Проба никогда не роняет вызывающего: паника или таймаут
// превращаются в статус "error".
func (h *HealthService) CheckOperatorHealth(ctx context.Context) *HealthReport {
	report := &HealthReport{
		Operators: make(map[string]models.OperatorHealth, len(h.adapters)),
		Timestamp: time.Now(),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, adapter := range h.adapters {
		wg.Add(1)
		go func(a OperatorAdapter) {
			defer wg.Done()
			health := h.probe(ctx, a)
			mu.Lock()
			report.Operators[a.Name()] = health
			mu.Unlock()
		}(adapter)
	}
	wg.Wait()

	online := 0
	for _, health := range report.Operators {
		if health.Status == models.HealthOnline {
			online++
		}
	}
	switch {
	case online == len(h.adapters):
		report.OverallStatus = models.OverallAllOnline
	case online == 0:
		report.OverallStatus = models.OverallAllOffline
	default:
		report.OverallStatus = models.OverallPartialOnline
	}
	return report
}

func (h *HealthService) probe(ctx context.Context, a OperatorAdapter) (health models.OperatorHealth) {
	defer func() {
		if r := recover(); r != nil {
			health = models.OperatorHealth{Status: models.HealthError, Message: "health probe panicked"}
		}
	}()

	probeCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan models.OperatorHealth, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- models.OperatorHealth{Status: models.HealthError, Message: "health probe panicked"}
			}
		}()
		done <- a.CheckHealth(probeCtx)
	}()

	select {
	case health = <-done:
		return health
	case <-probeCtx.Done():
		return models.OperatorHealth{Status: models.HealthError, Message: "health probe timed out"}
	}
}
