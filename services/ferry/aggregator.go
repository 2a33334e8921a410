package ferry

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// SearchOutcome итог одного логического поиска по всем операторам
type SearchOutcome struct {
	Results          []models.UnifiedFerryResult `json:"results"`
	Errors           []models.OperatorError      `json:"errors"`
	IsPartialFailure bool                        `json:"isPartialFailure"`
}

// AggregatorService веером рассылает поиск всем операторам.
// Падение или таймаут одного оператора никогда не валит остальных.
type AggregatorService struct {
	adapters []OperatorAdapter
	cache    *ResultCache
	timeout  time.Duration
}

// NewAggregatorService создает агрегатор поверх кэша и адаптеров
func NewAggregatorService(cache *ResultCache, timeout time.Duration, adapters ...OperatorAdapter) *AggregatorService {
	return &AggregatorService{
		adapters: adapters,
		cache:    cache,
		timeout:  timeout,
	}
}

// Search выполняет конкурентный поиск по всем операторам.
// Ошибка возвращается только на невалидных параметрах — до единого запроса
// к апстримам. Ошибки операторов собираются в SearchOutcome.Errors.
func (s *AggregatorService) Search(ctx context.Context, params models.FerrySearchParams) (*SearchOutcome, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	outcome := &SearchOutcome{
		Results: []models.UnifiedFerryResult{},
		Errors:  []models.OperatorError{},
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		succeeded int
	)

	for _, adapter := range s.adapters {
		wg.Add(1)
		go func(a OperatorAdapter) {
			defer wg.Done()

			key := s.cache.GenerateKey(params, a.Name())
			if cached := s.cache.Get(key); cached != nil {
				log.Printf("[FERRY CACHE] HIT operator=%s key=%s", a.Name(), key)
				mu.Lock()
				outcome.Results = append(outcome.Results, cached...)
				succeeded++
				mu.Unlock()
				return
			}

			opCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			results, err := a.Search(opCtx, params)
			if err != nil {
				log.Printf("[FERRY SEARCH] operator=%s failed: %v", a.Name(), err)
				mu.Lock()
				outcome.Errors = append(outcome.Errors, models.OperatorError{
					Operator: a.Name(),
					Error:    err.Error(),
				})
				mu.Unlock()
				return
			}

			s.cache.Set(key, results)
			log.Printf("[FERRY CACHE] MISS operator=%s stored %d results", a.Name(), len(results))

			mu.Lock()
			outcome.Results = append(outcome.Results, results...)
			succeeded++
			mu.Unlock()
		}(adapter)
	}

	wg.Wait()

	// Частичный сбой: хотя бы один оператор упал И хотя бы один ответил.
	// Если упали все — это тотальный сбой, не частичный.
	outcome.IsPartialFailure = len(outcome.Errors) > 0 && succeeded > 0
	return outcome, nil
}

// IsTotalFailure true, когда ни один оператор не ответил
func (o *SearchOutcome) IsTotalFailure() bool {
	return len(o.Results) == 0 && len(o.Errors) > 0 && !o.IsPartialFailure
}
