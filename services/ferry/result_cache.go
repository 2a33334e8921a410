package ferry

import (
	"fmt"
	"sync"
	"time"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// ResultCacheTTL время жизни результатов поиска
const ResultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	data   []models.UnifiedFerryResult
	expiry time.Time
}

// ResultCache короткоживущий кэш результатов поиска по оператору.
// Создается один раз при старте сервиса и передается агрегатору явно —
// никакого глобального состояния. Протухшие записи вычищаются лениво при чтении.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewResultCache создает кэш с заданным TTL
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GenerateKey строит детерминированный ключ оператор+параметры.
// Infants в ключ не входят: они не занимают мест и не влияют на тариф
// (осознанно сохраненное поведение, см. DESIGN.md).
func (c *ResultCache) GenerateKey(params models.FerrySearchParams, operator string) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d",
		operator, params.From, params.To, params.Date, params.Adults, params.Children)
}

// Get возвращает закэшированные результаты или nil, лениво удаляя протухшее
func (c *ResultCache) Get(key string) []models.UnifiedFerryResult {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil
	}
	if !c.now().Before(entry.expiry) {
		c.mu.Lock()
		// Перепроверяем под write-замком: запись могли успеть заменить
		if e, ok := c.entries[key]; ok && !c.now().Before(e.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil
	}
	return entry.data
}

// Set сохраняет результаты; конкурентные записи одного ключа — last-write-wins
func (c *ResultCache) Set(key string, data []models.UnifiedFerryResult) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{data: data, expiry: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
