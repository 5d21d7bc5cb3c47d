package render_calendar

import (
	"fmt"
	"sync"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// viewCache транзиентный кэш render-моделей, скоупированный по
// представлению: ключ - (вид ресурса, ресурс, диапазон дат). Смена
// ресурса или диапазона означает другой ключ, поэтому устаревшее
// состояние никогда не переживает переключение представления
//
// Каждому ключу соответствует монотонно растущий номер выборки:
// применяется только ответ самой новой выборки, ответ устаревшей
// отбрасывается. Кэш живет строго в памяти процесса
type viewCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	latestSeq uint64
	model     *RenderModel
}

func newViewCache() *viewCache {
	return &viewCache{entries: make(map[string]*cacheEntry)}
}

// viewKey строит ключ кэша для запроса
func viewKey(req *Request) string {
	return fmt.Sprintf("%s:%d:%d:%s:%s",
		req.Kind, req.WorkshopID, req.ResourceID,
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))
}

// begin регистрирует новую выборку по ключу и возвращает её номер
func (c *viewCache) begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		entry = &cacheEntry{}
		c.entries[key] = entry
	}
	entry.latestSeq++
	return entry.latestSeq
}

// commit сохраняет модель, если выборка всё еще самая новая по ключу
// Возвращает false для устаревшей выборки - её результат отброшен
func (c *viewCache) commit(key string, seq uint64, model *RenderModel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || seq < entry.latestSeq {
		return false
	}
	entry.model = model
	return true
}

// lastGood возвращает последнюю удачную модель по ключу, если она есть
func (c *viewCache) lastGood(key string) (*RenderModel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.model == nil {
		return nil, false
	}
	return entry.model, true
}
