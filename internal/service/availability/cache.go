package availability

import (
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// DurationCache мультидлительный кеш слотов вокруг одного якорного события.
//
// Создаётся на один логический запрос: события-конфликты выбираются РОВНО
// один раз при создании, после чего списки слотов считаются по требованию и
// мемоизируются по длительности. Повторный запрос той же длительности
// возвращает тот же самый сохранённый срез без пересчёта.
//
// Кеш никогда не обновляется на месте: IsValid - только рекомендация,
// протухший кеш вызывающая сторона выбрасывает и создаёт заново.
type DurationCache struct {
	event     domain.AnchorEvent
	origin    time.Time
	location  domain.Location
	conflicts []domain.CalendarEvent

	stepMinutes     int
	maxMinutesAhead int
	createdAt       time.Time

	// Мемоизация защищена мьютексом: длительности могут запрашиваться из
	// параллельных горутин
	mu    sync.Mutex
	slots map[int][]domain.AvailabilitySlot
}

// SlotsForDuration возвращает слоты для длительности, считая их при первом
// обращении и отдавая сохранённый срез при повторных
func (c *DurationCache) SlotsForDuration(durationMinutes int) []domain.AvailabilitySlot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.slots[durationMinutes]; ok {
		return cached
	}

	computed := nextSlots(c.origin, durationMinutes, c.stepMinutes, c.maxMinutesAhead, c.location, c.conflicts)
	c.slots[durationMinutes] = computed
	return computed
}

// AvailableSlotsForDuration возвращает только доступные слоты длительности
func (c *DurationCache) AvailableSlotsForDuration(durationMinutes int) []domain.AvailabilitySlot {
	return onlyAvailable(c.SlotsForDuration(durationMinutes))
}

// TimeListForDuration возвращает доступные слоты длительности в плоском
// wire-формате {start, end, location}
func (c *DurationCache) TimeListForDuration(durationMinutes int) []domain.TimeListEntry {
	return domain.ToTimeList(c.SlotsForDuration(durationMinutes))
}

// AvailableDurations возвращает отсортированный по возрастанию список
// просчитанных длительностей, у которых есть хотя бы один доступный слот
func (c *DurationCache) AvailableDurations() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	durations := make([]int, 0, len(c.slots))
	for duration, slots := range c.slots {
		for _, s := range slots {
			if s.Available {
				durations = append(durations, duration)
				break
			}
		}
	}

	sort.Ints(durations)
	return durations
}

// Event возвращает якорное событие кеша
func (c *DurationCache) Event() domain.AnchorEvent {
	return c.event
}

// CreatedAt возвращает момент создания кеша
func (c *DurationCache) CreatedAt() time.Time {
	return c.createdAt
}

// IsValid сообщает, свежий ли кеш: true в течение CacheTTL (5 минут) с
// момента создания. Чисто рекомендательно - данные не инвалидируются
func (c *DurationCache) IsValid(now time.Time) bool {
	return now.Sub(c.createdAt) <= domain.CacheTTL
}
