package get_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// filterAvailable вычитает занятое время из списка кандидатов.
//
// Каждый занятый интервал расширяется на paddingMinutes с обеих сторон.
// Положительный leadTimeMinutes добавляет синтетический занятый интервал
// [now, now+leadTime] первым в списке - к нему собственный паддинг не
// применяется. Кандидаты, начинающиеся не строго в будущем, отбрасываются
// до фильтрации.
//
// Пересечение строгое: кандидат, заканчивающийся ровно в начале занятого
// интервала (или начинающийся ровно в его конце), выживает. Порядок
// кандидатов сохраняется, пересортировки нет
func filterAvailable(
	candidates []domain.Interval,
	busy []domain.Interval,
	paddingMinutes int,
	leadTimeMinutes int,
	now time.Time,
) []domain.Interval {
	// Паддинг применяется один раз, не на каждого кандидата
	padded := make([]domain.Interval, 0, len(busy)+1)
	if leadTimeMinutes > 0 {
		padded = append(padded, domain.Interval{
			Start: now,
			End:   now.Add(time.Duration(leadTimeMinutes) * time.Minute),
		})
	}
	for _, b := range busy {
		padded = append(padded, b.Padded(paddingMinutes))
	}

	available := make([]domain.Interval, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Start.After(now) {
			continue
		}
		if overlapsAny(candidate, padded) {
			continue
		}
		available = append(available, candidate)
	}

	return available
}

func overlapsAny(candidate domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
