package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// nextSlots генерирует слоты вперёд от origin (конец якорного события):
// [t, t+duration] для t = origin, origin+step, ... пока t <= origin+maxAhead.
// Каждый слот проверяется на конфликт со списком событий
func nextSlots(
	origin time.Time,
	durationMinutes int,
	stepMinutes int,
	maxMinutesAhead int,
	location domain.Location,
	conflicts []domain.CalendarEvent,
) []domain.AvailabilitySlot {
	if durationMinutes <= 0 || stepMinutes <= 0 || maxMinutesAhead < 0 {
		return []domain.AvailabilitySlot{}
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute
	bound := origin.Add(time.Duration(maxMinutesAhead) * time.Minute)

	slots := make([]domain.AvailabilitySlot, 0)
	for t := origin; !t.After(bound); t = t.Add(step) {
		slots = append(slots, buildSlot(t, t.Add(duration), durationMinutes, location, conflicts))
	}

	return slots
}

// previousSlots генерирует слоты назад от origin (начало якорного события):
// конец слота шагает вниз, [t-duration, t] для t = origin, origin-step, ...
// пока t >= origin-maxBefore. Начало слота тоже обязано попадать в границу,
// поэтому при duration > maxBefore слотов не будет вовсе - это корректно.
// Локация всегда плейсхолдер: пре-якорные слоты ещё не имеют адреса
func previousSlots(
	origin time.Time,
	durationMinutes int,
	stepMinutes int,
	maxMinutesBefore int,
	conflicts []domain.CalendarEvent,
) []domain.AvailabilitySlot {
	if durationMinutes <= 0 || stepMinutes <= 0 || maxMinutesBefore < 0 {
		return []domain.AvailabilitySlot{}
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute
	bound := origin.Add(-time.Duration(maxMinutesBefore) * time.Minute)
	location := domain.PlaceholderLocation()

	slots := make([]domain.AvailabilitySlot, 0)
	for t := origin; !t.Before(bound); t = t.Add(-step) {
		start := t.Add(-duration)
		if start.Before(bound) {
			// Начало слота вышло за границу; дальше начала только раньше
			break
		}
		slots = append(slots, buildSlot(start, t, durationMinutes, location, conflicts))
	}

	return slots
}

// buildSlot собирает слот и помечает его недоступным при конфликте
func buildSlot(
	start, end time.Time,
	durationMinutes int,
	location domain.Location,
	conflicts []domain.CalendarEvent,
) domain.AvailabilitySlot {
	slot := domain.AvailabilitySlot{
		Start:           start,
		End:             end,
		DurationMinutes: durationMinutes,
		Location:        location,
		Available:       true,
	}

	if conflict := firstConflict(conflicts, start, end); conflict != nil {
		slot.Available = false
		slot.ConflictingEvent = conflict
	}

	return slot
}

// firstConflict возвращает ПЕРВОЕ по порядку списка событие, строго
// пересекающееся со слотом. Не обязательно самое раннее и не обязательно с
// наибольшим пересечением - порядок задаёт источник событий. События без
// инстантов на любой границе в конфликтах не участвуют
func firstConflict(events []domain.CalendarEvent, start, end time.Time) *domain.CalendarEvent {
	for i := range events {
		if events[i].ConflictsWith(start, end) {
			ev := events[i]
			return &ev
		}
	}
	return nil
}

// onlyAvailable оставляет только доступные слоты, сохраняя порядок
func onlyAvailable(slots []domain.AvailabilitySlot) []domain.AvailabilitySlot {
	out := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}
