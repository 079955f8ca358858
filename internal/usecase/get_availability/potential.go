package get_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// potentialTimes разворачивает недельный шаблон доступности по диапазону
// дат [start, end] включительно в кандидатные интервалы длительности
// durationMinutes.
//
// Эффективный шаг - min(duration, stepMinutes): 90-минутная услуга может
// предлагаться каждые 30 минут, даже если номинальный шаг больше её
// длительности. Окно нарезается скользящим интервалом от своего начала;
// генерация останавливается, как только конец кандидата выходит за конец
// окна (конец ровно на границе окна допустим).
//
// Кандидаты соседних окон могут пересекаться между собой - это ожидаемо,
// сверка с занятым временем происходит позже в filterAvailable
func potentialTimes(
	start, end domain.Day,
	durationMinutes int,
	template domain.WeeklyTemplate,
	stepMinutes int,
	loc *time.Location,
) []domain.Interval {
	candidates := make([]domain.Interval, 0)

	if durationMinutes <= 0 {
		return candidates
	}

	step := effectiveStep(durationMinutes, stepMinutes)
	if step <= 0 {
		return candidates
	}

	// Инвертированный диапазон (как полные дни) - пустой результат
	rangeStart := start.At(domain.TimeOfDay{}, loc)
	rangeEnd := end.At(domain.TimeOfDay{Hour: 23, Minute: 59}, loc)
	if !rangeStart.Before(rangeEnd) {
		return candidates
	}

	for day := start; !day.After(end); day = day.AddDays(1) {
		for _, window := range template.WindowsFor(int(day.Weekday())) {
			windowStart := day.At(window.Start, loc)
			windowEnd := day.At(window.End, loc)
			candidates = slide(candidates, windowStart, windowEnd, durationMinutes, step, "")
		}
	}

	return candidates
}

// containerTimes нарезает кандидатные интервалы из контейнерных событий,
// заменяющих недельный шаблон. Локация контейнера протаскивается в каждый
// кандидат. События на весь день (без времени суток) пропускаются целиком
func containerTimes(
	containers []domain.CalendarEvent,
	durationMinutes int,
	stepMinutes int,
) []domain.Interval {
	candidates := make([]domain.Interval, 0)

	if durationMinutes <= 0 {
		return candidates
	}

	step := effectiveStep(durationMinutes, stepMinutes)
	if step <= 0 {
		return candidates
	}

	for _, container := range containers {
		if container.AllDay || !container.HasInstants() {
			continue
		}
		candidates = slide(candidates, *container.Start, *container.End, durationMinutes, step, container.Location)
	}

	return candidates
}

// slide нарезает окно [windowStart, windowEnd] кандидатами длины duration
// с шагом step, останавливаясь на кандидате, чей конец выходит за окно
func slide(
	candidates []domain.Interval,
	windowStart, windowEnd time.Time,
	durationMinutes, stepMinutes int,
	location string,
) []domain.Interval {
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	for t := windowStart; ; t = t.Add(step) {
		candidateEnd := t.Add(duration)
		if candidateEnd.After(windowEnd) {
			break
		}
		candidates = append(candidates, domain.Interval{Start: t, End: candidateEnd, Location: location})
	}

	return candidates
}

// effectiveStep возвращает min(duration, appointmentInterval)
func effectiveStep(durationMinutes, stepMinutes int) int {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultAppointmentIntervalMinutes
	}
	if durationMinutes < stepMinutes {
		return durationMinutes
	}
	return stepMinutes
}
