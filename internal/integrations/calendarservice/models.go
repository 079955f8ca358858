package calendarservice

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// EventTime время начала/конца события календаря
// Заполнено либо DateTime (конкретный момент), либо Date (событие на весь день)
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Event событие из CalendarService
type Event struct {
	ID       string    `json:"id"`
	Summary  string    `json:"summary,omitempty"`
	Start    EventTime `json:"start"`
	End      EventTime `json:"end"`
	Location string    `json:"location,omitempty"`
	Status   string    `json:"status,omitempty"`
}

// EventsResponse ответ со списком событий за период
type EventsResponse struct {
	Events []Event `json:"events"`
}

// BusyPeriod занятый интервал из freebusy-ответа
type BusyPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeBusyResponse ответ freebusy-эндпоинта
type FreeBusyResponse struct {
	Busy []BusyPeriod `json:"busy"`
}

// ErrorResponse модель ошибки от CalendarService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomainEvent конвертирует событие в доменную модель
// События без dateTime на любой из границ остаются без инстанта и не
// участвуют в определении конфликтов
func (e Event) toDomainEvent() domain.CalendarEvent {
	out := domain.CalendarEvent{
		ID:       e.ID,
		Location: e.Location,
	}

	if t, ok := parseInstant(e.Start.DateTime); ok {
		out.Start = &t
	}
	if t, ok := parseInstant(e.End.DateTime); ok {
		out.End = &t
	}
	if e.Start.DateTime == "" && e.Start.Date != "" {
		out.AllDay = true
	}

	return out
}

func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
