package get_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на вычисление доступных слотов
//
// Обычный режим: недельный шаблон доступности разворачивается по диапазону
// дат [Start, End] включительно. Контейнерный режим: вместо шаблона
// переданы ad hoc окна-контейнеры (Containers непустой), диапазон дат
// игнорируется
type Request struct {
	Start           domain.Day
	End             domain.Day
	DurationMinutes int

	// Переопределения конфигурации (nil/0 = взять дефолт сервиса)
	StepMinutes     int
	PaddingMinutes  *int
	LeadTimeMinutes *int

	// Контейнерный режим
	Containers []domain.CalendarEvent
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Start           domain.Day
	End             domain.Day
	DurationMinutes int
	Slots           []domain.Interval
}

// containerMode сообщает, что запрос использует контейнерные события
func (r *Request) containerMode() bool {
	return len(r.Containers) > 0
}
