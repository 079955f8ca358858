package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
// Отдаёт занятые интервалы из подтверждённых записей в БД
type AppointmentRepository interface {
	GetBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.Interval, error)
}

// CalendarSource интерфейс внешнего источника занятого времени
type CalendarSource interface {
	GetBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.Interval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
