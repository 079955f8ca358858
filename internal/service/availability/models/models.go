package models

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// AnchorSlotsRequest запрос на генерацию слотов относительно якорного события
// Нулевые Step/Max означают "взять дефолт сервиса"
type AnchorSlotsRequest struct {
	Event           domain.AnchorEvent
	DurationMinutes int
	StepMinutes     int
	MaxMinutes      int // вперёд для next, назад для previous
}

// DurationsRequest запрос на мультидлительный просчёт слотов
// Пустой список Durations означает "взять дефолтный набор"
type DurationsRequest struct {
	Event           domain.AnchorEvent
	Durations       []int
	StepMinutes     int
	MaxMinutesAhead int
}
