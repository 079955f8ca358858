package get_slot_durations

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilitySvc "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// DurationsRequest HTTP-запрос мультидлительного просчёта слотов после
// якорного события. Пустой durations - дефолтный набор сервиса
type DurationsRequest struct {
	Event           domain.AnchorEvent `json:"event"`
	Durations       []int              `json:"durations,omitempty"`
	StepMinutes     int                `json:"stepMinutes,omitempty"`
	MaxMinutesAhead int                `json:"maxMinutesAhead,omitempty"`
}

// DurationsResponse HTTP-ответ мультидлительного просчёта
type DurationsResponse struct {
	AvailableDurations []int                      `json:"availableDurations"`
	Times              map[string][]TimeListEntry `json:"times"`
}

// TimeListEntry запись плоского формата
type TimeListEntry struct {
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Location domain.Location `json:"location"`
}

// ToServiceRequest конвертирует HTTP-запрос в запрос сервиса
func (r *DurationsRequest) ToServiceRequest() *models.DurationsRequest {
	return &models.DurationsRequest{
		Event:           r.Event,
		Durations:       r.Durations,
		StepMinutes:     r.StepMinutes,
		MaxMinutesAhead: r.MaxMinutesAhead,
	}
}

// FromCache собирает ответ из просчитанного кеша
func FromCache(cache *availabilitySvc.DurationCache, durations []int) *DurationsResponse {
	times := make(map[string][]TimeListEntry, len(durations))
	for _, duration := range durations {
		entries := cache.TimeListForDuration(duration)
		converted := make([]TimeListEntry, len(entries))
		for i, e := range entries {
			converted[i] = TimeListEntry{
				Start:    e.Start.Format(time.RFC3339),
				End:      e.End.Format(time.RFC3339),
				Location: e.Location,
			}
		}
		times[strconv.Itoa(duration)] = converted
	}

	return &DurationsResponse{
		AvailableDurations: cache.AvailableDurations(),
		Times:              times,
	}
}
