package get_next_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// SlotsRequest HTTP-запрос на генерацию слотов после якорного события
type SlotsRequest struct {
	Event           domain.AnchorEvent `json:"event"`
	DurationMinutes int                `json:"durationMinutes"`
	StepMinutes     int                `json:"stepMinutes,omitempty"`
	MaxMinutesAhead int                `json:"maxMinutesAhead,omitempty"`
	OnlyAvailable   bool               `json:"onlyAvailable,omitempty"`
	TimeListFormat  bool               `json:"timeListFormat,omitempty"`
}

// SlotsResponse HTTP-ответ со слотами
type SlotsResponse struct {
	Slots []SlotModel `json:"slots"`
}

// TimeListResponse HTTP-ответ в плоском wire-формате для UI выбора времени
type TimeListResponse struct {
	Times []TimeListEntry `json:"times"`
}

// SlotModel модель слота
type SlotModel struct {
	Start              string          `json:"start"`
	End                string          `json:"end"`
	DurationMinutes    int             `json:"durationMinutes"`
	Location           domain.Location `json:"location"`
	Available          bool            `json:"available"`
	ConflictingEventID string          `json:"conflictingEventId,omitempty"`
}

// TimeListEntry запись плоского формата
type TimeListEntry struct {
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Location domain.Location `json:"location"`
}

// ToServiceRequest конвертирует HTTP-запрос в запрос сервиса
func (r *SlotsRequest) ToServiceRequest() *models.AnchorSlotsRequest {
	return &models.AnchorSlotsRequest{
		Event:           r.Event,
		DurationMinutes: r.DurationMinutes,
		StepMinutes:     r.StepMinutes,
		MaxMinutes:      r.MaxMinutesAhead,
	}
}

// FromDomainSlots конвертирует доменные слоты в HTTP response
func FromDomainSlots(slots []domain.AvailabilitySlot) *SlotsResponse {
	out := make([]SlotModel, len(slots))
	for i, s := range slots {
		out[i] = SlotModel{
			Start:           s.Start.Format(time.RFC3339),
			End:             s.End.Format(time.RFC3339),
			DurationMinutes: s.DurationMinutes,
			Location:        s.Location,
			Available:       s.Available,
		}
		if s.ConflictingEvent != nil {
			out[i].ConflictingEventID = s.ConflictingEvent.ID
		}
	}
	return &SlotsResponse{Slots: out}
}

// FromTimeList конвертирует wire-формат доменного слоя в HTTP response
func FromTimeList(entries []domain.TimeListEntry) *TimeListResponse {
	out := make([]TimeListEntry, len(entries))
	for i, e := range entries {
		out[i] = TimeListEntry{
			Start:    e.Start.Format(time.RFC3339),
			End:      e.End.Format(time.RFC3339),
			Location: e.Location,
		}
	}
	return &TimeListResponse{Times: out}
}
