package get_previous_slots

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetPreviousSlotAvailability(ctx context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error)
	GetAvailablePreviousSlots(ctx context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
