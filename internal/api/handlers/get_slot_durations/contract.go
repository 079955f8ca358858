package get_slot_durations

import (
	"context"

	availabilitySvc "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	NewDurationCache(ctx context.Context, req *models.DurationsRequest) (*availabilitySvc.DurationCache, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
