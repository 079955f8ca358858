package get_next_slots

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilitySvc "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgMissingEndTime      = "у якорного события отсутствует время окончания"
	msgInvalidEventTime    = "некорректный формат времени якорного события"
	msgCalendarUnavailable = "источник календаря недоступен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/next
// Генерирует слоты вперёд от конца якорного события
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body SlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /slots/next - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq := body.ToServiceRequest()

	// Плоский wire-формат всегда только по доступным слотам
	if body.TimeListFormat {
		slots, err := h.service.GetAvailableNextSlots(r.Context(), serviceReq)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.logger.Info("POST /slots/next - Time list computed: times_count=%d", len(slots))
		handlers.RespondJSON(w, http.StatusOK, FromTimeList(domain.ToTimeList(slots)))
		return
	}

	var (
		slots []domain.AvailabilitySlot
		err   error
	)
	if body.OnlyAvailable {
		slots, err = h.service.GetAvailableNextSlots(r.Context(), serviceReq)
	} else {
		slots, err = h.service.GetNextSlotAvailability(r.Context(), serviceReq)
	}
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("POST /slots/next - Slots computed: slots_count=%d", len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(slots))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingEndTime):
		h.logger.Warn("POST /slots/next - Anchor has no end time")
		handlers.RespondBadRequest(w, msgMissingEndTime)

	case errors.Is(err, domain.ErrInvalidDate):
		h.logger.Warn("POST /slots/next - Invalid anchor instant: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventTime)

	case errors.Is(err, availabilitySvc.ErrCalendarUnavailable):
		h.logger.Error("POST /slots/next - Calendar source unavailable: %v", err)
		handlers.RespondBadGateway(w, msgCalendarUnavailable)

	default:
		h.logger.Error("POST /slots/next - Failed to compute slots: %v", err)
		handlers.RespondInternalError(w)
	}
}
