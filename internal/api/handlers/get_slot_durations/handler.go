package get_slot_durations

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
	service  AvailabilityService
	defaults []int
	logger   Logger
}

// NewHandler создает новый handler мультидлительного просчёта
// defaults - дефолтный набор длительностей из конфигурации
func NewHandler(service AvailabilityService, defaults []int, logger Logger) *Handler {
	return &Handler{
		service:  service,
		defaults: defaults,
		logger:   logger,
	}
}

// Handle POST /api/v1/slots/durations
// Один запрос событий календаря, просчёт слотов для каждой длительности
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body DurationsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /slots/durations - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	cache, err := h.service.NewDurationCache(r.Context(), body.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingEndTime):
			h.logger.Warn("POST /slots/durations - Anchor has no end time")
			handlers.RespondBadRequest(w, msgMissingEndTime)

		case errors.Is(err, domain.ErrInvalidDate):
			h.logger.Warn("POST /slots/durations - Invalid anchor instant: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEventTime)

		case errors.Is(err, availabilitySvc.ErrCalendarUnavailable):
			h.logger.Error("POST /slots/durations - Calendar source unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /slots/durations - Failed to build duration cache: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	durations := body.Durations
	if len(durations) == 0 {
		durations = h.defaults
	}

	response := FromCache(cache, durations)

	h.logger.Info("POST /slots/durations - Durations computed: requested=%d, available=%d",
		len(durations), len(response.AvailableDurations))
	handlers.RespondJSON(w, http.StatusOK, response)
}
