package get_availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgMissingParams       = "параметры start, end и duration обязательны"
	msgInvalidParams       = "некорректные параметры запроса"
	msgInvalidBody         = "некорректное тело запроса"
	msgNoContainers        = "список контейнеров пуст"
	msgCalendarUnavailable = "источник календаря недоступен"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: start (YYYY-MM-DD), end (YYYY-MM-DD), duration (минуты),
// step (минуты, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startStr := query.Get("start")
	endStr := query.Get("end")
	durationStr := query.Get("duration")
	if startStr == "" || endStr == "" || durationStr == "" {
		h.logger.Warn("GET /availability - Missing required params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr, durationStr, query.Get("step"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	h.execute(w, r, useCaseReq, "GET /availability")
}

// HandleContainers POST /api/v1/availability/containers
// Контейнерный режим: окна доступности приходят в теле запроса
func (h *Handler) HandleContainers(w http.ResponseWriter, r *http.Request) {
	var body ContainersRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /availability/containers - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if len(body.Containers) == 0 {
		h.logger.Warn("POST /availability/containers - Empty container list")
		handlers.RespondBadRequest(w, msgNoContainers)
		return
	}

	useCaseReq, err := body.ToContainerUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/containers - Invalid containers: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	h.execute(w, r, useCaseReq, "POST /availability/containers")
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, req *getAvailability.Request, route string) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDate):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailability.ErrCalendarUnavailable):
			h.logger.Error("%s - Calendar source unavailable: %v", route, err)
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		default:
			h.logger.Error("%s - Failed to compute availability: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Availability computed: slots_count=%d", route, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
