package get_availability

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Start           string `json:"start,omitempty"`
	End             string `json:"end,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// Slot модель доступного слота
type Slot struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

// ContainersRequest HTTP-запрос контейнерного режима: ad hoc окна
// доступности вместо недельного шаблона
type ContainersRequest struct {
	DurationMinutes int         `json:"durationMinutes"`
	StepMinutes     int         `json:"stepMinutes,omitempty"`
	PaddingMinutes  *int        `json:"paddingMinutes,omitempty"`
	LeadTimeMinutes *int        `json:"leadTimeMinutes,omitempty"`
	Containers      []Container `json:"containers"`
}

// Container одно контейнерное событие
type Container struct {
	ID       string `json:"id,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Start:    s.Start.Format(time.RFC3339),
			End:      s.End.Format(time.RFC3339),
			Location: s.Location,
		}
	}

	out := &AvailabilityResponse{
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}

	var zero domain.Day
	if resp.Start != zero {
		out.Start = resp.Start.String()
		out.End = resp.End.String()
	}

	return out
}

// ToUseCaseRequest создает запрос use case из query-параметров шаблонного
// режима
func ToUseCaseRequest(startStr, endStr, durationStr, stepStr string) (*getAvailability.Request, error) {
	start, err := domain.DayFromString(startStr)
	if err != nil {
		return nil, err
	}

	end, err := domain.DayFromString(endStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q", durationStr)
	}

	step := 0
	if stepStr != "" {
		step, err = strconv.Atoi(stepStr)
		if err != nil {
			return nil, fmt.Errorf("invalid step %q", stepStr)
		}
	}

	return &getAvailability.Request{
		Start:           start,
		End:             end,
		DurationMinutes: duration,
		StepMinutes:     step,
	}, nil
}

// ToContainerUseCaseRequest создает запрос use case из тела контейнерного
// запроса
func (r *ContainersRequest) ToContainerUseCaseRequest() (*getAvailability.Request, error) {
	containers := make([]domain.CalendarEvent, 0, len(r.Containers))
	for _, c := range r.Containers {
		ev := domain.CalendarEvent{ID: c.ID, Location: c.Location}

		if c.Start != "" {
			start, err := time.Parse(time.RFC3339, c.Start)
			if err != nil {
				return nil, fmt.Errorf("invalid container start %q", c.Start)
			}
			ev.Start = &start
		}
		if c.End != "" {
			end, err := time.Parse(time.RFC3339, c.End)
			if err != nil {
				return nil, fmt.Errorf("invalid container end %q", c.End)
			}
			ev.End = &end
		}

		containers = append(containers, ev)
	}

	return &getAvailability.Request{
		DurationMinutes: r.DurationMinutes,
		StepMinutes:     r.StepMinutes,
		PaddingMinutes:  r.PaddingMinutes,
		LeadTimeMinutes: r.LeadTimeMinutes,
		Containers:      containers,
	}, nil
}
