package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Options конфигурация движка, передаваемая явно при создании usecase
// (вместо процессных глобалов): дефолтный шаг, паддинг, lead time и
// таймзона бизнеса
type Options struct {
	TimeZone        string
	StepMinutes     int
	PaddingMinutes  int
	LeadTimeMinutes int
}

// UseCase use case вычисления доступных слотов по недельному шаблону
// (или контейнерным событиям) с вычитанием занятого времени
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendar        CalendarSource
	template        domain.WeeklyTemplate
	opts            Options
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendar CalendarSource,
	template domain.WeeklyTemplate,
	opts Options,
	logger Logger,
) (*UseCase, error) {
	location := time.UTC
	if opts.TimeZone != "" {
		var err error
		location, err = time.LoadLocation(opts.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("load time zone %q: %w", opts.TimeZone, err)
		}
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendar:        calendar,
		template:        template,
		opts:            opts,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}, nil
}

// Execute выполняет use case вычисления доступных слотов
//
// Пайплайн: развернуть шаблон (или контейнеры) в кандидатные интервалы;
// один раз собрать занятое время из БД записей и внешнего календаря;
// отфильтровать кандидатов с учётом паддинга и lead time
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: start=%s, end=%s, duration=%d, containers=%d",
		req.Start, req.End, req.DurationMinutes, len(req.Containers))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и эффективные параметры
	now := uc.timeProvider.Now()
	step := req.StepMinutes
	if step == 0 {
		step = uc.opts.StepMinutes
	}
	padding := uc.opts.PaddingMinutes
	if req.PaddingMinutes != nil {
		padding = *req.PaddingMinutes
	}
	leadTime := uc.opts.LeadTimeMinutes
	if req.LeadTimeMinutes != nil {
		leadTime = *req.LeadTimeMinutes
	}

	// 3. Разворачиваем кандидатные интервалы
	var candidates []domain.Interval
	if req.containerMode() {
		candidates = containerTimes(req.Containers, req.DurationMinutes, step)
	} else {
		candidates = potentialTimes(req.Start, req.End, req.DurationMinutes, uc.template, step, uc.location)
	}

	// Дегенеративный ввод - это "нет слотов", а не ошибка
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailability: no candidate intervals for request")
		return uc.response(req, []domain.Interval{}), nil
	}

	// 4. Собираем занятое время одним заходом по охватывающему диапазону
	from, to := envelope(candidates)

	busy, err := uc.appointmentRepo.GetBusyIntervals(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get busy intervals from appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	calendarBusy, err := uc.calendar.GetBusyIntervals(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get busy intervals from calendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	busy = append(busy, calendarBusy...)

	// 5. Вычитаем занятое время
	slots := filterAvailable(candidates, busy, padding, leadTime, now)

	uc.logger.Info("GetAvailability: %d of %d candidates available (busy=%d, padding=%d, leadTime=%d)",
		len(slots), len(candidates), len(busy), padding, leadTime)

	return uc.response(req, slots), nil
}

func (uc *UseCase) response(req *Request, slots []domain.Interval) *Response {
	return &Response{
		Start:           req.Start,
		End:             req.End,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}
}

// envelope возвращает охватывающий диапазон списка кандидатов
func envelope(candidates []domain.Interval) (time.Time, time.Time) {
	from, to := candidates[0].Start, candidates[0].End
	for _, c := range candidates[1:] {
		if c.Start.Before(from) {
			from = c.Start
		}
		if c.End.After(to) {
			to = c.End
		}
	}
	return from, to
}
