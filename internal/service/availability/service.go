package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// Defaults дефолтные параметры генерации, подставляемые на границе вызова,
// когда запрос их не переопределяет
type Defaults struct {
	StepMinutes      int
	MaxMinutesAhead  int
	MaxMinutesBefore int
	Durations        []int
}

// Service сервис генерации слотов относительно якорного события
// Чистое вычисление с единственной точкой ожидания - выборкой конфликтующих
// событий из источника календаря (один раз на вызов)
type Service struct {
	events       EventSource
	defaults     Defaults
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(events EventSource, defaults Defaults, logger Logger) *Service {
	return &Service{
		events:       events,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetNextSlotAvailability генерирует слоты вперёд от конца якорного события.
// Слоты шагают от origin до origin+maxAhead; каждый проверяется на конфликт
// с событиями, выбранными один раз для 24-часового окна после якоря.
// Недоступные слоты сохраняются в результате (Available=false), чтобы UI
// мог отрисовать занятое время
func (s *Service) GetNextSlotAvailability(ctx context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	// Валидация якоря ДО выборки событий
	origin, err := req.Event.EndTime()
	if err != nil {
		s.logger.Warn("GetNextSlotAvailability: anchor validation failed: %v", err)
		return nil, err
	}

	step, maxAhead := s.applyForwardDefaults(req.StepMinutes, req.MaxMinutes)

	// Единственная выборка конфликтов: фиксированное 24-часовое окно после
	// якоря. Окно НЕ расширяется, даже если maxAhead+duration выходит за него
	conflicts, err := s.events.GetEvents(ctx, origin, origin.Add(domain.ConflictWindow))
	if err != nil {
		s.logger.Error("GetNextSlotAvailability: failed to fetch conflicting events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	location := parseAnchorLocation(req.Event.Location)
	slots := nextSlots(origin, req.DurationMinutes, step, maxAhead, location, conflicts)

	s.logger.Info("GetNextSlotAvailability: generated %d slots from %s (duration=%d, step=%d, maxAhead=%d, conflicts=%d)",
		len(slots), origin.Format(domain.DateFormat+" "+domain.TimeFormat), req.DurationMinutes, step, maxAhead, len(conflicts))
	return slots, nil
}

// GetAvailableNextSlots обёртка, возвращающая только доступные слоты
func (s *Service) GetAvailableNextSlots(ctx context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	slots, err := s.GetNextSlotAvailability(ctx, req)
	if err != nil {
		return nil, err
	}
	return onlyAvailable(slots), nil
}

// GetPreviousSlotAvailability генерирует слоты назад от начала якорного
// события. Конец слота шагает от origin вниз до origin-maxBefore; начало
// слота тоже обязано попадать в границу. Конфликты выбираются один раз для
// 24-часового окна ПЕРЕД якорем. Локация слотов всегда плейсхолдер - в
// отличие от forward-генерации она не наследуется от якоря
func (s *Service) GetPreviousSlotAvailability(ctx context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	origin, err := req.Event.StartTime()
	if err != nil {
		s.logger.Warn("GetPreviousSlotAvailability: anchor validation failed: %v", err)
		return nil, err
	}

	step, maxBefore := s.applyBackwardDefaults(req.StepMinutes, req.MaxMinutes)

	conflicts, err := s.events.GetEvents(ctx, origin.Add(-domain.ConflictWindow), origin)
	if err != nil {
		s.logger.Error("GetPreviousSlotAvailability: failed to fetch conflicting events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	slots := previousSlots(origin, req.DurationMinutes, step, maxBefore, conflicts)

	s.logger.Info("GetPreviousSlotAvailability: generated %d slots before %s (duration=%d, step=%d, maxBefore=%d, conflicts=%d)",
		len(slots), origin.Format(domain.DateFormat+" "+domain.TimeFormat), req.DurationMinutes, step, maxBefore, len(conflicts))
	return slots, nil
}

// GetAvailablePreviousSlots обёртка, возвращающая только доступные слоты
func (s *Service) GetAvailablePreviousSlots(ctx context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	slots, err := s.GetPreviousSlotAvailability(ctx, req)
	if err != nil {
		return nil, err
	}
	return onlyAvailable(slots), nil
}

// NewDurationCache создает мультидлительный кеш вокруг якорного события.
// Валидация якоря выполняется до выборки; выборка конфликтов - ровно одна
// независимо от количества длительностей; списки для начального набора
// длительностей считаются сразу, остальные - лениво при обращении
func (s *Service) NewDurationCache(ctx context.Context, req *models.DurationsRequest) (*DurationCache, error) {
	origin, err := req.Event.EndTime()
	if err != nil {
		s.logger.Warn("NewDurationCache: anchor validation failed: %v", err)
		return nil, err
	}

	step, maxAhead := s.applyForwardDefaults(req.StepMinutes, req.MaxMinutesAhead)

	durations := req.Durations
	if len(durations) == 0 {
		durations = s.defaults.Durations
	}
	if len(durations) == 0 {
		durations = domain.DefaultDurations
	}

	conflicts, err := s.events.GetEvents(ctx, origin, origin.Add(domain.ConflictWindow))
	if err != nil {
		s.logger.Error("NewDurationCache: failed to fetch conflicting events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	cache := &DurationCache{
		event:           req.Event,
		origin:          origin,
		location:        parseAnchorLocation(req.Event.Location),
		conflicts:       conflicts,
		stepMinutes:     step,
		maxMinutesAhead: maxAhead,
		createdAt:       s.timeProvider.Now(),
		slots:           make(map[int][]domain.AvailabilitySlot, len(durations)),
	}

	// Жадная предзаливка начального набора длительностей
	for _, duration := range durations {
		cache.SlotsForDuration(duration)
	}

	s.logger.Info("NewDurationCache: cache created for anchor ending %s (durations=%v, conflicts=%d)",
		origin.Format(domain.DateFormat+" "+domain.TimeFormat), durations, len(conflicts))
	return cache, nil
}

func (s *Service) applyForwardDefaults(step, maxAhead int) (int, int) {
	if step <= 0 {
		step = s.defaults.StepMinutes
	}
	if maxAhead <= 0 {
		maxAhead = s.defaults.MaxMinutesAhead
	}
	return step, maxAhead
}

func (s *Service) applyBackwardDefaults(step, maxBefore int) (int, int) {
	if step <= 0 {
		step = s.defaults.StepMinutes
	}
	if maxBefore <= 0 {
		maxBefore = s.defaults.MaxMinutesBefore
	}
	return step, maxBefore
}
