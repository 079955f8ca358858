package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
//
// Нулевая/отрицательная длительность и инвертированный диапазон - НЕ
// ошибки: по контракту движка это легитимный сигнал "нет слотов" и
// обрабатывается пустым результатом дальше по пайплайну
func validateRequest(req *Request) error {
	if req.StepMinutes < 0 {
		return fmt.Errorf("%w: step must be non-negative", ErrInvalidInput)
	}

	if req.PaddingMinutes != nil && *req.PaddingMinutes < 0 {
		return fmt.Errorf("%w: padding must be non-negative", ErrInvalidInput)
	}

	if req.LeadTimeMinutes != nil && *req.LeadTimeMinutes < 0 {
		return fmt.Errorf("%w: lead time must be non-negative", ErrInvalidInput)
	}

	if req.containerMode() {
		return nil
	}

	// В шаблонном режиме обязателен диапазон дат
	var zero domain.Day
	if req.Start == zero || req.End == zero {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	return nil
}
