package availability

import "errors"

var (
	// ErrCalendarUnavailable возвращается, когда источник календаря недоступен
	// Движок не ретраит: ошибка фатальна для вызова
	ErrCalendarUnavailable = errors.New("calendar source unavailable")
)
