package calendarservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CalendarService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CalendarService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEvents получает сырые события календаря за период [from, to]
func (c *Client) GetEvents(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	var payload EventsResponse
	if err := c.get(ctx, "/internal/calendar/events", from, to, &payload); err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(payload.Events))
	for _, e := range payload.Events {
		events = append(events, e.toDomainEvent())
	}

	c.log.Info("CalendarService: fetched %d events for [%s, %s]",
		len(events), from.Format(time.RFC3339), to.Format(time.RFC3339))
	return events, nil
}

// GetBusyIntervals получает занятые интервалы за период [from, to]
// через freebusy-эндпоинт
func (c *Client) GetBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	var payload FreeBusyResponse
	if err := c.get(ctx, "/internal/calendar/freebusy", from, to, &payload); err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(payload.Busy))
	for _, p := range payload.Busy {
		start, okStart := parseInstant(p.Start)
		end, okEnd := parseInstant(p.End)
		if !okStart || !okEnd {
			// Интервал без корректных границ бесполезен - пропускаем
			c.log.Warn("CalendarService: skipping busy period with unparseable bounds: start=%q end=%q", p.Start, p.End)
			continue
		}
		busy = append(busy, domain.Interval{Start: start, End: end})
	}

	c.log.Info("CalendarService: fetched %d busy intervals for [%s, %s]",
		len(busy), from.Format(time.RFC3339), to.Format(time.RFC3339))
	return busy, nil
}

// get выполняет GET-запрос с параметрами периода и декодирует JSON-ответ
func (c *Client) get(ctx context.Context, path string, from, to time.Time, out interface{}) error {
	query := url.Values{}
	query.Set("startDate", from.Format(time.RFC3339))
	query.Set("endDate", to.Format(time.RFC3339))

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid date range", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
