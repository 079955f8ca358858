package icalfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент ICS-фида: скачивает iCalendar-файл по URL и отдает события
// в доменной модели. Альтернатива CalendarService для инсталляций, где
// календарь публикуется обычным ICS-экспортом
type Client struct {
	feedURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ICS-фида
func NewClient(feedURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEvents получает события фида, пересекающиеся с периодом [from, to]
// События на весь день остаются без инстантов и не участвуют в конфликтах
func (c *Client) GetEvents(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	cal, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0)
	for _, ve := range cal.Events() {
		ev, ok := parseVEvent(ve)
		if !ok {
			// Событие без UID или без дат - пропускаем, но продолжаем разбор
			continue
		}

		// События вне запрошенного периода не интересны
		if ev.HasInstants() && (!ev.Start.Before(to) || !ev.End.After(from)) {
			continue
		}

		events = append(events, ev)
	}

	c.log.Info("ICSFeed: parsed %d events for [%s, %s]",
		len(events), from.Format(time.RFC3339), to.Format(time.RFC3339))
	return events, nil
}

// GetBusyIntervals получает занятые интервалы за период [from, to]
// Выводятся из событий фида с конкретными инстантами
func (c *Client) GetBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	events, err := c.GetEvents(ctx, from, to)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(events))
	for _, ev := range events {
		if !ev.HasInstants() {
			continue
		}
		busy = append(busy, domain.Interval{Start: *ev.Start, End: *ev.End, Location: ev.Location})
	}

	return busy, nil
}

// fetch скачивает и парсит ICS-фид
func (c *Client) fetch(ctx context.Context) (*ical.Calendar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidFeed, resp.StatusCode, string(body))
	}

	cal, err := ical.ParseCalendar(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse calendar: %v", ErrInvalidFeed, err)
	}

	return cal, nil
}

// parseVEvent конвертирует VEVENT в доменную модель
func parseVEvent(ve *ical.VEvent) (domain.CalendarEvent, bool) {
	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return domain.CalendarEvent{}, false
	}

	out := domain.CalendarEvent{ID: uid.Value}

	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}

	// Детект события на весь день: VALUE=DATE или значение DTSTART без 'T'
	if dtStart := ve.GetProperty(ical.ComponentPropertyDtStart); dtStart != nil {
		if params := dtStart.ICalParameters; params != nil {
			if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
				out.AllDay = true
			}
		}
		if !strings.Contains(dtStart.Value, "T") {
			out.AllDay = true
		}
	}

	// У событий на весь день инстанты не выставляются - они не конфликтуют
	// со слотами по контракту движка
	if out.AllDay {
		return out, true
	}

	if start, err := ve.GetStartAt(); err == nil && !start.IsZero() {
		s := start
		out.Start = &s
	}
	if end, err := ve.GetEndAt(); err == nil && !end.IsZero() {
		e := end
		out.End = &e
	}

	return out, true
}
