package icalfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const sampleFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-timed\r\n" +
	"DTSTART:20250814T100000Z\r\n" +
	"DTEND:20250814T110000Z\r\n" +
	"LOCATION:Main studio\r\n" +
	"SUMMARY:Haircut\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-allday\r\n" +
	"DTSTART;VALUE=DATE:20250814\r\n" +
	"DTEND;VALUE=DATE:20250815\r\n" +
	"SUMMARY:Street fair\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTSTART:20250814T120000Z\r\n" +
	"DTEND:20250814T130000Z\r\n" +
	"SUMMARY:No UID\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-outside\r\n" +
	"DTSTART:20250820T100000Z\r\n" +
	"DTEND:20250820T110000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func serveFeed(t *testing.T, body string, status int) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, noopLogger{})
}

func TestClient_GetEvents(t *testing.T) {
	client := serveFeed(t, sampleFeed, http.StatusOK)

	from := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	events, err := client.GetEvents(context.Background(), from, to)
	require.NoError(t, err)

	// The UID-less event is dropped, the out-of-range one is filtered,
	// the all-day one survives without instants
	require.Len(t, events, 2)

	timed := events[0]
	assert.Equal(t, "evt-timed", timed.ID)
	assert.Equal(t, "Main studio", timed.Location)
	require.True(t, timed.HasInstants())
	assert.True(t, timed.Start.Equal(time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC)))
	assert.False(t, timed.AllDay)

	allDay := events[1]
	assert.Equal(t, "evt-allday", allDay.ID)
	assert.True(t, allDay.AllDay)
	assert.False(t, allDay.HasInstants())
}

func TestClient_GetBusyIntervals(t *testing.T) {
	client := serveFeed(t, sampleFeed, http.StatusOK)

	from := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	busy, err := client.GetBusyIntervals(context.Background(), from, from.Add(24*time.Hour))
	require.NoError(t, err)

	// Only events with instants contribute busy time
	require.Len(t, busy, 1)
	assert.True(t, busy[0].Start.Equal(time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC)))
	assert.True(t, busy[0].End.Equal(time.Date(2025, 8, 14, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Main studio", busy[0].Location)
}

func TestClient_BadStatus(t *testing.T) {
	client := serveFeed(t, "gone", http.StatusNotFound)

	_, err := client.GetEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidFeed)
}

func TestClient_MalformedFeed(t *testing.T) {
	client := serveFeed(t, "this is not an icalendar file", http.StatusOK)

	_, err := client.GetEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidFeed)
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, noopLogger{})

	_, err := client.GetEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInternal)
}
