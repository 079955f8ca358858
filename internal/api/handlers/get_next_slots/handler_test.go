package get_next_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilitySvc "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type fakeService struct {
	slots     []domain.AvailabilitySlot
	available []domain.AvailabilitySlot
	err       error

	lastReq *models.AnchorSlotsRequest
}

func (f *fakeService) GetNextSlotAvailability(_ context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	f.lastReq = req
	return f.slots, f.err
}

func (f *fakeService) GetAvailableNextSlots(_ context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	f.lastReq = req
	return f.available, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/next", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func testSlots() []domain.AvailabilitySlot {
	at := func(h int) time.Time { return time.Date(2025, 8, 14, h, 0, 0, 0, time.UTC) }
	conflict := domain.CalendarEvent{ID: "busy-1"}
	return []domain.AvailabilitySlot{
		{Start: at(11), End: at(12), DurationMinutes: 60, Location: domain.PlaceholderLocation(), Available: true},
		{Start: at(12), End: at(13), DurationMinutes: 60, Location: domain.PlaceholderLocation(), Available: false, ConflictingEvent: &conflict},
	}
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{slots: testSlots()}
	h := NewHandler(svc, noopLogger{})

	rec := post(t, h, `{
		"event": {"start": "2025-08-14T10:00:00Z", "end": "2025-08-14T11:00:00Z"},
		"durationMinutes": 60,
		"stepMinutes": 15,
		"maxMinutesAhead": 120
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2025-08-14T11:00:00Z", resp.Slots[0].Start)
	assert.True(t, resp.Slots[0].Available)
	assert.Empty(t, resp.Slots[0].ConflictingEventID)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, "busy-1", resp.Slots[1].ConflictingEventID)

	// Request parameters land in the service request untouched
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, 60, svc.lastReq.DurationMinutes)
	assert.Equal(t, 15, svc.lastReq.StepMinutes)
	assert.Equal(t, 120, svc.lastReq.MaxMinutes)
}

func TestHandler_Handle_OnlyAvailable(t *testing.T) {
	all := testSlots()
	svc := &fakeService{slots: all, available: all[:1]}
	h := NewHandler(svc, noopLogger{})

	rec := post(t, h, `{
		"event": {"end": "2025-08-14T11:00:00Z"},
		"durationMinutes": 60,
		"onlyAvailable": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Available)
}

func TestHandler_Handle_TimeListFormat(t *testing.T) {
	all := testSlots()
	svc := &fakeService{available: all[:1]}
	h := NewHandler(svc, noopLogger{})

	rec := post(t, h, `{
		"event": {"end": "2025-08-14T11:00:00Z"},
		"durationMinutes": 60,
		"timeListFormat": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TimeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Times, 1)
	assert.Equal(t, "2025-08-14T11:00:00Z", resp.Times[0].Start)
	assert.Equal(t, domain.PlaceholderLocation(), resp.Times[0].Location)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "invalid json body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anchor missing end time",
			body:       `{"event": {"start": "2025-08-14T10:00:00Z"}, "durationMinutes": 60}`,
			serviceErr: domain.ErrMissingEndTime,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unparseable anchor instant",
			body:       `{"event": {"end": "whenever"}, "durationMinutes": 60}`,
			serviceErr: domain.ErrInvalidDate,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "calendar unavailable",
			body:       `{"event": {"end": "2025-08-14T11:00:00Z"}, "durationMinutes": 60}`,
			serviceErr: availabilitySvc.ErrCalendarUnavailable,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unexpected failure",
			body:       `{"event": {"end": "2025-08-14T11:00:00Z"}, "durationMinutes": 60}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.serviceErr}
			h := NewHandler(svc, noopLogger{})

			rec := post(t, h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
