package get_previous_slots

import (
	"context"
	"encoding/json"
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

func (f *fakeService) GetPreviousSlotAvailability(_ context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	f.lastReq = req
	return f.slots, f.err
}

func (f *fakeService) GetAvailablePreviousSlots(_ context.Context, req *models.AnchorSlotsRequest) ([]domain.AvailabilitySlot, error) {
	f.lastReq = req
	return f.available, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/previous", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	conflict := domain.CalendarEvent{ID: "standup"}
	svc := &fakeService{slots: []domain.AvailabilitySlot{
		{
			Start:           time.Date(2025, 8, 14, 14, 0, 0, 0, time.UTC),
			End:             time.Date(2025, 8, 14, 15, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Location:        domain.PlaceholderLocation(),
			Available:       true,
		},
		{
			Start:            time.Date(2025, 8, 14, 13, 30, 0, 0, time.UTC),
			End:              time.Date(2025, 8, 14, 14, 30, 0, 0, time.UTC),
			DurationMinutes:  60,
			Location:         domain.PlaceholderLocation(),
			Available:        false,
			ConflictingEvent: &conflict,
		},
	}}
	h := NewHandler(svc, noopLogger{})

	rec := post(t, h, `{
		"event": {"start": "2025-08-14T15:00:00Z", "end": "2025-08-14T16:00:00Z"},
		"durationMinutes": 60,
		"stepMinutes": 30,
		"maxMinutesBefore": 90
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2025-08-14T14:00:00Z", resp.Slots[0].Start)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, "standup", resp.Slots[1].ConflictingEventID)

	// maxMinutesBefore лежит в MaxMinutes сервисного запроса
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, 60, svc.lastReq.DurationMinutes)
	assert.Equal(t, 30, svc.lastReq.StepMinutes)
	assert.Equal(t, 90, svc.lastReq.MaxMinutes)
}

func TestHandler_Handle_OnlyAvailable(t *testing.T) {
	svc := &fakeService{available: []domain.AvailabilitySlot{
		{
			Start:           time.Date(2025, 8, 14, 14, 0, 0, 0, time.UTC),
			End:             time.Date(2025, 8, 14, 15, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Location:        domain.PlaceholderLocation(),
			Available:       true,
		},
	}}
	h := NewHandler(svc, noopLogger{})

	rec := post(t, h, `{
		"event": {"start": "2025-08-14T15:00:00Z"},
		"durationMinutes": 60,
		"onlyAvailable": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Available)
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
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anchor missing start time",
			body:       `{"event": {"end": "2025-08-14T16:00:00Z"}, "durationMinutes": 60}`,
			serviceErr: domain.ErrMissingStartTime,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "calendar unavailable",
			body:       `{"event": {"start": "2025-08-14T15:00:00Z"}, "durationMinutes": 60}`,
			serviceErr: availabilitySvc.ErrCalendarUnavailable,
			wantStatus: http.StatusBadGateway,
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
