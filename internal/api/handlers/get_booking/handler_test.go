package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/service/bookings"
	"github.com/m04kA/wedding-composer/internal/service/bookings/models"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeService struct {
	booking *models.BookingResponse
	err     error
}

func (f *fakeService) GetByID(_ context.Context, _ int64, _ int64) (*models.BookingResponse, error) {
	return f.booking, f.err
}

func serve(svc *fakeService, bookingID, userHeader string, now time.Time) *httptest.ResponseRecorder {
	h := NewHandler(svc, time.UTC, logger.NewNop())
	h.now = func() time.Time { return now }

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if userHeader != "" {
		req.Header.Set(middleware.UserIDHeader, userHeader)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func saturdayEvening(status string) *models.BookingResponse {
	return &models.BookingResponse{
		ID:        3,
		UserID:    7,
		EventType: "modest-wedding",
		EventDate: "2027-01-09",
		TimeSlot:  "18:00-21:00",
		Status:    status,
	}
}

func TestHandler_VenueDetails(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	rec := serve(&fakeService{booking: saturdayEvening("confirmed")}, "3", "7", now)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["id"])
	assert.Equal(t, "2027-01-09", body["eventDate"])
	assert.Equal(t, "Saturday", body["weekday"])
	assert.Equal(t, "6:00 PM - 9:00 PM", body["slotLabel"])
	assert.Equal(t, true, body["upcoming"])
	assert.Equal(t, true, body["cancellable"])
}

func TestHandler_PastOrCancelledNotCancellable(t *testing.T) {
	after := time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	for name, tc := range map[string]struct {
		status   string
		now      time.Time
		upcoming bool
	}{
		"past":      {"confirmed", after, false},
		"cancelled": {"cancelled", before, true},
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(&fakeService{booking: saturdayEvening(tc.status)}, "3", "7", tc.now)
			require.Equal(t, http.StatusOK, rec.Code)

			var body BookingDetailsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.upcoming, body.Upcoming)
			assert.False(t, body.Cancellable)
		})
	}
}

func TestHandler_UnknownSlotHasNoLabel(t *testing.T) {
	b := saturdayEvening("pending")
	b.TimeSlot = "09:00"

	rec := serve(&fakeService{booking: b}, "3", "7", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "slotLabel")
	assert.Equal(t, "09:00", body["timeSlot"])
}

func TestHandler_Errors(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, "3", "", now).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "abc", "7", now).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "0", "7", now).Code)
	assert.Equal(t, http.StatusNotFound,
		serve(&fakeService{err: bookings.ErrBookingNotFound}, "3", "7", now).Code)
	assert.Equal(t, http.StatusForbidden,
		serve(&fakeService{err: bookings.ErrAccessDenied}, "3", "8", now).Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeService{err: assert.AnError}, "3", "7", now).Code)
}
