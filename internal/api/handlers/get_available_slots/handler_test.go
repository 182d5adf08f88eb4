package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/wedding-composer/internal/usecase/get_available_slots"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeUseCase struct {
	req  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestHandler_Slots(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:       "2027-01-09",
		EventType:  "modest-wedding",
		Selectable: true,
		Slots: []getAvailableSlots.Slot{
			{Value: "10:00", Label: "10:00 AM", Booked: false},
			{Value: "17:00", Label: "5:00 PM", Booked: true},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2027-01-09&eventType=modest-wedding", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2027-01-09", uc.req.Date)
	assert.Equal(t, "modest-wedding", uc.req.EventType)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Selectable)
	require.Len(t, body.Slots, 2)
	assert.True(t, body.Slots[1].Booked)
}

func TestHandler_InvalidQuery(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrInvalidInput}
	h := NewHandler(uc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=09-01-2027&eventType=modest-wedding", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
