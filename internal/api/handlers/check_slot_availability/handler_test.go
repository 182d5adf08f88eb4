package check_slot_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkSlot "github.com/m04kA/wedding-composer/internal/usecase/check_slot_availability"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeUseCase struct {
	req       *checkSlot.Request
	available bool
	err       error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &checkSlot.Response{Available: f.available}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Available(t *testing.T) {
	uc := &fakeUseCase{available: true}

	rec := serve(uc, "/api/v1/availability/check?date=2027-01-09&timeSlot=18:00-21:00&excludeId=c-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, "2027-01-09", uc.req.Date)
	assert.Equal(t, "18:00-21:00", uc.req.TimeSlot)
	assert.Equal(t, "c-1", uc.req.ExcludeID)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid query", checkSlot.ErrInvalidInput, http.StatusBadRequest},
		{"storage failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, "/api/v1/availability/check?date=bad")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
