package get_pricing_config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/service/pricing"
	"github.com/m04kA/wedding-composer/internal/service/pricing/models"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeService struct {
	eventType string
	err       error
}

func (f *fakeService) GetConfig(_ context.Context, eventType string) (*models.PricingConfigResponse, error) {
	f.eventType = eventType
	if f.err != nil {
		return nil, f.err
	}
	return &models.PricingConfigResponse{EventType: eventType, PhotoBookPrice: 15000, ACHDiscount: 5000}, nil
}

func serve(svc *fakeService, eventType string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/"+eventType, nil)
	req = mux.SetURLVars(req, map[string]string{"eventType": eventType})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Pricing(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "modest-wedding")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "modest-wedding", svc.eventType)

	var body models.PricingConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5000), body.ACHDiscount)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: pricing.ErrInvalidInput}, "garden-party").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: assert.AnError}, "other").Code)
}
