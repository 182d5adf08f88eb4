package create_composer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/service/composers/models"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeService struct {
	calls int
	req   *models.CreateComposerRequest
}

func (f *fakeService) Create(_ context.Context, req *models.CreateComposerRequest) (*models.ComposerResponse, error) {
	f.calls++
	f.req = req
	return &models.ComposerResponse{ID: "c-1", EventType: req.EventType, PaymentStatus: "pending"}, nil
}

func serve(svc *fakeService, userHeader, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/composers", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/composers", strings.NewReader(body))
	}
	if userHeader != "" {
		req.Header.Set(middleware.UserIDHeader, userHeader)
	}

	rec := httptest.NewRecorder()
	middleware.OptionalAuth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_EmptyBodyAnonymous(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.req.UserID)
	assert.Empty(t, svc.req.EventType)
}

func TestHandler_WithOwnerAndEventType(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "7", `{"eventType":"vow-renewal"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.req.UserID)
	assert.Equal(t, int64(7), *svc.req.UserID)
	assert.Equal(t, "vow-renewal", svc.req.EventType)
}

func TestHandler_RejectsUnknownEventType(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "", `{"eventType":"gala"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}
