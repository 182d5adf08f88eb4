package get_user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/api/middleware"
	"github.com/m04kA/wedding-composer/internal/service/users"
	"github.com/m04kA/wedding-composer/internal/service/users/models"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeService struct {
	id, requesterID int64
	err             error
}

func (f *fakeService) GetByID(_ context.Context, id, requesterID int64) (*models.UserResponse, error) {
	f.id, f.requesterID = id, requesterID
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserResponse{ID: id, Email: "a@b.c", Name: "Ann"}, nil
}

func serve(svc *fakeService, userID, header string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID, nil)
	req = mux.SetURLVars(req, map[string]string{"userId": userID})
	if header != "" {
		req.Header.Set(middleware.UserIDHeader, header)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Self(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "7", "7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.id)
	assert.Equal(t, int64(7), svc.requesterID)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.c"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, "7", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "me", "7").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: users.ErrAccessDenied}, "8", "7").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: users.ErrUserNotFound}, "7", "7").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: assert.AnError}, "7", "7").Code)
}
