package quote_price

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quotePrice "github.com/m04kA/wedding-composer/internal/usecase/quote_price"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeUseCase struct {
	calls int
	req   *quotePrice.Request
	err   error
}

func (f *fakeUseCase) Execute(_ context.Context, req *quotePrice.Request) (*quotePrice.Response, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &quotePrice.Response{BasePrice: 450000, AddonsTotal: 140000, Discount: 5000, TotalPrice: 585000, BalanceDue: 585000}, nil
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pricing/quote", strings.NewReader(body)))
	return rec
}

func TestHandler_Quote(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"eventType":"modest-wedding","date":"2027-01-09","timeSlot":"18:00-21:00","extraTime":true,"byobBar":true,"paymentMethod":"ach"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(585000), body.TotalPrice)
	assert.Equal(t, int64(5000), body.Discount)
	assert.True(t, uc.req.ExtraTime)
	assert.Equal(t, "ach", uc.req.PaymentMethod)
}

func TestHandler_BadInputNeverReachesUseCase(t *testing.T) {
	for name, body := range map[string]string{
		"malformed json":    `{"eventType":`,
		"negative paid":     `{"amountPaid":-1}`,
		"too many books":    `{"photoBook":true,"photoBookQuantity":11}`,
		"negative quantity": `{"photoBookQuantity":-2}`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			assert.Equal(t, http.StatusBadRequest, serve(uc, body).Code)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: quotePrice.ErrInvalidInput}, `{}`).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: assert.AnError}, `{}`).Code)
}
