package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Options настройки клиента платёжного шлюза
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Client клиент платёжного шлюза
type Client struct {
	opts       Options
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(opts Options, log Logger) *Client {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		log: log,
	}
}

// Configured возвращает true, если URL шлюза задан
func (c *Client) Configured() bool {
	return c.opts.BaseURL != ""
}

// CreateCheckoutSession создает платёжную сессию на amount центов для композера referenceID
func (c *Client) CreateCheckoutSession(ctx context.Context, referenceID string, amount int64) (*CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload := CheckoutRequest{
		ReferenceID: referenceID,
		Amount:      amount,
		Currency:    c.opts.Currency,
		SuccessURL:  c.opts.SuccessURL,
		CancelURL:   c.opts.CancelURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/checkout/sessions", c.opts.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", fmt.Sprintf("%s-%d", referenceID, amount))
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	c.log.Info("Creating checkout session for composer=%s amount=%d", referenceID, amount)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.log.Warn("Payment gateway rejected session for composer=%s: status=%d message=%s",
			referenceID, resp.StatusCode, errResp.Message)
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Message)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if session.ID == "" || session.URL == "" {
		return nil, fmt.Errorf("%w: empty session id or url", ErrInvalidResponse)
	}

	c.log.Info("Checkout session %s created for composer=%s", session.ID, referenceID)
	return &session, nil
}
