package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"elimu/pkg/utils"
)

const defaultBaseURL = "https://api.lenco.co/access/v2"

type Config struct {
	SecretKey     string // bearer key for the collections API
	WebhookSecret string // shared secret for webhook signatures
	BaseURL       string // override for sandbox/tests
	Currency      string // e.g. "ZMW"
	Operator      string // mobile-money operator, e.g. "airtel"
	ProviderName  string // stored on Subscription.Provider
	Timeout       time.Duration // request timeout, defaults to 15s
}

// Client wraps the Lenco collections API. With no SecretKey configured it
// runs in a logged no-op mode: charge requests are printed and a mock
// success is returned, so checkout flows stay testable without live
// credentials.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Currency == "" {
		cfg.Currency = "ZMW"
	}
	if cfg.Operator == "" {
		cfg.Operator = "airtel"
	}
	if cfg.ProviderName == "" {
		cfg.ProviderName = "lenco"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) ProviderName() string { return c.cfg.ProviderName }

type ChargeRequest struct {
	AmountMinor int64
	Currency    string // defaults to Config.Currency
	Email       string
	Phone       string
	Reference   string
}

type ChargeResponse struct {
	Mock    bool           `json:"mock,omitempty"`
	Message string         `json:"message,omitempty"`
	Raw     map[string]any `json:"raw,omitempty"`
}

// InitiateMobileMoneyCharge asks the provider to push a payment prompt to
// the payer's phone. The call returns as soon as the collection is
// initiated; the outcome arrives later on the webhook.
func (c *Client) InitiateMobileMoneyCharge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.cfg.Currency
	}

	// Lenco expects the amount in major units.
	payload := map[string]any{
		"amount":    float64(req.AmountMinor) / 100,
		"currency":  currency,
		"email":     req.Email,
		"phone":     req.Phone,
		"reference": req.Reference,
		"operator":  c.cfg.Operator,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	if c.cfg.SecretKey == "" {
		log.Printf("--- LENCO API LOG (no API key) ---")
		log.Printf("POST /collections/mobile-money")
		log.Printf("Body: %s", body)
		log.Printf("--- END LENCO LOG ---")
		return &ChargeResponse{
			Mock:    true,
			Message: "API key not configured, request logged",
		}, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/collections/mobile-money", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Keep the transport error in the chain so callers can tell a
		// timeout apart from a rejection.
		return nil, fmt.Errorf("%w: %w", utils.ErrGatewayError, err)
	}
	defer resp.Body.Close()

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		data = map[string]any{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := "payment initiation failed"
		if m, ok := data["message"].(string); ok && m != "" {
			msg = m
		}
		log.Printf("Lenco API error (%d): %v", resp.StatusCode, data)
		return nil, fmt.Errorf("%w: %s", utils.ErrGatewayError, msg)
	}

	out := &ChargeResponse{Raw: data}
	if m, ok := data["message"].(string); ok {
		out.Message = m
	}
	return out, nil
}
