package gateway

import (
	"encoding/json"
)

// Canonical event types. Lenco has shipped both dotted and underscored
// forms; NormalizeEvent folds them together.
const (
	EventTransactionSuccessful = "transaction.successful"
	EventTransactionFailed     = "transaction.failed"
)

// WebhookEvent is the canonical, provider-agnostic shape the reconciler
// consumes. It is derived per call and never persisted.
type WebhookEvent struct {
	Type       string
	Reference  string
	Amount     float64
	Status     string
	CustomerID string
	Data       map[string]any
}

// ParseEvent unmarshals a raw webhook body and normalizes it. Callers must
// have verified the signature over the same raw bytes first.
func ParseEvent(raw []byte) (WebhookEvent, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return WebhookEvent{}, err
	}
	return NormalizeEvent(body), nil
}

// NormalizeEvent maps the provider's loosely-typed payload onto
// WebhookEvent. Alias table:
//
//	type        <- event | type
//	reference   <- data.reference | reference
//	amount      <- data.amount | amount
//	status      <- data.status | status
//	customer id <- data.customer_id | customer_id
func NormalizeEvent(body map[string]any) WebhookEvent {
	data, _ := body["data"].(map[string]any)
	if data == nil {
		data = body
	}

	ev := WebhookEvent{
		Type:       normalizeType(firstString(body, "event", "type")),
		Reference:  firstString(data, "reference"),
		Status:     firstString(data, "status"),
		CustomerID: firstString(data, "customer_id"),
		Data:       data,
	}
	if ev.Reference == "" {
		ev.Reference = firstString(body, "reference")
	}
	if ev.Status == "" {
		ev.Status = firstString(body, "status")
	}
	if ev.CustomerID == "" {
		ev.CustomerID = firstString(body, "customer_id")
	}

	ev.Amount = firstNumber(data, "amount")
	if ev.Amount == 0 {
		ev.Amount = firstNumber(body, "amount")
	}

	return ev
}

func normalizeType(t string) string {
	switch t {
	case "transaction_successful":
		return EventTransactionSuccessful
	case "transaction_failed":
		return EventTransactionFailed
	}
	return t
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func firstNumber(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f
			}
		}
	}
	return 0
}
