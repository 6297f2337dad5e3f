package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	client := NewClient(Config{WebhookSecret: "top-secret"})
	payload := []byte(`{"event":"transaction.successful"}`)

	assert.True(t, client.VerifySignature(payload, signPayload(payload, "top-secret")))
}

func TestVerifySignature_Invalid(t *testing.T) {
	client := NewClient(Config{WebhookSecret: "top-secret"})
	payload := []byte(`{"event":"transaction.successful"}`)

	assert.False(t, client.VerifySignature(payload, signPayload(payload, "wrong-secret")))
	assert.False(t, client.VerifySignature(payload, "deadbeef"))
	assert.False(t, client.VerifySignature(payload, "not hex at all"))
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	client := NewClient(Config{WebhookSecret: "top-secret"})
	sig := signPayload([]byte(`{"amount":10}`), "top-secret")

	assert.False(t, client.VerifySignature([]byte(`{"amount":1000}`), sig))
}

func TestVerifySignature_NoSecretConfigured(t *testing.T) {
	// Permissive dev mode: with no shared secret, anything passes.
	client := NewClient(Config{})

	assert.True(t, client.VerifySignature([]byte(`{}`), ""))
	assert.True(t, client.VerifySignature([]byte(`{}`), "garbage"))
}
