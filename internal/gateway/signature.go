package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"log"
	"strings"
)

// VerifySignature checks the X-Lenco-Signature header against an
// HMAC-SHA512 hex digest of the raw request body. It must run before the
// body is parsed or any field is trusted. hmac.Equal is length-safe and
// constant time.
//
// With no webhook secret configured verification short-circuits to true so
// local environments work without provider config; running production that
// way accepts forged webhooks.
func (c *Client) VerifySignature(payload []byte, signatureHeader string) bool {
	if c.cfg.WebhookSecret == "" {
		log.Printf("LENCO_WEBHOOK_SECRET not set, skipping signature verification")
		return true
	}

	sig, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(signatureHeader)))
	if err != nil {
		return false
	}

	mac := hmac.New(sha512.New, []byte(c.cfg.WebhookSecret))
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), sig)
}
