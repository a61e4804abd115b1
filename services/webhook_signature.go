package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// WebhookVerifier authenticates provider callbacks with a shared secret.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Configured reports whether a secret is set. When it is not, no request
// verifies — the verifier fails closed.
func (v *WebhookVerifier) Configured() bool {
	return v.secret != ""
}

// Verify computes HMAC-SHA256 over the exact raw body bytes and compares the
// lowercase-hex digest against the supplied signature. The body must be the
// byte-identical serialization the sender signed; re-encoding a parsed body
// before hashing would break verification.
func (v *WebhookVerifier) Verify(rawBody []byte, signature string) bool {
	if !v.Configured() {
		return false
	}
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
