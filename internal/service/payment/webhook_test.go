package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	v := NewVerifier("topsecret")
	body := []byte(`{"x_ref_payco":"123","x_cod_response":1}`)

	assert.NoError(t, v.Verify(body, sign("topsecret", body)))
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	v := NewVerifier("topsecret")
	body := []byte(`{"x_ref_payco":"123"}`)

	assert.ErrorIs(t, v.Verify(body, sign("wrongsecret", body)), ErrInvalidSignature)
	assert.ErrorIs(t, v.Verify(body, ""), ErrInvalidSignature)
	assert.ErrorIs(t, v.Verify(body, "deadbeef"), ErrInvalidSignature)
}

func TestVerifyRejectsTamperedBody(t *testing.T) {
	v := NewVerifier("topsecret")
	body := []byte(`{"x_amount":"100"}`)
	signature := sign("topsecret", body)

	tampered := []byte(`{"x_amount":"999"}`)
	assert.ErrorIs(t, v.Verify(tampered, signature), ErrInvalidSignature)
}

func TestVerifyWithoutSecret(t *testing.T) {
	v := NewVerifier("")
	body := []byte(`{}`)

	// no secret means nothing can be trusted
	assert.ErrorIs(t, v.Verify(body, sign("", body)), ErrWebhookDisabled)
}
