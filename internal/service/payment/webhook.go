package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Webhook failures.
var (
	ErrWebhookDisabled  = errors.New("webhook secret not configured")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Verifier checks gateway webhook signatures: hex-encoded HMAC-SHA256
// of the raw request body keyed with the shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return &Verifier{}
	}
	return &Verifier{secret: []byte(secret)}
}

// Verify compares the presented signature against the body's expected
// digest in constant time. A verifier without a secret rejects
// everything with ErrWebhookDisabled rather than silently accepting.
func (v *Verifier) Verify(body []byte, signature string) error {
	if len(v.secret) == 0 {
		return ErrWebhookDisabled
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// WebhookPayload is the gateway notification body.
type WebhookPayload struct {
	RefPayco      string `json:"x_ref_payco"`
	TransactionID string `json:"x_transaction_id"`
	Amount        string `json:"x_amount"`
	CurrencyCode  string `json:"x_currency_code"`
	CodResponse   int    `json:"x_cod_response"` // 1=success 2=rejected 3=pending 4=failed
	Response      string `json:"x_response"`
	ApprovalCode  string `json:"x_approval_code,omitempty"`
	StudentID     string `json:"x_extra1,omitempty"`
	ProgramID     string `json:"x_extra2,omitempty"`
}
