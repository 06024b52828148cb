package payment

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/payment"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Webhook receives gateway payment notifications. The signature of
// the raw body is verified before the payload is even parsed; a
// deployment without a configured secret rejects every delivery.
func Webhook(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read webhook body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to read request"))
			return
		}

		signature := r.Header.Get("X-Signature")
		if err = handler.VerifyWebhook(body, signature); err != nil {
			switch {
			case errors.Is(err, payment.ErrWebhookDisabled):
				logger.Warn("webhook delivery rejected, no secret configured")
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("Webhook not configured"))
			case errors.Is(err, payment.ErrInvalidSignature):
				logger.Warn("webhook signature mismatch")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid signature"))
			default:
				logger.Error("webhook verification failed", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Verification failed"))
			}
			return
		}

		var payload payment.WebhookPayload
		if err = json.Unmarshal(body, &payload); err != nil {
			logger.Error("failed to decode webhook payload", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid webhook payload"))
			return
		}

		logger.Info("webhook received",
			slog.String("reference", payload.RefPayco),
			slog.Int("cod_response", payload.CodResponse),
		)
		render.JSON(w, r, response.Ok("Webhook received"))
	}
}
