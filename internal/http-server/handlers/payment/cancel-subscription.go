package payment

import (
	"errors"
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/payment"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func CancelSubscription(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		subscriptionID := chi.URLParam(r, "subscription_id")

		err := handler.CancelSubscription(r.Context(), subscriptionID)
		if err != nil {
			if errors.Is(err, payment.ErrSubscriptionNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Subscription not found"))
				return
			}
			logger.Error("failed to cancel subscription", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to cancel subscription"))
			return
		}

		logger.Debug("subscription canceled", slog.String("subscription_id", subscriptionID))
		render.JSON(w, r, response.Ok("Suscripción cancelada exitosamente"))
	}
}
