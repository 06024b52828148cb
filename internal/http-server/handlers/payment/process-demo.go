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

// ProcessDemo simulates gateway processing of a pending intent. In a
// production deployment this path is replaced by the gateway webhook.
func ProcessDemo(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		intentID := chi.URLParam(r, "intent_id")
		simulateFailure := r.URL.Query().Get("simulate_failure") == "true"

		outcome, err := handler.ProcessDemoPayment(r.Context(), intentID, simulateFailure)
		if err != nil {
			if errors.Is(err, payment.ErrIntentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Payment intent not found"))
				return
			}
			logger.Error("failed to process demo payment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to process payment"))
			return
		}

		logger.Debug("demo payment processed",
			slog.String("intent_id", intentID),
			slog.String("status", outcome.Status),
		)
		render.JSON(w, r, response.Ok(outcome))
	}
}
