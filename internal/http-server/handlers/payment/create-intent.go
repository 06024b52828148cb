package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sportmaps/entity"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/payment"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func CreateIntent(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req payment.IntentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := entity.Validate(&req); err != nil {
			logger.Debug("validation failed", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		intent, err := handler.CreateIntent(r.Context(), req)
		if err != nil {
			logger.Error("failed to create payment intent", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to create payment intent"))
			return
		}

		logger.Debug("payment intent created", slog.String("intent_id", intent.IntentID))
		render.JSON(w, r, response.Ok(intent))
	}
}
