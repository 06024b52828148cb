package recommend

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sportmaps/entity"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/recommend"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Generate produces personalized activity recommendations for a user
// profile. Answers 503 when the assistant is not configured.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.recommend")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req struct {
			UserProfile recommend.UserProfile `json:"user_profile"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := entity.Validate(&req.UserProfile); err != nil {
			logger.Debug("validation failed", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		recommendations, err := handler.Recommend(r.Context(), req.UserProfile)
		if err != nil {
			if errors.Is(err, recommend.ErrNotConfigured) {
				logger.Warn("recommendation service not available")
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("Recommendations not available"))
				return
			}
			logger.Error("failed to generate recommendations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to generate recommendations"))
			return
		}

		logger.Debug("recommendations generated", slog.Int("count", len(recommendations)))
		render.JSON(w, r, response.Ok(recommendations))
	}
}
