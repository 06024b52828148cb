package class

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sportmaps/entity"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.Class
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := entity.Validate(entity.NewClass(req)); err != nil {
			logger.Debug("validation failed", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		class, err := handler.CreateClass(r.Context(), req)
		if err != nil {
			logger.Error("failed to create class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to create class"))
			return
		}

		logger.Debug("class created", slog.String("id", class.ID))
		render.JSON(w, r, response.Ok(class))
	}
}
