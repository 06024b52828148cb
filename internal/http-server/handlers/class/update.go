package class

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sportmaps/entity"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Update(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "class_id")

		var req entity.ClassUpdate
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

		class, err := handler.UpdateClass(r.Context(), id, req)
		if err != nil {
			logger.Error("failed to update class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to update class"))
			return
		}
		if class == nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Class not found"))
			return
		}

		logger.Debug("class updated", slog.String("id", id))
		render.JSON(w, r, response.Ok(class))
	}
}
