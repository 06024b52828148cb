package class

import (
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "class_id")

		class, err := handler.GetClass(r.Context(), id)
		if err != nil {
			logger.Error("failed to get class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get class"))
			return
		}
		if class == nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Class not found"))
			return
		}

		render.JSON(w, r, response.Ok(class))
	}
}
