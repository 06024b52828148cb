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

func Stats(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := chi.URLParam(r, "school_id")

		stats, err := handler.ClassStats(r.Context(), schoolID)
		if err != nil {
			logger.Error("failed to get class stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get class stats"))
			return
		}

		render.JSON(w, r, response.Ok(stats))
	}
}
