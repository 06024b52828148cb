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

// Students lists the active roster of a class with full student
// records.
func Students(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		classID := chi.URLParam(r, "class_id")

		roster, err := handler.ClassStudents(r.Context(), classID)
		if err != nil {
			logger.Error("failed to list class students", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list class students"))
			return
		}

		logger.Debug("class students listed",
			slog.String("class_id", classID),
			slog.Int("count", len(roster)),
		)
		render.JSON(w, r, response.Ok(roster))
	}
}
