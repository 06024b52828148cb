package student

import (
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Delete(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.student")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "student_id")

		deleted, err := handler.DeleteStudent(r.Context(), id)
		if err != nil {
			logger.Error("failed to delete student", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to delete student"))
			return
		}
		if !deleted {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Student not found"))
			return
		}

		logger.Debug("student deleted", slog.String("id", id))
		render.JSON(w, r, response.Ok("Student deleted successfully"))
	}
}
