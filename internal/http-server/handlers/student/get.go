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

func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.student")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "student_id")

		student, err := handler.GetStudent(r.Context(), id)
		if err != nil {
			logger.Error("failed to get student", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get student"))
			return
		}
		if student == nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Student not found"))
			return
		}

		render.JSON(w, r, response.Ok(student))
	}
}
