package class

import (
	"errors"
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/enrollment"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Unenroll drops the active enrollment of a (class, student) pair.
// Repeated calls keep answering 404 since the record is no longer
// active.
func Unenroll(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		classID := chi.URLParam(r, "class_id")
		studentID := chi.URLParam(r, "student_id")

		err := handler.Unenroll(r.Context(), classID, studentID)
		if err != nil {
			if errors.Is(err, enrollment.ErrEnrollmentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Enrollment not found"))
				return
			}
			logger.Error("failed to unenroll student", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to unenroll student"))
			return
		}

		logger.Debug("student unenrolled",
			slog.String("class_id", classID),
			slog.String("student_id", studentID),
		)
		render.JSON(w, r, response.Ok("Student unenrolled successfully"))
	}
}
