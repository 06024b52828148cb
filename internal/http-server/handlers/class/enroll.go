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

// Enroll admits a student into a class. Conflicts (already enrolled,
// class full) come back as 400 with a descriptive message, an unknown
// class as 404.
func Enroll(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		classID := chi.URLParam(r, "class_id")
		studentID := r.URL.Query().Get("student_id")
		studentName := r.URL.Query().Get("student_name")
		if studentID == "" || studentName == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("student_id and student_name are required"))
			return
		}

		record, err := handler.Enroll(r.Context(), classID, studentID, studentName)
		if err != nil {
			switch {
			case errors.Is(err, enrollment.ErrClassNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Class not found"))
			case errors.Is(err, enrollment.ErrAlreadyEnrolled):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Student already enrolled in this class"))
			case errors.Is(err, enrollment.ErrClassFull):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Class is full"))
			default:
				logger.Error("failed to enroll student", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Failed to enroll student"))
			}
			return
		}

		logger.Debug("student enrolled",
			slog.String("class_id", classID),
			slog.String("student_id", studentID),
		)
		render.JSON(w, r, response.Ok(record))
	}
}
