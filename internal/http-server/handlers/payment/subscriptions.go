package payment

import (
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Subscriptions returns the active recurring charges of a student.
func Subscriptions(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		studentID := chi.URLParam(r, "student_id")

		subscriptions, err := handler.StudentSubscriptions(r.Context(), studentID)
		if err != nil {
			logger.Error("failed to list subscriptions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list subscriptions"))
			return
		}

		render.JSON(w, r, response.Ok(subscriptions))
	}
}
