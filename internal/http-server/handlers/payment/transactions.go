package payment

import (
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Transactions returns the payment history of a student, newest
// first. Sandbox students get synthetic history.
func Transactions(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		studentID := chi.URLParam(r, "student_id")

		limit := int64(20)
		if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && v >= 1 {
			limit = v
		}

		transactions, err := handler.StudentTransactions(r.Context(), studentID, limit)
		if err != nil {
			logger.Error("failed to list transactions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list transactions"))
			return
		}

		render.JSON(w, r, response.Ok(transactions))
	}
}
