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

// SchoolTransactions returns the recent ledger of a school with
// totals and approval rate.
func SchoolTransactions(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.payment")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := chi.URLParam(r, "school_id")

		days := 30
		if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v >= 1 {
			days = v
		}

		ledger, err := handler.SchoolTransactions(r.Context(), schoolID, days)
		if err != nil {
			logger.Error("failed to list school transactions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list school transactions"))
			return
		}

		render.JSON(w, r, response.Ok(ledger))
	}
}
