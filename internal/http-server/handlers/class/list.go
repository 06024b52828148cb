package class

import (
	"log/slog"
	"net/http"
	"sportmaps/entity"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.class")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		query := r.URL.Query()
		skip, limit := pagination(query.Get("skip"), query.Get("limit"))

		filter := entity.ClassFilter{
			SchoolID: query.Get("school_id"),
			Sport:    query.Get("sport"),
			Level:    query.Get("level"),
			Status:   query.Get("status"),
			CoachID:  query.Get("coach_id"),
			Search:   query.Get("search"),
			Skip:     skip,
			Limit:    limit,
		}

		classes, err := handler.ListClasses(r.Context(), filter)
		if err != nil {
			logger.Error("failed to list classes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list classes"))
			return
		}

		logger.Debug("classes listed", slog.Int("count", len(classes)))
		render.JSON(w, r, response.Ok(classes))
	}
}

// pagination clamps skip to >= 0 and limit to 1..500, defaulting to
// 0 and 100.
func pagination(skipParam, limitParam string) (int64, int64) {
	skip := int64(0)
	if v, err := strconv.ParseInt(skipParam, 10, 64); err == nil && v > 0 {
		skip = v
	}
	limit := int64(100)
	if v, err := strconv.ParseInt(limitParam, 10, 64); err == nil && v >= 1 {
		limit = v
	}
	if limit > 500 {
		limit = 500
	}
	return skip, limit
}
