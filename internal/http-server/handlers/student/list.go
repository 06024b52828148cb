package student

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
		mod := sl.Module("http.handlers.student")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		query := r.URL.Query()
		skip, limit := pagination(query.Get("skip"), query.Get("limit"))

		filter := entity.StudentFilter{
			SchoolID: query.Get("school_id"),
			Status:   query.Get("status"),
			Grade:    query.Get("grade"),
			Search:   query.Get("search"),
			Skip:     skip,
			Limit:    limit,
		}

		students, err := handler.ListStudents(r.Context(), filter)
		if err != nil {
			logger.Error("failed to list students", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list students"))
			return
		}

		logger.Debug("students listed", slog.Int("count", len(students)))
		render.JSON(w, r, response.Ok(students))
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
