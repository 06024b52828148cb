package student

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/roster"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// 10 MB cap on roster uploads
const maxUploadSize = 10 << 20

// BulkImport ingests a CSV roster for one school. Row-level failures
// come back inside the result; only structural failures produce an
// error response.
func BulkImport(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.student")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := r.URL.Query().Get("school_id")
		if schoolID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("school_id is required"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			logger.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid file upload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.Error("missing file field", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("File is required"))
			return
		}
		defer file.Close()

		payload, err := io.ReadAll(file)
		if err != nil {
			logger.Error("failed to read upload", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error processing file"))
			return
		}

		result, err := handler.ImportRoster(r.Context(), header.Filename, payload, schoolID)
		if err != nil {
			if errors.Is(err, roster.ErrUnsupportedFile) || errors.Is(err, roster.ErrInvalidEncoding) {
				logger.Debug("rejected roster upload", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			logger.Error("failed to import roster", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error processing file"))
			return
		}

		logger.Info("roster imported",
			slog.String("school_id", schoolID),
			slog.Int("success", result.Success),
			slog.Int("failed", result.Failed),
		)
		render.JSON(w, r, response.Ok(result))
	}
}
