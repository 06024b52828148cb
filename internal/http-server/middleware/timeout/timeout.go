package timeout

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds request handling to the given number of seconds by
// attaching a deadline to the request context. Store calls observe the
// deadline through the context.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	duration := time.Duration(seconds) * time.Second

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
