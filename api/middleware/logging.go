package middleware

import (
	"net/http"
	"time"

	"github.com/razorsharp/storefront-backend/pkg/logger"
)

// Logging emits request.start and request.complete entries with method,
// path, status, and latency.
func Logging(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if logg == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := logg.WithFields(r.Context(), map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			logg.Info(ctx, "request.start")

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			ctx = logg.WithFields(ctx, map[string]any{
				"status":      status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
			logg.Info(ctx, "request.complete")
		}
		return http.HandlerFunc(fn)
	}
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
