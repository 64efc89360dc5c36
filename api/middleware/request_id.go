package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request an id, honoring one supplied by the caller,
// and echoes it back so clients can correlate logs.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
