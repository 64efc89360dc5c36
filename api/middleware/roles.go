package middleware

import (
	"net/http"

	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/internal/access"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

// RequireAdminArea rejects callers whose profile cannot enter the admin
// dashboard. Store-level checks still run in the services behind it.
func RequireAdminArea(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := ProfileFromContext(r.Context())
			if profile == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required"))
				return
			}
			if !access.CanAccessAdminArea(profile) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
