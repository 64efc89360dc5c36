package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS applies the storefront origin policy. The wildcard stays off because
// the admin dashboard sends credentials.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"https://storefront.razorsharp.ng",
			"https://admin.storefront.razorsharp.ng",
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
