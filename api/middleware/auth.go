package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	pkgauth "github.com/razorsharp/storefront-backend/pkg/auth"
	"github.com/razorsharp/storefront-backend/pkg/config"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

// ProfileLoader resolves the profile behind a verified token subject.
type ProfileLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*profiles.ProfileDTO, error)
}

// Auth verifies the bearer token from the identity provider and seeds the
// request context with the claims and, when one exists, the caller's profile.
// A verified token without a profile still passes: first-login provisioning
// creates the profile afterwards.
func Auth(cfg config.JWTConfig, loader ProfileLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseIdentityToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			profileID, err := claims.ProfileID()
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token subject"))
				return
			}

			ctx := WithClaims(r.Context(), claims)

			var profile *profiles.ProfileDTO
			if loader != nil {
				profile, err = loader.GetByID(ctx, profileID)
				if err != nil {
					if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
						responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile"))
						return
					}
					profile = nil
				}
			}
			if profile != nil {
				ctx = WithProfile(ctx, profile)
			}

			if logg != nil {
				ctx = logg.WithProfileID(ctx, profileID.String())
				if profile != nil {
					ctx = logg.WithRole(ctx, profile.Role.String())
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
