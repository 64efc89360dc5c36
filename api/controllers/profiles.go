package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/razorsharp/storefront-backend/api/middleware"
	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/api/validators"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

type profileCreateRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1"`
}

type profileUpdateRequest struct {
	FullName *string     `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Role     *enums.Role `json:"role,omitempty" validate:"omitempty,oneof=SUPERADMIN ADMIN USER"`
}

// ProfileCreate provisions the caller's own profile on first login. The id
// and email always come from the verified token, never the body.
func ProfileCreate(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		profileID, err := claims.ProfileID()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token subject"))
			return
		}

		var payload profileCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Create(r.Context(), profiles.CreateProfileInput{
			ID:       profileID,
			Email:    claims.Email,
			FullName: payload.FullName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, profile)
	}
}

// ProfileDetail returns a profile by path id.
func ProfileDetail(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "profileId"), "profileId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// ProfileLookup resolves a profile by the email query parameter.
func ProfileLookup(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if email == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "query parameter required").WithDetails(map[string]any{"field": "email"}))
			return
		}

		profile, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// ProfileUpdate patches a profile. Role changes are superadmin-only and
// enforced in the service.
func ProfileUpdate(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "profileId"), "profileId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload profileUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Update(r.Context(), middleware.ProfileFromContext(r.Context()), id, profiles.UpdateProfileInput{
			FullName: payload.FullName,
			Role:     payload.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}
