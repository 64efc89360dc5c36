package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/razorsharp/storefront-backend/api/middleware"
	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/api/validators"
	"github.com/razorsharp/storefront-backend/internal/stores"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

// StoreList returns every store for the public storefront.
func StoreList(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// StoreDetail returns a single store by path id.
func StoreDetail(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "storeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, store)
	}
}

// StoreCreate opens a new store location.
func StoreCreate(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store service unavailable"))
			return
		}

		var payload stores.CreateStoreDTO
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := svc.Create(r.Context(), middleware.ProfileFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, store)
	}
}

// StoreUpdate patches the mutable store fields.
func StoreUpdate(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "storeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload stores.UpdateStoreInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := svc.Update(r.Context(), middleware.ProfileFromContext(r.Context()), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, store)
	}
}
