package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/razorsharp/storefront-backend/api/middleware"
	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/api/validators"
	"github.com/razorsharp/storefront-backend/internal/products"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

// ProductList returns the catalog narrowed by the store_id and q query
// parameters. store_id accepts the "all" sentinel.
func ProductList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		filter := products.ListFilter{
			StoreID: r.URL.Query().Get("store_id"),
			Term:    r.URL.Query().Get("q"),
		}

		list, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ProductDetail returns a single product by path id.
func ProductDetail(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ProductCreate adds a product to a managed store.
func ProductCreate(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload products.CreateProductDTO
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), middleware.ProfileFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// ProductUpdate patches the mutable product fields.
func ProductUpdate(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload products.UpdateProductInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), middleware.ProfileFromContext(r.Context()), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ProductDelete removes a product from a managed store.
func ProductDelete(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), middleware.ProfileFromContext(r.Context()), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}
