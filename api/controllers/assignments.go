package controllers

import (
	"net/http"

	"github.com/razorsharp/storefront-backend/api/middleware"
	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/api/validators"
	"github.com/razorsharp/storefront-backend/internal/assignments"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

type assignmentCreateRequest struct {
	AdminID string `json:"admin_id" validate:"required,uuid"`
	StoreID string `json:"store_id" validate:"required,uuid"`
}

// AssignmentList returns the stores assigned to the admin_id query parameter.
func AssignmentList(svc assignments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assignment service unavailable"))
			return
		}

		adminID, err := validators.ParseQueryUUID(r, "admin_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListForAdmin(r.Context(), adminID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// AssignmentCreate grants an admin a store.
func AssignmentCreate(svc assignments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assignment service unavailable"))
			return
		}

		var payload assignmentCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		adminID, err := validators.ParsePathUUID(payload.AdminID, "admin_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		storeID, err := validators.ParsePathUUID(payload.StoreID, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		assignment, err := svc.Create(r.Context(), middleware.ProfileFromContext(r.Context()), assignments.CreateAssignmentDTO{
			AdminID: adminID,
			StoreID: storeID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, assignment)
	}
}

// AssignmentDelete revokes the (admin_id, store_id) pair from the query.
func AssignmentDelete(svc assignments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assignment service unavailable"))
			return
		}

		adminID, err := validators.ParseQueryUUID(r, "admin_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		storeID, err := validators.ParseQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), middleware.ProfileFromContext(r.Context()), adminID, storeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}
