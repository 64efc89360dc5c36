package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/internal/assignments"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type stubAssignmentService struct {
	listed      uuid.UUID
	list        []assignments.AssignmentDTO
	created     *assignments.AssignmentDTO
	deletedPair [2]uuid.UUID
	deleteErr   error
}

func (s *stubAssignmentService) ListForAdmin(_ context.Context, adminID uuid.UUID) ([]assignments.AssignmentDTO, error) {
	s.listed = adminID
	return s.list, nil
}

func (s *stubAssignmentService) Create(_ context.Context, actor *profiles.ProfileDTO, input assignments.CreateAssignmentDTO) (*assignments.AssignmentDTO, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}
	if actor.Role != enums.RoleSuperAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "superadmin role required")
	}
	s.created = &assignments.AssignmentDTO{ID: uuid.New(), AdminID: input.AdminID, StoreID: input.StoreID}
	return s.created, nil
}

func (s *stubAssignmentService) Delete(_ context.Context, _ *profiles.ProfileDTO, adminID, storeID uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedPair = [2]uuid.UUID{adminID, storeID}
	return nil
}

func TestAssignmentListRequiresAdminID(t *testing.T) {
	svc := &stubAssignmentService{}

	resp := routeRequest(t, AssignmentList(svc, nil), http.MethodGet, "/api/assignments", "", "", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without admin_id, got %d", resp.Code)
	}

	adminID := uuid.New()
	resp = routeRequest(t, AssignmentList(svc, nil), http.MethodGet, "/api/assignments?admin_id="+adminID.String(), "", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if svc.listed != adminID {
		t.Fatalf("expected admin id forwarded, got %s", svc.listed)
	}
}

func TestAssignmentCreateForwardsPair(t *testing.T) {
	svc := &stubAssignmentService{}
	adminID, storeID := uuid.NewString(), uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/api/assignments",
		strings.NewReader(`{"admin_id":"`+adminID+`","store_id":"`+storeID+`"}`))
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	AssignmentCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.created == nil || svc.created.AdminID.String() != adminID || svc.created.StoreID.String() != storeID {
		t.Fatalf("unexpected assignment %+v", svc.created)
	}
}

func TestAssignmentCreateValidatesBody(t *testing.T) {
	svc := &stubAssignmentService{}

	req := httptest.NewRequest(http.MethodPost, "/api/assignments", strings.NewReader(`{"admin_id":"not-a-uuid","store_id":"`+uuid.NewString()+`"}`))
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	AssignmentCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed admin_id, got %d", resp.Code)
	}
}

func TestAssignmentCreateForbiddenForAdmin(t *testing.T) {
	svc := &stubAssignmentService{}

	req := httptest.NewRequest(http.MethodPost, "/api/assignments",
		strings.NewReader(`{"admin_id":"`+uuid.NewString()+`","store_id":"`+uuid.NewString()+`"}`))
	req = withActor(req, enums.RoleAdmin)
	resp := httptest.NewRecorder()
	AssignmentCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestAssignmentDeleteUsesQueryPair(t *testing.T) {
	svc := &stubAssignmentService{}
	adminID, storeID := uuid.New(), uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/assignments?admin_id="+adminID.String()+"&store_id="+storeID.String(), nil)
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	AssignmentDelete(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if svc.deletedPair[0] != adminID || svc.deletedPair[1] != storeID {
		t.Fatalf("unexpected pair %v", svc.deletedPair)
	}
}

func TestAssignmentDeleteMissingPair(t *testing.T) {
	svc := &stubAssignmentService{deleteErr: pkgerrors.New(pkgerrors.CodeNotFound, "assignment not found")}
	req := httptest.NewRequest(http.MethodDelete, "/api/assignments?admin_id="+uuid.NewString()+"&store_id="+uuid.NewString(), nil)
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	AssignmentDelete(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
