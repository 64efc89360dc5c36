package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/api/middleware"
	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/internal/stores"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type stubStoreService struct {
	list      []stores.StoreDTO
	byID      map[uuid.UUID]*stores.StoreDTO
	created   *stores.StoreDTO
	createErr error
	updateErr error
}

func (s *stubStoreService) List(_ context.Context) ([]stores.StoreDTO, error) {
	return s.list, nil
}

func (s *stubStoreService) GetByID(_ context.Context, id uuid.UUID) (*stores.StoreDTO, error) {
	if store, ok := s.byID[id]; ok {
		return store, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
}

func (s *stubStoreService) Create(_ context.Context, actor *profiles.ProfileDTO, input stores.CreateStoreDTO) (*stores.StoreDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}
	s.created = &stores.StoreDTO{ID: uuid.New(), Name: input.Name, Location: input.Location}
	return s.created, nil
}

func (s *stubStoreService) Update(_ context.Context, _ *profiles.ProfileDTO, id uuid.UUID, input stores.UpdateStoreInput) (*stores.StoreDTO, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	store, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
	}
	if input.Name != nil {
		store.Name = *input.Name
	}
	return store, nil
}

func routeRequest(t *testing.T, handler http.HandlerFunc, method, target, param, value string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if param != "" {
		rc := chi.NewRouteContext()
		rc.URLParams.Add(param, value)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
	}
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func withActor(req *http.Request, role enums.Role) *http.Request {
	profile := &profiles.ProfileDTO{ID: uuid.New(), Email: "actor@razorsharp.ng", Role: role}
	return req.WithContext(middleware.WithProfile(req.Context(), profile))
}

func TestStoreListReturnsEnvelope(t *testing.T) {
	svc := &stubStoreService{list: []stores.StoreDTO{
		{ID: uuid.New(), Name: "Ikeja Flagship", Location: "Lagos"},
	}}

	resp := routeRequest(t, StoreList(svc, nil), http.MethodGet, "/api/stores", "", "", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body responses.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	items, ok := body.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected payload %v", body.Data)
	}
}

func TestStoreDetailValidatesPathID(t *testing.T) {
	svc := &stubStoreService{}

	resp := routeRequest(t, StoreDetail(svc, nil), http.MethodGet, "/api/stores/nope", "storeId", "nope", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", resp.Code)
	}

	resp = routeRequest(t, StoreDetail(svc, nil), http.MethodGet, "/api/stores/"+uuid.NewString(), "storeId", uuid.NewString(), "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown store, got %d", resp.Code)
	}
}

func TestStoreCreateReturns201(t *testing.T) {
	svc := &stubStoreService{}
	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(`{"name":"Ikeja Flagship","location":"Lagos"}`))
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	StoreCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.created == nil || svc.created.Name != "Ikeja Flagship" {
		t.Fatalf("service did not receive payload: %+v", svc.created)
	}
}

func TestStoreCreateRejectsUnknownFields(t *testing.T) {
	svc := &stubStoreService{}
	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(`{"name":"X","location":"Y","bogus":true}`))
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	StoreCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.Code)
	}
}

func TestStoreCreateRequiresFields(t *testing.T) {
	svc := &stubStoreService{}
	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(`{"name":"X"}`))
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	StoreCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing location, got %d", resp.Code)
	}
}

func TestStoreUpdatePatchesByID(t *testing.T) {
	storeID := uuid.New()
	svc := &stubStoreService{byID: map[uuid.UUID]*stores.StoreDTO{
		storeID: {ID: storeID, Name: "Old", Location: "Lagos"},
	}}

	req := httptest.NewRequest(http.MethodPut, "/api/stores/"+storeID.String(), strings.NewReader(`{"name":"New"}`))
	rc := chi.NewRouteContext()
	rc.URLParams.Add("storeId", storeID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
	req = withActor(req, enums.RoleSuperAdmin)
	resp := httptest.NewRecorder()
	StoreUpdate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.byID[storeID].Name != "New" {
		t.Fatalf("expected name patched, got %q", svc.byID[storeID].Name)
	}
}
