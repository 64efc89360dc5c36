package stores

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/internal/assignments"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type stubStoreRepo struct {
	stores  map[uuid.UUID]*models.Store
	updated *models.Store
}

func newStubStoreRepo(stores ...*models.Store) *stubStoreRepo {
	repo := &stubStoreRepo{stores: make(map[uuid.UUID]*models.Store)}
	for _, s := range stores {
		repo.stores[s.ID] = s
	}
	return repo
}

func (s *stubStoreRepo) List(_ context.Context) ([]models.Store, error) {
	var out []models.Store
	for _, st := range s.stores {
		out = append(out, *st)
	}
	return out, nil
}

func (s *stubStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Store, error) {
	st, ok := s.stores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *st
	return &cpy, nil
}

func (s *stubStoreRepo) Create(_ context.Context, dto CreateStoreDTO) (*models.Store, error) {
	store := dto.ToModel()
	store.ID = uuid.New()
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt
	s.stores[store.ID] = store
	return store, nil
}

func (s *stubStoreRepo) Update(_ context.Context, store *models.Store) error {
	s.updated = store
	s.stores[store.ID] = store
	return nil
}

type stubLister struct {
	assigned []assignments.AssignmentDTO
}

func (s *stubLister) ListForAdmin(_ context.Context, adminID uuid.UUID) ([]assignments.AssignmentDTO, error) {
	var out []assignments.AssignmentDTO
	for _, a := range s.assigned {
		if a.AdminID == adminID {
			out = append(out, a)
		}
	}
	return out, nil
}

func actorWithRole(role enums.Role) *profiles.ProfileDTO {
	return &profiles.ProfileDTO{ID: uuid.New(), Email: "actor@razorsharp.ng", Role: role}
}

func hasCode(err error, code pkgerrors.Code) bool {
	typed := pkgerrors.As(err)
	return typed != nil && typed.Code() == code
}

func TestCreateStoreSuperadminOnly(t *testing.T) {
	svc, err := NewService(newStubStoreRepo(), &stubLister{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	input := CreateStoreDTO{Name: "Ikeja Flagship", Location: "Lagos"}

	if _, err := svc.Create(context.Background(), nil, input); !hasCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := svc.Create(context.Background(), actorWithRole(enums.RoleAdmin), input); !hasCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden for admin, got %v", err)
	}

	dto, err := svc.Create(context.Background(), actorWithRole(enums.RoleSuperAdmin), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.ID == uuid.Nil {
		t.Fatal("expected server-assigned id")
	}
	if dto.Name != "Ikeja Flagship" || dto.Location != "Lagos" {
		t.Fatalf("unexpected store %+v", dto)
	}
}

func TestCreateStoreValidatesRequiredFields(t *testing.T) {
	svc, _ := NewService(newStubStoreRepo(), &stubLister{})
	superadmin := actorWithRole(enums.RoleSuperAdmin)

	if _, err := svc.Create(context.Background(), superadmin, CreateStoreDTO{Location: "Lagos"}); !hasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), superadmin, CreateStoreDTO{Name: "  ", Location: "Lagos"}); !hasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), superadmin, CreateStoreDTO{Name: "Ikeja"}); !hasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for missing location, got %v", err)
	}
}

func TestUpdateStorePatchPreservesOmittedFields(t *testing.T) {
	address := "12 Allen Avenue"
	store := &models.Store{ID: uuid.New(), Name: "Ikeja Flagship", Location: "Lagos", Address: &address}
	repo := newStubStoreRepo(store)
	svc, _ := NewService(repo, &stubLister{})

	phone := "+2348000000000"
	dto, err := svc.Update(context.Background(), actorWithRole(enums.RoleSuperAdmin), store.ID, UpdateStoreInput{Phone: &phone})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dto.Name != "Ikeja Flagship" || dto.Location != "Lagos" {
		t.Fatalf("patch clobbered omitted fields: %+v", dto)
	}
	if dto.Address == nil || *dto.Address != address {
		t.Fatalf("patch clobbered address: %+v", dto.Address)
	}
	if dto.Phone == nil || *dto.Phone != phone {
		t.Fatalf("expected phone set, got %+v", dto.Phone)
	}
}

func TestUpdateStoreAdminNeedsAssignment(t *testing.T) {
	store := &models.Store{ID: uuid.New(), Name: "Ikeja Flagship", Location: "Lagos"}
	repo := newStubStoreRepo(store)
	admin := actorWithRole(enums.RoleAdmin)
	name := "Ikeja Flagship II"

	svc, _ := NewService(repo, &stubLister{})
	if _, err := svc.Update(context.Background(), admin, store.ID, UpdateStoreInput{Name: &name}); !hasCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden without assignment, got %v", err)
	}

	lister := &stubLister{assigned: []assignments.AssignmentDTO{
		{ID: uuid.New(), AdminID: admin.ID, StoreID: store.ID},
	}}
	svc, _ = NewService(repo, lister)
	dto, err := svc.Update(context.Background(), admin, store.ID, UpdateStoreInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dto.Name != name {
		t.Fatalf("expected name updated, got %q", dto.Name)
	}
}

func TestUpdateStoreUserDenied(t *testing.T) {
	store := &models.Store{ID: uuid.New(), Name: "Ikeja Flagship", Location: "Lagos"}
	svc, _ := NewService(newStubStoreRepo(store), &stubLister{})
	name := "Renamed"

	_, err := svc.Update(context.Background(), actorWithRole(enums.RoleUser), store.ID, UpdateStoreInput{Name: &name})
	if !hasCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden for user, got %v", err)
	}
}

func TestUpdateStoreRejectsBlankName(t *testing.T) {
	store := &models.Store{ID: uuid.New(), Name: "Ikeja Flagship", Location: "Lagos"}
	svc, _ := NewService(newStubStoreRepo(store), &stubLister{})
	blank := "  "

	_, err := svc.Update(context.Background(), actorWithRole(enums.RoleSuperAdmin), store.ID, UpdateStoreInput{Name: &blank})
	if !hasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(newStubStoreRepo(), &stubLister{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !hasCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
