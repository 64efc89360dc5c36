package assignments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type stubAssignmentRepo struct {
	rows       []models.AdminStoreAssignment
	createErr  error
	deleted    int64
	deleteErr  error
	lastCreate CreateAssignmentDTO
}

func (s *stubAssignmentRepo) ListByAdmin(_ context.Context, adminID uuid.UUID) ([]models.AdminStoreAssignment, error) {
	var out []models.AdminStoreAssignment
	for _, r := range s.rows {
		if r.AdminID == adminID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAssignmentRepo) Create(_ context.Context, dto CreateAssignmentDTO) (*models.AdminStoreAssignment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastCreate = dto
	return &models.AdminStoreAssignment{
		ID:        uuid.New(),
		AdminID:   dto.AdminID,
		StoreID:   dto.StoreID,
		CreatedAt: time.Now(),
	}, nil
}

func (s *stubAssignmentRepo) DeleteByPair(_ context.Context, _, _ uuid.UUID) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	return s.deleted, nil
}

func superadmin() *profiles.ProfileDTO {
	return &profiles.ProfileDTO{ID: uuid.New(), Email: "root@razorsharp.ng", Role: enums.RoleSuperAdmin}
}

func admin() *profiles.ProfileDTO {
	return &profiles.ProfileDTO{ID: uuid.New(), Email: "admin@razorsharp.ng", Role: enums.RoleAdmin}
}

func hasCode(err error, code pkgerrors.Code) bool {
	typed := pkgerrors.As(err)
	return typed != nil && typed.Code() == code
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

func TestCreateRequiresSuperadmin(t *testing.T) {
	svc, err := NewService(&stubAssignmentRepo{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	input := CreateAssignmentDTO{AdminID: uuid.New(), StoreID: uuid.New()}

	if _, err := svc.Create(context.Background(), nil, input); !hasCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for nil actor, got %v", err)
	}
	if _, err := svc.Create(context.Background(), admin(), input); !hasCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden for admin actor, got %v", err)
	}

	dto, err := svc.Create(context.Background(), superadmin(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.AdminID != input.AdminID || dto.StoreID != input.StoreID {
		t.Fatalf("unexpected assignment %+v", dto)
	}
}

func TestCreateValidatesIDs(t *testing.T) {
	svc, _ := NewService(&stubAssignmentRepo{})

	if _, err := svc.Create(context.Background(), superadmin(), CreateAssignmentDTO{StoreID: uuid.New()}); !hasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for missing admin_id, got %v", err)
	}
	if _, err := svc.Create(context.Background(), superadmin(), CreateAssignmentDTO{AdminID: uuid.New()}); !hasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for missing store_id, got %v", err)
	}
}

func TestCreateMapsMissingReferences(t *testing.T) {
	repo := &stubAssignmentRepo{createErr: errors.New(`insert or update on table "admin_store_assignments" violates foreign key constraint "admin_store_assignments_store_id_fkey"`)}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), superadmin(), CreateAssignmentDTO{AdminID: uuid.New(), StoreID: uuid.New()})
	if !hasCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found for dangling reference, got %v", err)
	}
}

func TestDeleteSweepsPairAndReportsMissing(t *testing.T) {
	repo := &stubAssignmentRepo{deleted: 2}
	svc, _ := NewService(repo)

	adminID, storeID := uuid.New(), uuid.New()
	if err := svc.Delete(context.Background(), superadmin(), adminID, storeID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	repo.deleted = 0
	err := svc.Delete(context.Background(), superadmin(), adminID, storeID)
	if !hasCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found for absent pair, got %v", err)
	}
}

func TestDeleteRequiresSuperadmin(t *testing.T) {
	svc, _ := NewService(&stubAssignmentRepo{deleted: 1})

	err := svc.Delete(context.Background(), admin(), uuid.New(), uuid.New())
	if !hasCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestListForAdminScopesToAdmin(t *testing.T) {
	adminID := uuid.New()
	repo := &stubAssignmentRepo{rows: []models.AdminStoreAssignment{
		{ID: uuid.New(), AdminID: adminID, StoreID: uuid.New()},
		{ID: uuid.New(), AdminID: uuid.New(), StoreID: uuid.New()},
		{ID: uuid.New(), AdminID: adminID, StoreID: uuid.New()},
	}}
	svc, _ := NewService(repo)

	dtos, err := svc.ListForAdmin(context.Background(), adminID)
	if err != nil {
		t.Fatalf("ListForAdmin: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(dtos))
	}
	for _, dto := range dtos {
		if dto.AdminID != adminID {
			t.Fatalf("unexpected admin id %s", dto.AdminID)
		}
	}
}
