package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/db"
	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type assignmentRepository interface {
	ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.AdminStoreAssignment, error)
	Create(ctx context.Context, dto CreateAssignmentDTO) (*models.AdminStoreAssignment, error)
	DeleteByPair(ctx context.Context, adminID, storeID uuid.UUID) (int64, error)
}

// Service manages which stores an admin profile may operate.
type Service interface {
	ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]AssignmentDTO, error)
	Create(ctx context.Context, actor *profiles.ProfileDTO, input CreateAssignmentDTO) (*AssignmentDTO, error)
	Delete(ctx context.Context, actor *profiles.ProfileDTO, adminID, storeID uuid.UUID) error
}

type service struct {
	repo assignmentRepository
}

// NewService builds an assignment service with the provided repository.
func NewService(repo assignmentRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("assignment repository required")
	}
	return &service{repo: repo}, nil
}

// ListForAdmin returns the assignments held by the given admin. Loading a
// profile's own assignment set is not gated; mutation is.
func (s *service) ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]AssignmentDTO, error) {
	if adminID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin id is required")
	}
	rows, err := s.repo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list assignments")
	}
	return FromModels(rows), nil
}

func (s *service) Create(ctx context.Context, actor *profiles.ProfileDTO, input CreateAssignmentDTO) (*AssignmentDTO, error) {
	if err := requireSuperadmin(actor); err != nil {
		return nil, err
	}
	if input.AdminID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin_id is required")
	}
	if input.StoreID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store_id is required")
	}

	assignment, err := s.repo.Create(ctx, input)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "admin or store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create assignment")
	}
	return FromModel(assignment), nil
}

// Delete removes the (admin, store) pair. Duplicate rows for the same pair
// all go in one call; zero affected rows means the pair never existed.
func (s *service) Delete(ctx context.Context, actor *profiles.ProfileDTO, adminID, storeID uuid.UUID) error {
	if err := requireSuperadmin(actor); err != nil {
		return err
	}
	if adminID == uuid.Nil || storeID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "admin_id and store_id are required")
	}

	affected, err := s.repo.DeleteByPair(ctx, adminID, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "assignment not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete assignment")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "assignment not found")
	}
	return nil
}

func requireSuperadmin(actor *profiles.ProfileDTO) error {
	if actor == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}
	if actor.Role != enums.RoleSuperAdmin {
		return pkgerrors.New(pkgerrors.CodeForbidden, "superadmin role required")
	}
	return nil
}
