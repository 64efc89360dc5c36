package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/internal/access"
	"github.com/razorsharp/storefront-backend/internal/assignments"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

type storeRepository interface {
	List(ctx context.Context) ([]models.Store, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	Create(ctx context.Context, dto CreateStoreDTO) (*models.Store, error)
	Update(ctx context.Context, store *models.Store) error
}

type assignmentLister interface {
	ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]assignments.AssignmentDTO, error)
}

// Service exposes store operations. Reads are public; mutations are gated on
// the caller's role and assignments.
type Service interface {
	List(ctx context.Context) ([]StoreDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*StoreDTO, error)
	Create(ctx context.Context, actor *profiles.ProfileDTO, input CreateStoreDTO) (*StoreDTO, error)
	Update(ctx context.Context, actor *profiles.ProfileDTO, id uuid.UUID, input UpdateStoreInput) (*StoreDTO, error)
}

// UpdateStoreInput captures the patchable store fields. Nil means untouched.
type UpdateStoreInput struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

type service struct {
	repo        storeRepository
	assignments assignmentLister
}

// NewService builds a store service with the provided dependencies.
func NewService(repo storeRepository, lister assignmentLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if lister == nil {
		return nil, fmt.Errorf("assignment lister required")
	}
	return &service{repo: repo, assignments: lister}, nil
}

func (s *service) List(ctx context.Context) ([]StoreDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stores")
	}
	return FromModels(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*StoreDTO, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	return FromModel(store), nil
}

// Create registers a new store. Only superadmins open stores; admins operate
// stores they are assigned to afterwards.
func (s *service) Create(ctx context.Context, actor *profiles.ProfileDTO, input CreateStoreDTO) (*StoreDTO, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}
	if actor.Role != enums.RoleSuperAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "superadmin role required")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Location == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location is required")
	}

	store, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create store")
	}
	return FromModel(store), nil
}

func (s *service) Update(ctx context.Context, actor *profiles.ProfileDTO, id uuid.UUID, input UpdateStoreInput) (*StoreDTO, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}

	allowed, err := s.canManage(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "store not managed by caller")
	}

	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		store.Name = name
	}
	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if location == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "location cannot be empty")
		}
		store.Location = location
	}
	if input.Address != nil {
		cpy := *input.Address
		store.Address = &cpy
	}
	if input.Phone != nil {
		cpy := *input.Phone
		store.Phone = &cpy
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update store")
	}
	return FromModel(store), nil
}

// canManage evaluates the access predicate, loading the actor's assignments
// only when the role actually consults them.
func (s *service) canManage(ctx context.Context, actor *profiles.ProfileDTO, storeID uuid.UUID) (bool, error) {
	var assigned []assignments.AssignmentDTO
	if actor != nil && actor.Role == enums.RoleAdmin {
		var err error
		assigned, err = s.assignments.ListForAdmin(ctx, actor.ID)
		if err != nil {
			return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load assignments")
		}
	}
	return access.CanManageStore(actor, assigned, storeID), nil
}
