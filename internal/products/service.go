package products

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
	"github.com/razorsharp/storefront-backend/internal/stores"
	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/types"
)

type productRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, dto CreateProductDTO) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type storeGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*stores.StoreDTO, error)
}

type assignmentLister interface {
	ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]assignments.AssignmentDTO, error)
}

// ListFilter carries the catalog query parameters. StoreID holds either a
// store id or the "all" sentinel; Term is a free-text search.
type ListFilter struct {
	StoreID string
	Term    string
}

// UpdateProductInput captures the patchable product fields. Nil means
// untouched; the store a product belongs to is immutable.
type UpdateProductInput struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *types.Price `json:"price"`
	ImageURL    *string      `json:"image_url"`
	Category    *string      `json:"category"`
	Size        *string      `json:"size"`
	Color       *string      `json:"color"`
	InStock     *bool        `json:"in_stock"`
}

// Service exposes catalog operations. Reads are public; mutations are gated
// on the caller's role and store assignments.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ProductDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, actor *profiles.ProfileDTO, input CreateProductDTO) (*ProductDTO, error)
	Update(ctx context.Context, actor *profiles.ProfileDTO, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, actor *profiles.ProfileDTO, id uuid.UUID) error
}

type service struct {
	repo        productRepository
	stores      storeGetter
	assignments assignmentLister
}

// NewService builds a product service with the provided dependencies.
func NewService(repo productRepository, storeGetter storeGetter, lister assignmentLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if storeGetter == nil {
		return nil, fmt.Errorf("store getter required")
	}
	if lister == nil {
		return nil, fmt.Errorf("assignment lister required")
	}
	return &service{repo: repo, stores: storeGetter, assignments: lister}, nil
}

// List returns the catalog narrowed by the filter. A parseable store id
// scopes the database query; the search term is applied in memory.
func (s *service) List(ctx context.Context, filter ListFilter) ([]ProductDTO, error) {
	storeID := strings.TrimSpace(filter.StoreID)

	var (
		rows []models.Product
		err  error
	)
	if storeID != "" && storeID != StoreFilterAll {
		parsed, parseErr := uuid.Parse(storeID)
		if parseErr != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid store_id")
		}
		rows, err = s.repo.ListByStore(ctx, parsed)
	} else {
		rows, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	return FilterProducts(FromModels(rows), StoreFilterAll, filter.Term), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return FromModel(product), nil
}

func (s *service) Create(ctx context.Context, actor *profiles.ProfileDTO, input CreateProductDTO) (*ProductDTO, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.StoreID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store_id is required")
	}
	if input.Price == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price is required")
	}

	// The target store must exist before the access check so a missing store
	// surfaces as 404 rather than 403.
	if _, err := s.stores.GetByID(ctx, input.StoreID); err != nil {
		return nil, err
	}

	allowed, err := s.canManage(ctx, actor, input.StoreID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "store not managed by caller")
	}

	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return FromModel(product), nil
}

func (s *service) Update(ctx context.Context, actor *profiles.ProfileDTO, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	allowed, err := s.canManage(ctx, actor, product.StoreID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "store not managed by caller")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = copyString(input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = copyString(input.ImageURL)
	}
	if input.Category != nil {
		product.Category = copyString(input.Category)
	}
	if input.Size != nil {
		product.Size = copyString(input.Size)
	}
	if input.Color != nil {
		product.Color = copyString(input.Color)
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return FromModel(product), nil
}

func (s *service) Delete(ctx context.Context, actor *profiles.ProfileDTO, id uuid.UUID) error {
	if actor == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "profile required")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	allowed, err := s.canManage(ctx, actor, product.StoreID)
	if err != nil {
		return err
	}
	if !allowed {
		return pkgerrors.New(pkgerrors.CodeForbidden, "store not managed by caller")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

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
