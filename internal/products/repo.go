package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
)

// Repository handles product persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the full catalog ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByStore returns a single store's products ordered by creation time.
func (r *Repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create persists a new product row.
func (r *Repository) Create(ctx context.Context, dto CreateProductDTO) (*models.Product, error) {
	product := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves the full product record.
func (r *Repository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes the product row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
