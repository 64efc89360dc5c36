package stores

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
)

// Repository handles store persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to store operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all stores ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]models.Store, error) {
	var rows []models.Store
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single store.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Create persists a new store row.
func (r *Repository) Create(ctx context.Context, dto CreateStoreDTO) (*models.Store, error) {
	store := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

// Update saves the full store record.
func (r *Repository) Update(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}
