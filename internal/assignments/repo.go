package assignments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
)

// Repository handles admin-store assignment persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to assignment operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByAdmin returns every assignment held by the given admin profile.
func (r *Repository) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.AdminStoreAssignment, error) {
	var rows []models.AdminStoreAssignment
	if err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create persists a new assignment row.
func (r *Repository) Create(ctx context.Context, dto CreateAssignmentDTO) (*models.AdminStoreAssignment, error) {
	assignment := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteByPair removes every assignment matching the (admin, store) pair and
// reports how many rows went away. Duplicates are swept in one call.
func (r *Repository) DeleteByPair(ctx context.Context, adminID, storeID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("admin_id = ? AND store_id = ?", adminID, storeID).
		Delete(&models.AdminStoreAssignment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
