package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
)

// Repository handles profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to profile operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a profile by the identity-provider subject id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail loads a profile by its unique email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create persists a new profile row.
func (r *Repository) Create(ctx context.Context, dto CreateProfileDTO) (*models.Profile, error) {
	profile := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// Update saves the full profile row.
func (r *Repository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
