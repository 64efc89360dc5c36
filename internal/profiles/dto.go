package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/enums"
)

// ProfileDTO exposes profile data in API responses.
type ProfileDTO struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name,omitempty"`
	Role      enums.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateProfileDTO holds creation-time data. The id comes from the identity
// provider, never generated here.
type CreateProfileDTO struct {
	ID       uuid.UUID
	Email    string
	FullName *string
	Role     *enums.Role
}

// FromModel maps the persisted profile into a DTO.
func FromModel(m *models.Profile) *ProfileDTO {
	if m == nil {
		return nil
	}
	dto := &ProfileDTO{
		ID:        m.ID,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.FullName != nil {
		cpy := *m.FullName
		dto.FullName = &cpy
	}
	return dto
}

// ToModel prepares the GORM model from creation data, supplying defaults.
func (c CreateProfileDTO) ToModel() *models.Profile {
	model := &models.Profile{
		ID:       c.ID,
		Email:    c.Email,
		FullName: c.FullName,
		Role:     enums.RoleUser,
	}
	if c.Role != nil {
		model.Role = *c.Role
	}
	return model
}
