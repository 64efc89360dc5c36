package assignments

import (
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
)

// AssignmentDTO exposes an admin-store assignment in API responses.
type AssignmentDTO struct {
	ID        uuid.UUID `json:"id"`
	AdminID   uuid.UUID `json:"admin_id"`
	StoreID   uuid.UUID `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAssignmentDTO holds creation-time data for a new assignment.
type CreateAssignmentDTO struct {
	AdminID uuid.UUID
	StoreID uuid.UUID
}

// FromModel maps the persisted assignment into a DTO.
func FromModel(m *models.AdminStoreAssignment) *AssignmentDTO {
	if m == nil {
		return nil
	}
	return &AssignmentDTO{
		ID:        m.ID,
		AdminID:   m.AdminID,
		StoreID:   m.StoreID,
		CreatedAt: m.CreatedAt,
	}
}

// FromModels maps a slice of persisted assignments.
func FromModels(ms []models.AdminStoreAssignment) []AssignmentDTO {
	dtos := make([]AssignmentDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// ToModel prepares the GORM model from creation data.
func (c CreateAssignmentDTO) ToModel() *models.AdminStoreAssignment {
	return &models.AdminStoreAssignment{
		AdminID: c.AdminID,
		StoreID: c.StoreID,
	}
}
