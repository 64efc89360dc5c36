package stores

import (
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
)

// StoreDTO exposes store data in API responses.
type StoreDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStoreDTO holds creation-time data for a new store.
type CreateStoreDTO struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

// FromModel maps the persisted store into a DTO.
func FromModel(m *models.Store) *StoreDTO {
	if m == nil {
		return nil
	}
	dto := &StoreDTO{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Address != nil {
		cpy := *m.Address
		dto.Address = &cpy
	}
	if m.Phone != nil {
		cpy := *m.Phone
		dto.Phone = &cpy
	}
	return dto
}

// FromModels maps a slice of persisted stores.
func FromModels(ms []models.Store) []StoreDTO {
	dtos := make([]StoreDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// ToModel prepares the GORM model from creation data.
func (c CreateStoreDTO) ToModel() *models.Store {
	return &models.Store{
		Name:     c.Name,
		Location: c.Location,
		Address:  c.Address,
		Phone:    c.Phone,
	}
}
