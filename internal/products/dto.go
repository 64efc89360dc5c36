package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/db/models"
	"github.com/razorsharp/storefront-backend/pkg/types"
)

// ProductDTO exposes catalog product data in API responses. Price always
// serializes as the canonical two-decimal string.
type ProductDTO struct {
	ID          uuid.UUID   `json:"id"`
	StoreID     uuid.UUID   `json:"store_id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Price       types.Price `json:"price"`
	ImageURL    *string     `json:"image_url,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Size        *string     `json:"size,omitempty"`
	Color       *string     `json:"color,omitempty"`
	InStock     bool        `json:"in_stock"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateProductDTO holds creation-time data. Price is a pointer so a missing
// field is distinguishable from a free product.
type CreateProductDTO struct {
	StoreID     uuid.UUID    `json:"store_id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Description *string      `json:"description"`
	Price       *types.Price `json:"price" validate:"required"`
	ImageURL    *string      `json:"image_url"`
	Category    *string      `json:"category"`
	Size        *string      `json:"size"`
	Color       *string      `json:"color"`
	InStock     *bool        `json:"in_stock"`
}

// FromModel maps the persisted product into a DTO.
func FromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:          m.ID,
		StoreID:     m.StoreID,
		Name:        m.Name,
		Description: copyString(m.Description),
		Price:       m.Price,
		ImageURL:    copyString(m.ImageURL),
		Category:    copyString(m.Category),
		Size:        copyString(m.Size),
		Color:       copyString(m.Color),
		InStock:     m.InStock,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromModels maps a slice of persisted products.
func FromModels(ms []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// ToModel prepares the GORM model from creation data. Stock defaults to
// available when the field is omitted.
func (c CreateProductDTO) ToModel() *models.Product {
	product := &models.Product{
		StoreID:     c.StoreID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Category:    c.Category,
		Size:        c.Size,
		Color:       c.Color,
		InStock:     true,
	}
	if c.Price != nil {
		product.Price = *c.Price
	}
	if c.InStock != nil {
		product.InStock = *c.InStock
	}
	return product
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	cpy := *s
	return &cpy
}
