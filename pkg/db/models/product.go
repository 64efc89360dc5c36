package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/types"
)

// Product represents a sellable item belonging to exactly one store.
// Deleting the store cascades to its products at the schema level.
type Product struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID     uuid.UUID   `gorm:"column:store_id;type:uuid;not null"`
	Name        string      `gorm:"column:name;not null"`
	Description *string     `gorm:"column:description"`
	Price       types.Price `gorm:"column:price;type:numeric(10,2);not null"`
	ImageURL    *string     `gorm:"column:image_url"`
	Category    *string     `gorm:"column:category"`
	Size        *string     `gorm:"column:size"`
	Color       *string     `gorm:"column:color"`
	InStock     bool        `gorm:"column:in_stock;not null;default:true"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}
