package models

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a physical retail location.
type Store struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Location  string    `gorm:"column:location;not null"`
	Address   *string   `gorm:"column:address"`
	Phone     *string   `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
