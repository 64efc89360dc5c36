package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/pkg/enums"
)

// Profile represents an authenticated user's role-bearing record. The id is
// the identity-provider subject, never generated locally.
type Profile struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Email     string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	FullName  *string    `gorm:"column:full_name"`
	Role      enums.Role `gorm:"column:role;type:user_role;not null;default:'USER'"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
