package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminStoreAssignment grants an ADMIN-role profile management rights over one
// store. The (admin_id, store_id) pair carries no uniqueness constraint;
// duplicate rows are tolerated and the access predicate treats them as one.
type AdminStoreAssignment struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AdminID   uuid.UUID `gorm:"column:admin_id;type:uuid;not null"`
	StoreID   uuid.UUID `gorm:"column:store_id;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the legacy table naming used by the dashboard schema.
func (AdminStoreAssignment) TableName() string {
	return "admin_store_assignments"
}
