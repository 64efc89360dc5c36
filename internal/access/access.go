// Package access holds the role-scoped authorization predicates. The
// functions are pure: callers load the actor's assignments up front and pass
// them in, which keeps every decision reproducible in tests.
package access

import (
	"github.com/google/uuid"

	"github.com/razorsharp/storefront-backend/internal/assignments"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/pkg/enums"
)

// CanManageStore reports whether the profile may manage the given store.
// A nil profile is unauthenticated and always denied. Superadmins manage
// every store; admins only the stores they hold an assignment for; users
// none.
func CanManageStore(profile *profiles.ProfileDTO, assigned []assignments.AssignmentDTO, storeID uuid.UUID) bool {
	if profile == nil {
		return false
	}
	switch profile.Role {
	case enums.RoleSuperAdmin:
		return true
	case enums.RoleAdmin:
		for _, a := range assigned {
			if a.AdminID == profile.ID && a.StoreID == storeID {
				return true
			}
		}
		return false
	case enums.RoleUser:
		return false
	default:
		return false
	}
}

// CanAccessAdminArea reports whether the profile may see the admin dashboard.
func CanAccessAdminArea(profile *profiles.ProfileDTO) bool {
	if profile == nil {
		return false
	}
	switch profile.Role {
	case enums.RoleSuperAdmin, enums.RoleAdmin:
		return true
	default:
		return false
	}
}
