package entity

import "github.com/google/uuid"

// Principal is the resolved "who is asking" for a request. It is built by
// the authentication middleware from either a User or an Admin and carries
// the permission set resolved once for the lifetime of the request.
type Principal struct {
	ID            uuid.UUID
	Email         string
	Role          Role
	Status        ApprovalStatus
	EmailVerified bool
	Permissions   PermissionSet
}

// NewUserPrincipal builds a Principal from an end-user account.
func NewUserPrincipal(user *User) *Principal {
	return &Principal{
		ID:            user.ID,
		Email:         user.Email,
		Role:          user.Role,
		Status:        user.Status,
		EmailVerified: user.EmailVerified,
		Permissions:   PermissionsForRole(user.Role),
	}
}

// NewAdminPrincipal builds a Principal from an administrator account.
// Admins are always treated as approved.
func NewAdminPrincipal(admin *Admin) *Principal {
	return &Principal{
		ID:            admin.ID,
		Email:         admin.Email,
		Role:          RoleAdmin,
		Status:        StatusApproved,
		EmailVerified: true,
		Permissions:   PermissionsForRole(RoleAdmin),
	}
}

// IsAdmin reports whether the principal is an administrator.
func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasPermission reports whether the resolved permission set contains p.
func (p *Principal) HasPermission(perm Permission) bool {
	return p.Permissions.Has(perm)
}
