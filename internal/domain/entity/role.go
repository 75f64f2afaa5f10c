// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the class of a principal in the system.
type Role string

const (
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
	// RoleDoctor indicates a doctor.
	RoleDoctor Role = "doctor"
	// RolePatient indicates a patient.
	RolePatient Role = "patient"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	default:
		return false
	}
}

// Permission is a named fine-grained capability.
type Permission string

const (
	// PermissionUsersManage allows approving, rejecting, suspending and deleting users.
	PermissionUsersManage Permission = "users:manage"
	// PermissionRecordsRead allows reading patient records (profile, labs, prescriptions).
	PermissionRecordsRead Permission = "records:read"
	// PermissionPrescriptionsWrite allows creating prescriptions.
	PermissionPrescriptionsWrite Permission = "prescriptions:write"
	// PermissionAssignmentsManage allows managing doctor-patient assignments.
	PermissionAssignmentsManage Permission = "assignments:manage"
	// PermissionAlertsManage allows listing and resolving security alerts.
	PermissionAlertsManage Permission = "alerts:manage"
	// PermissionAuditRead allows reading the audit log.
	PermissionAuditRead Permission = "audit:read"
)

// PermissionSet is the flat set of permission names resolved for a principal.
// It is computed once per authenticated request and never mutated mid-request.
type PermissionSet map[Permission]struct{}

// Has reports whether the set contains the given permission.
func (ps PermissionSet) Has(p Permission) bool {
	_, ok := ps[p]

	return ok
}

// rolePermissions is the static role to permission mapping. Roles are
// capability bundles; the join is resolved into a flat PermissionSet at
// authentication time.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUsersManage,
		PermissionRecordsRead,
		PermissionAssignmentsManage,
		PermissionAlertsManage,
		PermissionAuditRead,
	},
	RoleDoctor: {
		PermissionRecordsRead,
		PermissionPrescriptionsWrite,
	},
	RolePatient: {
		PermissionRecordsRead,
	},
}

// PermissionsForRole resolves the flat permission set for a role.
func PermissionsForRole(r Role) PermissionSet {
	perms := rolePermissions[r]
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}

	return set
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
