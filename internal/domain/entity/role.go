package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "user"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates an administrator allowed to manage other administrators.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role may override ownership checks.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// AdminRoles are the roles allowed on administrative routes.
func AdminRoles() Roles {
	return Roles{RoleAdmin, RoleSuperAdmin}
}

// UserStatus is the account state of an identity.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// IsValid checks if the status is a known value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	default:
		return false
	}
}

// Permission names a capability granted to an account.
type Permission string

const (
	PermissionProfileEdit Permission = "profile_edit"
	PermissionProfileView Permission = "profile_view"
	PermissionQRGenerate  Permission = "qr_generate"
)

// DefaultPermissions returns the permissions granted on registration.
func DefaultPermissions() []Permission {
	return []Permission{PermissionProfileEdit, PermissionProfileView, PermissionQRGenerate}
}
