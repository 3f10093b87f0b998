// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // Stored trimmed and lower-cased.
	PasswordHash string
	Role         Role
	Status       UserStatus
	Permissions  []Permission

	LoginAttempts int
	LockUntil     *time.Time
	IsLocked      bool
	LastLogin     *time.Time

	EmailVerificationToken   string
	EmailVerificationExpires *time.Time
	PasswordResetToken       string
	PasswordResetExpires     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds an active account with the default role and permissions.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Status:       UserStatusActive,
		Permissions:  DefaultPermissions(),
	}
}

// IsAdmin reports whether the user holds an administrative role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == UserStatusActive
}

// HasPermission reports whether the account was granted p. Administrators hold every permission.
func (u *User) HasPermission(p Permission) bool {
	if u.IsAdmin() {
		return true
	}

	return slices.Contains(u.Permissions, p)
}

// CanAccess reports whether the user owns the resource or may override ownership.
func (u *User) CanAccess(ownerID uuid.UUID) bool {
	if u == nil {
		return false
	}

	return u.ID == ownerID || u.IsAdmin()
}

// LockedAt reports whether the account is locked at the given instant.
func (u *User) LockedAt(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// RecordFailedLogin registers a failed password check. When the previous lock has
// already expired the counter restarts at one. A positive maxAttempts locks the
// account for lockFor once the threshold is reached.
func (u *User) RecordFailedLogin(now time.Time, maxAttempts int, lockFor time.Duration) {
	if u.LockUntil != nil && !u.LockUntil.After(now) {
		u.LoginAttempts = 1
		u.LockUntil = nil
		u.IsLocked = false

		return
	}

	u.LoginAttempts++
	if maxAttempts > 0 && u.LoginAttempts >= maxAttempts && !u.LockedAt(now) {
		until := now.Add(lockFor)
		u.LockUntil = &until
		u.IsLocked = true
	}
}

// RecordSuccessfulLogin clears lockout state and stamps the login time.
func (u *User) RecordSuccessfulLogin(now time.Time) {
	u.LoginAttempts = 0
	u.LockUntil = nil
	u.IsLocked = false
	u.LastLogin = &now
}
