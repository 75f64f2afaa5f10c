// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the lifecycle state of a user account.
// Accounts are created PENDING and move through verify/approve/reject
// transitions; suspension may be applied by an administrator or by the
// anomaly engine.
type ApprovalStatus string

const (
	// StatusPending is the initial state after registration.
	StatusPending ApprovalStatus = "pending"
	// StatusApproved means an administrator approved the account.
	StatusApproved ApprovalStatus = "approved"
	// StatusRejected means an administrator rejected the account.
	StatusRejected ApprovalStatus = "rejected"
	// StatusSuspended means access was revoked, manually or automatically.
	StatusSuspended ApprovalStatus = "suspended"
)

// String returns the string representation of the ApprovalStatus.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSuspended:
		return true
	default:
		return false
	}
}

// User is an end-user principal: a doctor or a patient.
// The role is immutable after creation; only Status and EmailVerified
// mutate post-creation.
type User struct {
	ID            uuid.UUID      // The unique identifier for the user.
	Email         string         // The user's login identifier.
	Name          string         // The user's display name.
	PasswordHash  string         // bcrypt hash of the user's password. Never serialized.
	Role          Role           // doctor or patient. Immutable after creation.
	Status        ApprovalStatus // Approval lifecycle state.
	EmailVerified bool           // Whether the user proved ownership of the email.
	CreatedAt     time.Time      // Timestamp of when this account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// Admin is an administrator principal. Admins live in their own token
// domain, are implicitly approved and hold the admin capability bundle.
type Admin struct {
	ID           uuid.UUID // The unique identifier for the admin.
	Email        string    // The admin's login identifier.
	Name         string    // The admin's display name.
	PasswordHash string    // bcrypt hash of the admin's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this admin was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
