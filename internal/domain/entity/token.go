// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audience identifies the token domain a credential belongs to. User and
// admin tokens are signed with independent secrets; a token issued for one
// audience never validates against the other.
type Audience string

const (
	// AudienceUser is the end-user token domain (doctors and patients).
	AudienceUser Audience = "user"
	// AudienceAdmin is the administrator token domain.
	AudienceAdmin Audience = "admin"
)

// String returns the string representation of the Audience.
func (a Audience) String() string {
	return string(a)
}

// IsValid checks if the Audience is a valid value.
func (a Audience) IsValid() bool {
	switch a {
	case AudienceUser, AudienceAdmin:
		return true
	default:
		return false
	}
}

// RefreshToken represents a long-lived, authorized session. One row exists
// per active session; the row is deleted on rotation and on logout, so a
// refresh token can be redeemed at most once.
type RefreshToken struct {
	ID          uuid.UUID // The unique ID for this specific refresh token record.
	PrincipalID uuid.UUID // Links this session to the user or admin it belongs to.
	Audience    Audience  // The token domain this session was issued in.
	TokenHash   string    // SHA-256 hash of the raw refresh token for secure comparison.
	ExpiresAt   time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt   time.Time // Timestamp of when this session was created.
}

// VerificationToken is a one-time token proving email ownership.
// At most one live token exists per user; issuing a new one invalidates
// prior tokens.
type VerificationToken struct {
	ID        uuid.UUID // The unique ID for this verification token record.
	UserID    uuid.UUID // Links the token to the user it verifies.
	TokenHash string    // SHA-256 hash of the raw token.
	ExpiresAt time.Time // Tokens expire 24 hours after issuance.
	CreatedAt time.Time // Timestamp of issuance.
}

// Expired reports whether the verification token is past its expiry.
func (t *VerificationToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
