// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for end-user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// List retrieves users, optionally filtered by approval status.
	List(ctx context.Context, status *entity.ApprovalStatus) ([]*entity.User, error)

	// SetStatus updates only the approval status of a user.
	// The role is immutable, so full-entity updates are deliberately absent.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error

	// SetEmailVerified marks the user's email as verified.
	SetEmailVerified(ctx context.Context, id uuid.UUID) error

	// Delete removes a user. Dependent profile data is cascaded by the
	// database schema; this is an explicit admin action, never automatic.
	Delete(ctx context.Context, id uuid.UUID) error
}
