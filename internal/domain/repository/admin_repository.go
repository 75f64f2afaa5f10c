package repository

import (
	"context"
	"errors"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when an administrator is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for administrator persistence.
// Admins are a separate principal domain from end users.
type AdminRepository interface {
	// FindByID retrieves a single admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves a single admin by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin entity to the storage.
	Create(ctx context.Context, admin *entity.Admin) error
}
