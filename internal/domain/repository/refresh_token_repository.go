// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	// After rotation the old row is gone, so a second redemption of the same
	// token always surfaces this error.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository defines the interface for refresh token and session management.
// The store is the single source of truth for refresh-token validity; callers
// must never cache lookup results.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// ConsumeRefreshTokenByHash atomically deletes the token row identified by
	// hash. It returns ErrRefreshTokenNotFound when no row was deleted, which
	// is how concurrent rotation attempts are serialized: the DELETE acts as a
	// compare-and-delete, so exactly one racing caller wins.
	ConsumeRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByPrincipalID removes all refresh tokens for a principal.
	// Used for "logout everywhere" and when an account is suspended or deleted.
	DeleteRefreshTokensByPrincipalID(ctx context.Context, principalID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens.
	// This should be called periodically for cleanup.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
