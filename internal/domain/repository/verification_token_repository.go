package repository

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVerificationTokenNotFound is returned when a verification token is not found.
var ErrVerificationTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository defines the operations for one-time email
// verification tokens.
type VerificationTokenRepository interface {
	// CreateVerificationToken persists a new verification token.
	CreateVerificationToken(ctx context.Context, token *entity.VerificationToken) error

	// FindVerificationTokenByHash retrieves a token record by its stored hash.
	FindVerificationTokenByHash(ctx context.Context, tokenHash string) (*entity.VerificationToken, error)

	// DeleteVerificationToken removes a single token by its ID.
	DeleteVerificationToken(ctx context.Context, id uuid.UUID) error

	// DeleteVerificationTokensByUserID removes all tokens for a user.
	// Issuing a new token invalidates all prior ones through this call.
	DeleteVerificationTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
