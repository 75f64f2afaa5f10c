// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	IP       string
	Device   string
}

// RefreshTokenInput defines the data required to rotate a session.
type RefreshTokenInput struct {
	RefreshToken string
	IP           string
	Device       string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair. The old refresh token
// is consumed; both tokens in the output are newly issued.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for end-user account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	RegisterPatient(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	RegisterDoctor(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
