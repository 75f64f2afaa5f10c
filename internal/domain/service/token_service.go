package service

import (
	"time"

	"caregate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the JWT tokens.
type Claims struct {
	PrincipalID uuid.UUID
	Role        entity.Role
	Audience    entity.Audience
	Type        string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Each audience (user, admin) forms an independent signing domain with its
// own access and refresh secrets; a token issued for one audience must
// never validate against the other.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair for a principal
	// in the given audience. The access token carries the role; the refresh
	// token does not.
	GenerateTokens(principalID uuid.UUID, role entity.Role, audience entity.Audience) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token against the audience-matched
	// secret. It fails with domainerrors.ErrInvalidToken on a bad signature
	// (including cross-audience tokens) and domainerrors.ErrExpiredToken past expiry.
	ValidateAccessToken(tokenString string, audience entity.Audience) (*Claims, error)

	// ValidateRefreshToken checks a refresh token against the audience-matched
	// refresh secret.
	ValidateRefreshToken(tokenString string, audience entity.Audience) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 of a raw token, the form in
	// which refresh and verification tokens are stored server-side.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured lifetime for refresh tokens.
	RefreshTokenDuration() time.Duration
}
