// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"caregate/config"
	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// audienceSecrets holds the signing secrets of one token domain.
type audienceSecrets struct {
	access  string
	refresh string
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It keeps one secret pair per audience so that user and admin tokens form
// independent signing domains.
type jwtService struct {
	secrets    map[entity.Audience]audienceSecrets
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It requires all four secrets; a missing secret would silently collapse
// the two token domains into one, so construction fails instead.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	keys := cfg.SecretKey
	if keys.UserAccess == "" || keys.UserRefresh == "" || keys.AdminAccess == "" || keys.AdminRefresh == "" {
		return nil, errors.New("all four jwt secrets must be provided")
	}

	return &jwtService{
		secrets: map[entity.Audience]audienceSecrets{
			entity.AudienceUser:  {access: keys.UserAccess, refresh: keys.UserRefresh},
			entity.AudienceAdmin: {access: keys.AdminAccess, refresh: keys.AdminRefresh},
		},
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a principal.
func (s *jwtService) GenerateTokens(principalID uuid.UUID, role entity.Role, audience entity.Audience) (accessToken string, refreshToken string, err error) {
	secrets, ok := s.secrets[audience]
	if !ok {
		return "", "", errors.Errorf("unknown token audience: %s", audience)
	}

	accessToken, err = s.generateToken(principalID, role, audience, s.accessTTL, secrets.access, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	// The refresh token carries no role: authorization state is re-resolved
	// from the store on every rotation.
	refreshToken, err = s.generateToken(principalID, "", audience, s.refreshTTL, secrets.refresh, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token against the audience-matched secret.
func (s *jwtService) ValidateAccessToken(tokenString string, audience entity.Audience) (*service.Claims, error) {
	secrets, ok := s.secrets[audience]
	if !ok {
		return nil, errors.Errorf("unknown token audience: %s", audience)
	}

	return s.parseToken(tokenString, secrets.access, tokenTypeAccess, audience)
}

// ValidateRefreshToken checks a refresh token against the audience-matched refresh secret.
func (s *jwtService) ValidateRefreshToken(tokenString string, audience entity.Audience) (*service.Claims, error) {
	secrets, ok := s.secrets[audience]
	if !ok {
		return nil, errors.Errorf("unknown token audience: %s", audience)
	}

	return s.parseToken(tokenString, secrets.refresh, tokenTypeRefresh, audience)
}

// HashToken returns the hex-encoded SHA-256 of a raw token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(principalID uuid.UUID, role entity.Role, audience entity.Audience, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  principalID.String(),     // Subject (who the token is for)
		"iat":  now.Unix(),               // Issued At
		"exp":  now.Add(ttl).Unix(),      // Expiration Time
		"aud":  audience.String(),        // Token domain, informational; the secret enforces it
		"type": tokenType,                // Type of token (access or refresh)
	}
	// Only access tokens carry the role for stateless authorization.
	if role != "" {
		claims["role"] = role.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parseToken validates the signature and expiry of a token and maps the
// claims into the domain Claims type.
func (s *jwtService) parseToken(tokenString, secret, wantType string, audience entity.Audience) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		// Expiry is reported separately from signature problems so callers
		// can distinguish a stale credential from a forged or foreign one.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrExpiredToken.WrapMessage("token past expiry")
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected claims shape")
	}

	if typ, _ := mapClaims["type"].(string); typ != wantType {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	sub, _ := mapClaims["sub"].(string)
	principalID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid subject claim")
	}

	claims := &service.Claims{
		PrincipalID: principalID,
		Audience:    audience,
		Type:        wantType,
	}
	if roleStr, ok := mapClaims["role"].(string); ok {
		claims.Role = entity.Role(roleStr)
	}

	return claims, nil
}
