package auth

import (
	"testing"
	"time"

	"caregate/config"
	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.UserAccess = "user_access_secret_very_long_for_testing"
	cfg.SecretKey.UserRefresh = "user_refresh_secret_very_long_for_testing"
	cfg.SecretKey.AdminAccess = "admin_access_secret_very_long_for_testing"
	cfg.SecretKey.AdminRefresh = "admin_refresh_secret_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	principalID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(principalID, entity.RoleDoctor, entity.AudienceUser)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken, entity.AudienceUser)
	require.NoError(t, err)
	assert.Equal(t, principalID, accessClaims.PrincipalID)
	assert.Equal(t, entity.RoleDoctor, accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken, entity.AudienceUser)
	require.NoError(t, err)
	assert.Equal(t, principalID, refreshClaims.PrincipalID)
	assert.Empty(t, refreshClaims.Role) // Refresh tokens don't carry a role
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.AdminRefresh = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

// A token issued in the user domain must never validate in the admin domain,
// and vice versa.
func TestJWTService_AudienceDomainSeparation(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userAccess, userRefresh, err := jwtService.GenerateTokens(uuid.New(), entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)

	adminAccess, adminRefresh, err := jwtService.GenerateTokens(uuid.New(), entity.RoleAdmin, entity.AudienceAdmin)
	require.NoError(t, err)

	// Cross-audience validation fails as invalid, never as expired.
	_, err = jwtService.ValidateAccessToken(userAccess, entity.AudienceAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = jwtService.ValidateAccessToken(adminAccess, entity.AudienceUser)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = jwtService.ValidateRefreshToken(userRefresh, entity.AudienceAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = jwtService.ValidateRefreshToken(adminRefresh, entity.AudienceUser)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// Same-audience validation still succeeds.
	_, err = jwtService.ValidateAccessToken(adminAccess, entity.AudienceAdmin)
	assert.NoError(t, err)
}

// Access and refresh secrets differ within one audience, so a refresh token
// presented as an access token is rejected.
func TestJWTService_TokenTypeSeparation(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, refreshToken, err := jwtService.GenerateTokens(uuid.New(), entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken, entity.AudienceUser)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute // Already expired at issuance

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(accessToken, entity.AudienceUser)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format", entity.AudienceUser)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	hash := jwtService.HashToken("some-raw-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, jwtService.HashToken("some-raw-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-token"))
}
