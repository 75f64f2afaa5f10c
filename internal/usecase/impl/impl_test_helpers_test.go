package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"caregate/config"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
	infraauth "caregate/internal/infra/auth"
	mockRepo "caregate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           4,
			AccessTokenTTL:       15 * time.Minute,
			RefreshTokenTTL:      7 * 24 * time.Hour,
			VerificationTokenTTL: 24 * time.Hour,
		},
	}
	cfg.SecretKey.UserAccess = "user_access_secret_very_long_for_testing"
	cfg.SecretKey.UserRefresh = "user_refresh_secret_very_long_for_testing"
	cfg.SecretKey.AdminAccess = "admin_access_secret_very_long_for_testing"
	cfg.SecretKey.AdminRefresh = "admin_refresh_secret_very_long_for_testing"

	return cfg
}

func newTestTokenService(t *testing.T) service.TokenService {
	tokenService, err := infraauth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	return tokenService
}

// expectTx wires the transaction manager mock to run the callback against
// the given repository factory, mirroring what the real manager does.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
