package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
	infraauth "caregate/internal/infra/auth"
	mockRepo "caregate/internal/mocks/repository"
	mockSvc "caregate/internal/mocks/service"
	mockUC "caregate/internal/mocks/usecase"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
// The token service and password hasher are the real implementations so that
// rotation tests exercise real, distinguishable tokens.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	mailer           *mockSvc.MockMailer
	activity         *mockUC.MockActivityUsecase
	hasher           service.PasswordHasher
	tokenService     service.TokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	cfg := newTestConfig()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	activity := mockUC.NewMockActivityUsecase(t)
	hasher := infraauth.NewBcryptHasher(cfg)

	tokenService, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Mailer:           mailer,
		Activity:         activity,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		mailer:           mailer,
		activity:         activity,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAccountService_RegisterPatient_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Patient",
		Email:    "patient@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRecordRepo := mockRepo.NewMockRecordRepository(t)
			mockTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RecordRepo().Return(mockRecordRepo)
			mockFactory.EXPECT().VerificationTokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockRecordRepo.EXPECT().
				UpsertPatientProfile(ctx, mock.AnythingOfType("*entity.PatientProfile")).
				Return(nil)

			mockTokenRepo.EXPECT().
				DeleteVerificationTokensByUserID(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil)
			mockTokenRepo.EXPECT().
				CreateVerificationToken(ctx, mock.AnythingOfType("*entity.VerificationToken")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, input.Email, mock.AnythingOfType("string")).
		Return(nil)

	output, err := fx.service.RegisterPatient(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RolePatient, output.User.Role)
	assert.Equal(t, entity.StatusPending, output.User.Status)
	assert.False(t, output.User.EmailVerified)
	assert.True(t, fx.hasher.Check(input.Password, output.User.PasswordHash))
}

func TestAccountService_RegisterDoctor_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Dr. Test",
		Email:    "doctor@example.com",
		Password: "Password123!",
	}

	existing := &entity.User{ID: uuid.New(), Email: input.Email, Role: entity.RoleDoctor}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterDoctor(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	rawToken := "raw-verification-token"
	tokenHash := fx.tokenService.HashToken(rawToken)
	userID := uuid.New()

	record := &entity.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &entity.User{ID: userID, Role: entity.RolePatient, Status: entity.StatusPending}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().VerificationTokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindVerificationTokenByHash(ctx, tokenHash).Return(record, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().SetEmailVerified(ctx, userID).Return(nil)
			mockTokenRepo.EXPECT().DeleteVerificationToken(ctx, record.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.VerifyEmail(ctx, rawToken)

	require.NoError(t, err)
}

func TestAccountService_VerifyEmail_ExpiredToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	rawToken := "stale-verification-token"
	tokenHash := fx.tokenService.HashToken(rawToken)

	record := &entity.VerificationToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().VerificationTokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindVerificationTokenByHash(ctx, tokenHash).Return(record, nil)
			mockTokenRepo.EXPECT().DeleteVerificationToken(ctx, record.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.VerifyEmail(ctx, rawToken)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationTokenInvalid))
}

func TestAccountService_VerifyEmail_AlreadyVerified(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	rawToken := "reused-verification-token"
	tokenHash := fx.tokenService.HashToken(rawToken)
	userID := uuid.New()

	record := &entity.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &entity.User{ID: userID, EmailVerified: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().VerificationTokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindVerificationTokenByHash(ctx, tokenHash).Return(record, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	err := fx.service.VerifyEmail(ctx, rawToken)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	password := "Password123!"

	passwordHash, err := fx.hasher.Hash(password)
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "patient@example.com",
		PasswordHash: passwordHash,
		Role:         entity.RolePatient,
		Status:       entity.StatusApproved,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(ctx context.Context, event *service.ActivityEvent) {
			assert.Equal(t, entity.ActionLogin, event.Action)
			assert.Equal(t, user.ID.String(), event.UserID)
		}).
		Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: password,
		IP:       "203.0.113.7",
		Device:   "device-abc",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)

	claims, err := fx.tokenService.ValidateAccessToken(output.AccessToken, entity.AudienceUser)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.PrincipalID)
	assert.Equal(t, entity.RolePatient, claims.Role)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	passwordHash, err := fx.hasher.Hash("Password123!")
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "patient@example.com",
		PasswordHash: passwordHash,
		Role:         entity.RolePatient,
		Status:       entity.StatusApproved,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "not-the-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RolePatient, Status: entity.StatusApproved}

	_, rawToken, err := fx.tokenService.GenerateTokens(user.ID, user.Role, entity.AudienceUser)
	require.NoError(t, err)
	tokenHash := fx.tokenService.HashToken(rawToken)

	session := &entity.RefreshToken{
		ID:          uuid.New(),
		PrincipalID: user.ID,
		Audience:    entity.AudienceUser,
		TokenHash:   tokenHash,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	var storedHash string

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().ConsumeRefreshTokenByHash(ctx, tokenHash).Return(session, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, newSession *entity.RefreshToken) {
					storedHash = newSession.TokenHash
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return()

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: rawToken})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEqual(t, rawToken, output.RefreshToken)
	assert.Equal(t, fx.tokenService.HashToken(output.RefreshToken), storedHash)
}

func TestAccountService_RefreshToken_ConsumedTokenRejected(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, rawToken, err := fx.tokenService.GenerateTokens(userID, entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)
	tokenHash := fx.tokenService.HashToken(rawToken)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockRefreshRepo.EXPECT().
				ConsumeRefreshTokenByHash(ctx, tokenHash).
				Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: rawToken})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenConsumed))
}

func TestAccountService_RefreshToken_ExpiredSession(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, rawToken, err := fx.tokenService.GenerateTokens(userID, entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)
	tokenHash := fx.tokenService.HashToken(rawToken)

	expired := &entity.RefreshToken{
		PrincipalID: userID,
		Audience:    entity.AudienceUser,
		TokenHash:   tokenHash,
		ExpiresAt:   time.Now().Add(-time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockRefreshRepo.EXPECT().ConsumeRefreshTokenByHash(ctx, tokenHash).Return(expired, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: rawToken})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
}

// TestAccountService_RefreshToken_ConcurrentRedemptionSingleWinner drives many
// concurrent redemptions of the same refresh token against a compare-and-delete
// store and requires exactly one of them to succeed.
func TestAccountService_RefreshToken_ConcurrentRedemptionSingleWinner(t *testing.T) {
	const attempts = 8

	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RolePatient, Status: entity.StatusApproved}

	_, rawToken, err := fx.tokenService.GenerateTokens(user.ID, user.Role, entity.AudienceUser)
	require.NoError(t, err)
	tokenHash := fx.tokenService.HashToken(rawToken)

	var storeMu sync.Mutex
	sessions := map[string]*entity.RefreshToken{
		tokenHash: {
			ID:          uuid.New(),
			PrincipalID: user.ID,
			Audience:    entity.AudienceUser,
			TokenHash:   tokenHash,
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockRefreshRepo.EXPECT().
		ConsumeRefreshTokenByHash(ctx, tokenHash).
		RunAndReturn(func(ctx context.Context, hash string) (*entity.RefreshToken, error) {
			storeMu.Lock()
			defer storeMu.Unlock()

			session, ok := sessions[hash]
			if !ok {
				return nil, repository.ErrRefreshTokenNotFound
			}
			delete(sessions, hash)

			return session, nil
		})

	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	mockRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(ctx context.Context, newSession *entity.RefreshToken) error {
			storeMu.Lock()
			defer storeMu.Unlock()

			sessions[newSession.TokenHash] = newSession

			return nil
		})

	expectTx(fx.txManager, mockFactory)

	// Exactly one redemption reaches the post-rotation tracking call.
	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return().
		Once()

	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, refreshErr := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: rawToken})
			results <- refreshErr
		}()
	}
	wg.Wait()
	close(results)

	var wins, consumed int
	for refreshErr := range results {
		switch {
		case refreshErr == nil:
			wins++
		case errors.Is(refreshErr, domainerrors.ErrTokenConsumed):
			consumed++
		default:
			t.Fatalf("unexpected redemption error: %v", refreshErr)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, consumed)
	assert.Len(t, sessions, 1, "store should hold exactly the rotated session")
}

func TestAccountService_RefreshToken_WrongAudienceRejected(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	// An admin refresh token must not rotate a user session.
	_, adminToken, err := fx.tokenService.GenerateTokens(uuid.New(), entity.RoleAdmin, entity.AudienceAdmin)
	require.NoError(t, err)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: adminToken})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAccountService_Logout_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, rawToken, err := fx.tokenService.GenerateTokens(userID, entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, fx.tokenService.HashToken(rawToken)).
		Return(nil)

	err = fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: rawToken})

	require.NoError(t, err)
}

func TestAccountService_Logout_UnknownSession(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, rawToken, err := fx.tokenService.GenerateTokens(userID, entity.RolePatient, entity.AudienceUser)
	require.NoError(t, err)

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, fx.tokenService.HashToken(rawToken)).
		Return(repository.ErrRefreshTokenNotFound)

	err = fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: rawToken})

	require.NoError(t, err)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetAccount(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPrincipalNotFound))
}
