package impl

import (
	"context"
	"testing"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	infraauth "caregate/internal/infra/auth"
	mockRepo "caregate/internal/mocks/repository"
	mockSvc "caregate/internal/mocks/service"
	mockUC "caregate/internal/mocks/usecase"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestAccountLifecycle walks a patient account through the full lifecycle:
// registration, email verification, administrator approval and finally a
// self-access check through the authorization pipeline. The repositories are
// mocks backed by a small in-memory state so the same account is visible to
// every service involved.
func TestAccountLifecycle_RegisterVerifyApproveSelfAccess(t *testing.T) {
	cfg := newTestConfig()
	logger := newDiscardLogger()

	tokenService, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := infraauth.NewBcryptHasher(cfg)

	// In-memory state shared by the mock repositories.
	var (
		storedUser  *entity.User
		storedToken *entity.VerificationToken
		rawToken    string
	)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().
		FindByEmail(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, email string) (*entity.User, error) {
			if storedUser != nil && storedUser.Email == email {
				return storedUser, nil
			}

			return nil, repository.ErrUserNotFound
		}).Maybe()
	userRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			storedUser = user

			return nil
		})
	userRepo.EXPECT().
		FindByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			if storedUser != nil && storedUser.ID == id {
				return storedUser, nil
			}

			return nil, repository.ErrUserNotFound
		}).Maybe()
	userRepo.EXPECT().
		SetEmailVerified(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) error {
			require.Equal(t, storedUser.ID, id)
			storedUser.EmailVerified = true

			return nil
		})
	userRepo.EXPECT().
		SetStatus(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
			require.Equal(t, storedUser.ID, id)
			storedUser.Status = status

			return nil
		})

	recordRepo := mockRepo.NewMockRecordRepository(t)
	recordRepo.EXPECT().
		UpsertPatientProfile(mock.Anything, mock.Anything).
		Return(nil)

	verificationTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
	verificationTokenRepo.EXPECT().
		DeleteVerificationTokensByUserID(mock.Anything, mock.Anything).
		Return(nil)
	verificationTokenRepo.EXPECT().
		CreateVerificationToken(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token *entity.VerificationToken) error {
			token.ID = uuid.New()
			storedToken = token

			return nil
		})
	verificationTokenRepo.EXPECT().
		FindVerificationTokenByHash(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hash string) (*entity.VerificationToken, error) {
			if storedToken != nil && storedToken.TokenHash == hash {
				return storedToken, nil
			}

			return nil, repository.ErrVerificationTokenNotFound
		})
	verificationTokenRepo.EXPECT().
		DeleteVerificationToken(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) error {
			require.Equal(t, storedToken.ID, id)
			storedToken = nil

			return nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().RecordRepo().Return(recordRepo).Maybe()
	factory.EXPECT().VerificationTokenRepo().Return(verificationTokenRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mailer := mockSvc.NewMockMailer(t)
	mailer.EXPECT().
		SendVerificationEmail(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, token string) error {
			rawToken = token

			return nil
		})

	accountService := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		Hasher:           hasher,
		TokenService:     tokenService,
		Mailer:           mailer,
		Activity:         mockUC.NewMockActivityUsecase(t),
		Config:           cfg,
		Logger:           logger,
	})

	audit := mockUC.NewMockAuditUsecase(t)
	audit.EXPECT().
		Log(mock.Anything, entity.AuditUserApproved, mock.Anything, mock.Anything, mock.Anything).
		Return()

	adminService := NewAdminService(AdminServiceParams{
		TxManager:        txManager,
		AdminRepo:        mockRepo.NewMockAdminRepository(t),
		UserRepo:         userRepo,
		RefreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		AssignmentRepo:   mockRepo.NewMockAssignmentRepository(t),
		AlertRepo:        mockRepo.NewMockSecurityAlertRepository(t),
		AuditRepo:        mockRepo.NewMockAuditLogRepository(t),
		Hasher:           hasher,
		TokenService:     tokenService,
		Audit:            audit,
		Logger:           logger,
	})

	authorizer := NewAuthzService(AuthzServiceParams{
		AssignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		Logger:         logger,
	})

	ctx := context.Background()

	// 1. Register a patient. The account starts pending and unverified.
	registerOut, err := accountService.RegisterPatient(ctx, &usecase.RegisterInput{
		Name:     "Pat Doe",
		Email:    "pat@example.com",
		Password: "patient-password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, registerOut.User.Status)
	assert.False(t, registerOut.User.EmailVerified)
	require.NotEmpty(t, rawToken)

	selfCheck := &usecase.AccessCheck{
		AllowedRoles: entity.Roles{entity.RolePatient, entity.RoleDoctor},
		Permission:   entity.PermissionRecordsRead,
		PatientID:    &storedUser.ID,
	}

	// 2. While pending, even self-access to records is refused at the
	// approval gate.
	err = authorizer.Authorize(ctx, entity.NewUserPrincipal(storedUser), selfCheck)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotApproved)

	// 3. Verify the email with the token handed to the mailer.
	require.NoError(t, accountService.VerifyEmail(ctx, rawToken))
	assert.True(t, storedUser.EmailVerified)
	assert.Nil(t, storedToken)

	// Verification alone does not open the gate.
	err = authorizer.Authorize(ctx, entity.NewUserPrincipal(storedUser), selfCheck)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotApproved)

	// 4. An administrator approves the account.
	require.NoError(t, adminService.ApproveUser(ctx, storedUser.ID))
	assert.Equal(t, entity.StatusApproved, storedUser.Status)

	// 5. The patient can now reach their own records.
	err = authorizer.Authorize(ctx, entity.NewUserPrincipal(storedUser), selfCheck)
	assert.NoError(t, err)
}
