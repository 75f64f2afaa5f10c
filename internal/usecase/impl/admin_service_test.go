package impl

import (
	"context"
	"testing"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
	infraauth "caregate/internal/infra/auth"
	mockRepo "caregate/internal/mocks/repository"
	mockUC "caregate/internal/mocks/usecase"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	txManager        *mockRepo.MockTransactionManager
	adminRepo        *mockRepo.MockAdminRepository
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	assignmentRepo   *mockRepo.MockAssignmentRepository
	alertRepo        *mockRepo.MockSecurityAlertRepository
	auditRepo        *mockRepo.MockAuditLogRepository
	audit            *mockUC.MockAuditUsecase
	hasher           service.PasswordHasher
	tokenService     service.TokenService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	cfg := newTestConfig()

	txManager := mockRepo.NewMockTransactionManager(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	alertRepo := mockRepo.NewMockSecurityAlertRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	audit := mockUC.NewMockAuditUsecase(t)
	hasher := infraauth.NewBcryptHasher(cfg)

	tokenService, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewAdminService(AdminServiceParams{
		TxManager:        txManager,
		AdminRepo:        adminRepo,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		AssignmentRepo:   assignmentRepo,
		AlertRepo:        alertRepo,
		AuditRepo:        auditRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Audit:            audit,
		Logger:           newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:          service,
		txManager:        txManager,
		adminRepo:        adminRepo,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		assignmentRepo:   assignmentRepo,
		alertRepo:        alertRepo,
		auditRepo:        auditRepo,
		audit:            audit,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	password := "AdminPassword123!"

	passwordHash, err := fx.hasher.Hash(password)
	require.NoError(t, err)

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: passwordHash,
	}

	fx.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, session *entity.RefreshToken) {
			assert.Equal(t, entity.AudienceAdmin, session.Audience)
			assert.Equal(t, admin.ID, session.PrincipalID)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.AdminLoginInput{
		Email:    admin.Email,
		Password: password,
	})

	require.NoError(t, err)
	require.NotNil(t, output)

	// The issued pair lives in the admin audience only.
	claims, err := fx.tokenService.ValidateAccessToken(output.AccessToken, entity.AudienceAdmin)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.PrincipalID)

	_, err = fx.tokenService.ValidateAccessToken(output.AccessToken, entity.AudienceUser)
	require.Error(t, err)
}

func TestAdminService_Login_UnknownAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.adminRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminNotFound)

	output, err := fx.service.Login(ctx, &usecase.AdminLoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_ApproveUser_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().SetStatus(ctx, userID, entity.StatusApproved).Return(nil)
	fx.audit.EXPECT().
		Log(ctx, entity.AuditUserApproved, "user/"+userID.String(), &userID, mock.AnythingOfType("string")).
		Return()

	err := fx.service.ApproveUser(ctx, userID)

	require.NoError(t, err)
}

func TestAdminService_RejectUser_UnknownUser(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		SetStatus(ctx, userID, entity.StatusRejected).
		Return(repository.ErrUserNotFound)

	err := fx.service.RejectUser(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

// A broken audit sink must not block the admin action it records.
func TestAdminService_ApproveUser_AuditFailureDoesNotBlock(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)

	audit := NewAuditService(AuditServiceParams{
		AuditRepo: auditRepo,
		Logger:    newDiscardLogger(),
	})

	service := NewAdminService(AdminServiceParams{
		TxManager:        mockRepo.NewMockTransactionManager(t),
		AdminRepo:        mockRepo.NewMockAdminRepository(t),
		UserRepo:         userRepo,
		RefreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		AssignmentRepo:   mockRepo.NewMockAssignmentRepository(t),
		AlertRepo:        mockRepo.NewMockSecurityAlertRepository(t),
		AuditRepo:        auditRepo,
		Hasher:           infraauth.NewBcryptHasher(newTestConfig()),
		TokenService:     newTestTokenService(t),
		Audit:            audit,
		Logger:           newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().SetStatus(ctx, userID, entity.StatusApproved).Return(nil)
	auditRepo.EXPECT().
		CreateAuditLogEntry(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(errors.New("audit table unavailable"))

	err := service.ApproveUser(ctx, userID)

	require.NoError(t, err)
}

func TestAdminService_SuspendUser_RevokesSessions(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
	mockUserRepo.EXPECT().SetStatus(ctx, userID, entity.StatusSuspended).Return(nil)
	mockRefreshRepo.EXPECT().DeleteRefreshTokensByPrincipalID(ctx, userID).Return(nil)
	expectTx(fx.txManager, mockFactory)

	fx.audit.EXPECT().
		Log(ctx, entity.AuditUserSuspended, "user/"+userID.String(), &userID, mock.AnythingOfType("string")).
		Return()

	err := fx.service.SuspendUser(ctx, userID)

	require.NoError(t, err)
}

func TestAdminService_DeleteUser_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	fx.audit.EXPECT().
		Log(ctx, entity.AuditUserDeleted, "user/"+userID.String(), &userID, mock.AnythingOfType("string")).
		Return()

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestAdminService_AssignDoctor_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()

	doctor := &entity.User{ID: doctorID, Role: entity.RoleDoctor, Status: entity.StatusApproved}
	patient := &entity.User{ID: patientID, Role: entity.RolePatient, Status: entity.StatusApproved}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
	mockUserRepo.EXPECT().FindByID(ctx, doctorID).Return(doctor, nil)
	mockUserRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
	mockAssignmentRepo.EXPECT().
		CreateAssignment(ctx, mock.AnythingOfType("*entity.DoctorPatientAssignment")).
		Return(nil)
	expectTx(fx.txManager, mockFactory)

	fx.audit.EXPECT().
		Log(ctx, entity.AuditAssignmentCreated, mock.AnythingOfType("string"), &doctorID, mock.AnythingOfType("string")).
		Return()

	err := fx.service.AssignDoctor(ctx, doctorID, patientID)

	require.NoError(t, err)
}

func TestAdminService_AssignDoctor_RejectsNonDoctor(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()

	notADoctor := &entity.User{ID: doctorID, Role: entity.RolePatient, Status: entity.StatusApproved}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, doctorID).Return(notADoctor, nil)
	expectTx(fx.txManager, mockFactory)

	err := fx.service.AssignDoctor(ctx, doctorID, patientID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_AssignDoctor_DuplicateAssignment(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()

	doctor := &entity.User{ID: doctorID, Role: entity.RoleDoctor, Status: entity.StatusApproved}
	patient := &entity.User{ID: patientID, Role: entity.RolePatient, Status: entity.StatusApproved}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
	mockUserRepo.EXPECT().FindByID(ctx, doctorID).Return(doctor, nil)
	mockUserRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
	mockAssignmentRepo.EXPECT().
		CreateAssignment(ctx, mock.AnythingOfType("*entity.DoctorPatientAssignment")).
		Return(repository.ErrDuplicateAssignment)
	expectTx(fx.txManager, mockFactory)

	err := fx.service.AssignDoctor(ctx, doctorID, patientID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentAlreadyExists))
}

func TestAdminService_UnassignDoctor_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()

	fx.assignmentRepo.EXPECT().
		DeleteAssignment(ctx, doctorID, patientID).
		Return(repository.ErrAssignmentNotFound)

	err := fx.service.UnassignDoctor(ctx, doctorID, patientID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAdminService_ResolveAlert_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	alert := &entity.SecurityAlert{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		RiskScore: 60,
		Resolved:  false,
	}

	fx.alertRepo.EXPECT().FindSecurityAlertByID(ctx, alert.ID).Return(alert, nil)
	fx.alertRepo.EXPECT().ResolveSecurityAlert(ctx, alert.ID).Return(nil)
	fx.audit.EXPECT().
		Log(ctx, entity.AuditAlertResolved, "alert/"+alert.ID.String(), &alert.UserID, mock.AnythingOfType("string")).
		Return()

	err := fx.service.ResolveAlert(ctx, alert.ID)

	require.NoError(t, err)
}

// Resolution is terminal: a second resolution attempt conflicts.
func TestAdminService_ResolveAlert_AlreadyResolved(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	alert := &entity.SecurityAlert{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Resolved: true,
	}

	fx.alertRepo.EXPECT().FindSecurityAlertByID(ctx, alert.ID).Return(alert, nil)

	err := fx.service.ResolveAlert(ctx, alert.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertAlreadyResolved))
}

func TestAdminService_ResolveAlert_LosesRace(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	alert := &entity.SecurityAlert{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Resolved: false,
	}

	fx.alertRepo.EXPECT().FindSecurityAlertByID(ctx, alert.ID).Return(alert, nil)
	fx.alertRepo.EXPECT().
		ResolveSecurityAlert(ctx, alert.ID).
		Return(repository.ErrSecurityAlertNotFound)

	err := fx.service.ResolveAlert(ctx, alert.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertAlreadyResolved))
}

func TestAdminService_ListUsers_FiltersByStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	pending := entity.StatusPending
	expected := []*entity.User{{ID: uuid.New(), Status: pending}}

	fx.userRepo.EXPECT().List(ctx, &pending).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx, &pending)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAdminService_ListAuditLog(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	expected := []*entity.AuditLog{{ID: uuid.New(), Action: entity.AuditUserApproved}}

	fx.auditRepo.EXPECT().ListAuditLogEntries(ctx, 50).Return(expected, nil)

	entries, err := fx.service.ListAuditLog(ctx, 50)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
