package impl

import (
	"context"
	"testing"
	"time"

	"caregate/config"
	"caregate/internal/domain/constants"
	"caregate/internal/domain/entity"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
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

type anomalyServiceFixtures struct {
	service      usecase.ActivityUsecase
	txManager    *mockRepo.MockTransactionManager
	activityRepo *mockRepo.MockActivityLogRepository
	alertRepo    *mockRepo.MockSecurityAlertRepository
	audit        *mockUC.MockAuditUsecase
	publisher    *mockSvc.MockEventPublisher
}

func createTestAnomalyService(t *testing.T, cfg *config.Config) anomalyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	activityRepo := mockRepo.NewMockActivityLogRepository(t)
	alertRepo := mockRepo.NewMockSecurityAlertRepository(t)
	audit := mockUC.NewMockAuditUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewAnomalyService(AnomalyServiceParams{
		TxManager:        txManager,
		ActivityRepo:     activityRepo,
		AlertRepo:        alertRepo,
		UserRepo:         mockRepo.NewMockUserRepository(t),
		RefreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		Audit:            audit,
		Publisher:        publisher,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	return anomalyServiceFixtures{
		service:      service,
		txManager:    txManager,
		activityRepo: activityRepo,
		alertRepo:    alertRepo,
		audit:        audit,
		publisher:    publisher,
	}
}

// expectAppendAssigningID wires the append expectation and gives the stored
// entry a row ID the way the database would.
func expectAppendAssigningID(fx anomalyServiceFixtures, ctx context.Context) {
	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()

			return nil
		})
}

func TestAnomalyService_TrackAndEvaluate_InvalidUserID(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	err := fx.service.TrackAndEvaluate(context.Background(), &service.ActivityEvent{
		UserID: "not-a-uuid",
		Action: entity.ActionLogin,
	})

	require.Error(t, err)
}

func TestAnomalyService_TrackAndEvaluate_QuietActivityRaisesNothing(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	seenBefore := &entity.ActivityLog{ID: uuid.New(), UserID: userID, Device: "device-abc"}

	expectAppendAssigningID(fx, ctx)
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "device-abc").
		Return(seenBefore, nil)
	fx.activityRepo.EXPECT().
		CountActivityLogSince(ctx, userID, entity.ActionViewRecord, mock.AnythingOfType("time.Time")).
		Return(1, nil)

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID:   userID.String(),
		Action:   entity.ActionViewRecord,
		Resource: "patient/" + userID.String() + "/labs",
		Device:   "device-abc",
	})

	require.NoError(t, err)
}

func TestAnomalyService_TrackAndEvaluate_NewDeviceRaisesAlert(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	var appended *entity.ActivityLog

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()
			appended = entry

			return nil
		})
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "fresh-device").
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ string) (*entity.ActivityLog, error) {
			return appended, nil
		})

	fx.alertRepo.EXPECT().
		CreateSecurityAlert(ctx, mock.AnythingOfType("*entity.SecurityAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.SecurityAlert) error {
			alert.ID = uuid.New()

			assert.Equal(t, userID, alert.UserID)
			assert.Equal(t, 20, alert.RiskScore)
			assert.Equal(t, "activity from a previously unseen device", alert.Reason)

			return nil
		})
	fx.audit.EXPECT().
		Log(ctx, entity.AuditSecurityAlertGenerated, mock.AnythingOfType("string"), mock.AnythingOfType("*uuid.UUID"), "198.51.100.4").
		Return()

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionLogin,
		IP:     "198.51.100.4",
		Device: "fresh-device",
	})

	require.NoError(t, err)
}

// Rule scores are additive within one evaluation: an unseen device plus a
// mass-access burst lands at 60, not at whichever rule fired last.
func TestAnomalyService_TrackAndEvaluate_ScoresAreAdditive(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	var appended *entity.ActivityLog

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()
			appended = entry

			return nil
		})
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "fresh-device").
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ string) (*entity.ActivityLog, error) {
			return appended, nil
		})
	fx.activityRepo.EXPECT().
		CountActivityLogSince(ctx, userID, entity.ActionViewRecord, mock.AnythingOfType("time.Time")).
		Return(51, nil)

	fx.alertRepo.EXPECT().
		CreateSecurityAlert(ctx, mock.AnythingOfType("*entity.SecurityAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.SecurityAlert) error {
			alert.ID = uuid.New()

			assert.Equal(t, 60, alert.RiskScore)
			assert.Equal(t, "activity from a previously unseen device; mass record access", alert.Reason)

			return nil
		})
	fx.audit.EXPECT().
		Log(ctx, entity.AuditSecurityAlertGenerated, mock.AnythingOfType("string"), mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).
		Return()

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionViewRecord,
		Device: "fresh-device",
	})

	require.NoError(t, err)
}

// The unknown-device placeholder is not a device: it must never trigger the
// new-device rule, so the device history is not even consulted.
func TestAnomalyService_TrackAndEvaluate_MissingDeviceNeverScores(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()

			assert.Equal(t, constants.UnknownDevice, entry.Device)

			return nil
		})

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionLogin,
	})

	require.NoError(t, err)
}

func TestAnomalyService_TrackAndEvaluate_ForbiddenBurstBelowThresholdIsQuiet(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	seenBefore := &entity.ActivityLog{ID: uuid.New(), UserID: userID, Device: "device-abc"}

	expectAppendAssigningID(fx, ctx)
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "device-abc").
		Return(seenBefore, nil)
	// Exactly at the threshold: the rule requires strictly more.
	fx.activityRepo.EXPECT().
		CountActivityLogSince(ctx, userID, entity.ActionForbiddenAccess, mock.AnythingOfType("time.Time")).
		Return(3, nil)

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionForbiddenAccess,
		Device: "device-abc",
	})

	require.NoError(t, err)
}

// The windowed rules are keyed to the event's own action: a login from a
// known device scores nothing even while a forbidden burst or view burst
// sits inside the window. The count queries are never issued at all - the
// activity repo carries no count expectations and the alert repo none.
func TestAnomalyService_TrackAndEvaluate_WindowedRulesRequireMatchingAction(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	seenBefore := &entity.ActivityLog{ID: uuid.New(), UserID: userID, Device: "device-abc"}

	expectAppendAssigningID(fx, ctx)
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "device-abc").
		Return(seenBefore, nil)

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionLogin,
		Device: "device-abc",
	})

	require.NoError(t, err)
}

// Crossing the suspension threshold suspends the account and revokes its
// sessions in one transaction, on top of the alert itself.
func TestAnomalyService_TrackAndEvaluate_AutoSuspension(t *testing.T) {
	cfg := newTestConfig()
	cfg.Anomaly = &config.AnomalyConfig{
		Window:              5 * time.Minute,
		NewDeviceScore:      20,
		ForbiddenThreshold:  3,
		ForbiddenScore:      25,
		MassAccessThreshold: 50,
		MassAccessScore:     40,
		SuspendThreshold:    50,
	}

	fx := createTestAnomalyService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()

	var appended *entity.ActivityLog

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()
			appended = entry

			return nil
		})
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "fresh-device").
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ string) (*entity.ActivityLog, error) {
			return appended, nil
		})
	fx.activityRepo.EXPECT().
		CountActivityLogSince(ctx, userID, entity.ActionViewRecord, mock.AnythingOfType("time.Time")).
		Return(51, nil)

	fx.alertRepo.EXPECT().
		CreateSecurityAlert(ctx, mock.AnythingOfType("*entity.SecurityAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.SecurityAlert) error {
			alert.ID = uuid.New()

			assert.Equal(t, 60, alert.RiskScore)

			return nil
		})

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
	mockUserRepo.EXPECT().SetStatus(ctx, userID, entity.StatusSuspended).Return(nil)
	mockRefreshRepo.EXPECT().DeleteRefreshTokensByPrincipalID(ctx, userID).Return(nil)
	expectTx(fx.txManager, mockFactory)

	fx.audit.EXPECT().
		Log(ctx, entity.AuditSecurityAlertGenerated, mock.AnythingOfType("string"), mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).
		Return()
	fx.audit.EXPECT().
		Log(ctx, entity.AuditAccountAutoSuspended, "user/"+userID.String(), mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).
		Return()

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionViewRecord,
		Device: "fresh-device",
	})

	require.NoError(t, err)
}

// With the default policy the same evaluation scores 60, which stays below
// the suspension threshold: an alert is raised but the account is left
// alone. The transaction manager mock has no expectations, so a suspend
// attempt would fail the test.
func TestAnomalyService_TrackAndEvaluate_BelowSuspendThresholdKeepsAccount(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	var appended *entity.ActivityLog

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()
			appended = entry

			return nil
		})
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "fresh-device").
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ string) (*entity.ActivityLog, error) {
			return appended, nil
		})
	fx.activityRepo.EXPECT().
		CountActivityLogSince(ctx, userID, entity.ActionViewRecord, mock.AnythingOfType("time.Time")).
		Return(51, nil)

	fx.alertRepo.EXPECT().
		CreateSecurityAlert(ctx, mock.AnythingOfType("*entity.SecurityAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.SecurityAlert) error {
			alert.ID = uuid.New()

			assert.Equal(t, 60, alert.RiskScore)

			return nil
		})
	fx.audit.EXPECT().
		Log(ctx, entity.AuditSecurityAlertGenerated, mock.AnythingOfType("string"), mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).
		Return()

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionViewRecord,
		Device: "fresh-device",
	})

	require.NoError(t, err)
}

// A failing alert write must not fail the evaluation, and no audit entry is
// recorded for the alert that never landed.
func TestAnomalyService_TrackAndEvaluate_AlertWriteFailureIsSwallowed(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	var appended *entity.ActivityLog

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		RunAndReturn(func(_ context.Context, entry *entity.ActivityLog) error {
			entry.ID = uuid.New()
			appended = entry

			return nil
		})
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "fresh-device").
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ string) (*entity.ActivityLog, error) {
			return appended, nil
		})

	fx.alertRepo.EXPECT().
		CreateSecurityAlert(ctx, mock.AnythingOfType("*entity.SecurityAlert")).
		Return(errors.New("alerts table unavailable"))

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionLogin,
		Device: "fresh-device",
	})

	require.NoError(t, err)
}

// A failed append still evaluates: with no stored row at all the device
// lookup comes back empty and the device counts as unseen.
func TestAnomalyService_TrackAndEvaluate_AppendFailureStillEvaluates(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	fx.activityRepo.EXPECT().
		AppendActivityLog(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(errors.New("insert failed"))
	fx.activityRepo.EXPECT().
		FindFirstActivityLogByDevice(ctx, userID, "fresh-device").
		Return(nil, repository.ErrActivityLogNotFound)

	fx.alertRepo.EXPECT().
		CreateSecurityAlert(ctx, mock.AnythingOfType("*entity.SecurityAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.SecurityAlert) error {
			alert.ID = uuid.New()

			assert.Equal(t, 20, alert.RiskScore)

			return nil
		})
	fx.audit.EXPECT().
		Log(ctx, entity.AuditSecurityAlertGenerated, mock.AnythingOfType("string"), mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).
		Return()

	err := fx.service.TrackAndEvaluate(ctx, &service.ActivityEvent{
		UserID: userID.String(),
		Action: entity.ActionLogin,
		Device: "fresh-device",
	})

	require.NoError(t, err)
}

// Track publishes and evaluates off the caller's goroutine.
func TestAnomalyService_Track_PublishesAsynchronously(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	published := make(chan struct{})

	fx.publisher.EXPECT().
		PublishActivityEvent(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		RunAndReturn(func(_ context.Context, _ *service.ActivityEvent) error {
			close(published)

			return nil
		})

	// An unparsable user ID stops the evaluation right after the publish,
	// keeping this test free of repository expectations.
	fx.service.Track(context.Background(), &service.ActivityEvent{
		UserID: "not-a-uuid",
		Action: entity.ActionLogin,
	})

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("activity event was never published")
	}
}

func TestAnomalyService_Track_NilEventIsIgnored(t *testing.T) {
	fx := createTestAnomalyService(t, nil)

	fx.service.Track(context.Background(), nil)
}
