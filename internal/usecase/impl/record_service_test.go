package impl

import (
	"context"
	"testing"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
	mockRepo "caregate/internal/mocks/repository"
	mockUC "caregate/internal/mocks/usecase"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordServiceFixtures struct {
	service    usecase.RecordUsecase
	recordRepo *mockRepo.MockRecordRepository
	authorizer *mockUC.MockAuthorizer
	activity   *mockUC.MockActivityUsecase
}

func createTestRecordService(t *testing.T) recordServiceFixtures {
	recordRepo := mockRepo.NewMockRecordRepository(t)
	authorizer := mockUC.NewMockAuthorizer(t)
	activity := mockUC.NewMockActivityUsecase(t)

	service := NewRecordService(RecordServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		RecordRepo: recordRepo,
		Authorizer: authorizer,
		Activity:   activity,
		Logger:     newDiscardLogger(),
	})

	return recordServiceFixtures{
		service:    service,
		recordRepo: recordRepo,
		authorizer: authorizer,
		activity:   activity,
	}
}

func TestRecordService_GetPatientProfile_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RolePatient)
	profile := &entity.PatientProfile{PatientID: patientID, BloodType: "O+"}

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		RunAndReturn(func(_ context.Context, _ *entity.Principal, check *usecase.AccessCheck) error {
			assert.Equal(t, entity.PermissionRecordsRead, check.Permission)
			require.NotNil(t, check.PatientID)
			assert.Equal(t, patientID, *check.PatientID)

			return nil
		})
	fx.recordRepo.EXPECT().FindPatientProfile(ctx, patientID).Return(profile, nil)
	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(_ context.Context, event *service.ActivityEvent) {
			assert.Equal(t, entity.ActionViewRecord, event.Action)
			assert.Equal(t, principal.ID.String(), event.UserID)
			assert.Equal(t, "patient/"+patientID.String()+"/profile", event.Resource)
		}).
		Return()

	got, err := fx.service.GetPatientProfile(ctx, principal, patientID)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

// A missing profile is reported after the authorization pipeline has passed,
// and no view event is recorded for data that was never served.
func TestRecordService_GetPatientProfile_NotFound(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RolePatient)

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		Return(nil)
	fx.recordRepo.EXPECT().
		FindPatientProfile(ctx, patientID).
		Return(nil, repository.ErrRecordNotFound)

	got, err := fx.service.GetPatientProfile(ctx, principal, patientID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

// An authorization denial surfaces to the caller and lands in the activity
// log as FORBIDDEN_ACCESS, feeding the repeated-denial rule.
func TestRecordService_ListLabResults_DenialIsTracked(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RoleDoctor)

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		Return(domainerrors.ErrABACDenied)
	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(_ context.Context, event *service.ActivityEvent) {
			assert.Equal(t, entity.ActionForbiddenAccess, event.Action)
			assert.Equal(t, "patient/"+patientID.String()+"/labs", event.Resource)
		}).
		Return()

	results, err := fx.service.ListLabResults(ctx, principal, patientID)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, domainerrors.ErrABACDenied))
}

// An infrastructure failure inside the pipeline is not user behavior: the
// error surfaces but no FORBIDDEN_ACCESS event is emitted. The activity mock
// carries no expectations, so tracking it would fail the test.
func TestRecordService_ListLabResults_InfraFailureNotTracked(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RoleDoctor)

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		Return(errors.New("connection reset"))

	results, err := fx.service.ListLabResults(ctx, principal, patientID)

	require.Error(t, err)
	assert.Nil(t, results)
}

func TestRecordService_ListPrescriptions_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RoleDoctor)
	expected := []*entity.Prescription{{ID: uuid.New(), PatientID: patientID}}

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		Return(nil)
	fx.recordRepo.EXPECT().ListPrescriptions(ctx, patientID).Return(expected, nil)
	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return()

	prescriptions, err := fx.service.ListPrescriptions(ctx, principal, patientID)

	require.NoError(t, err)
	assert.Equal(t, expected, prescriptions)
}

// The prescribing doctor comes from the authenticated principal, never from
// the request body.
func TestRecordService_CreatePrescription_Success(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RoleDoctor)

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		RunAndReturn(func(_ context.Context, _ *entity.Principal, check *usecase.AccessCheck) error {
			assert.Equal(t, entity.Roles{entity.RoleDoctor}, check.AllowedRoles)
			assert.Equal(t, entity.PermissionPrescriptionsWrite, check.Permission)

			return nil
		})
	fx.recordRepo.EXPECT().
		CreatePrescription(ctx, mock.AnythingOfType("*entity.Prescription")).
		RunAndReturn(func(_ context.Context, prescription *entity.Prescription) error {
			prescription.ID = uuid.New()

			return nil
		})

	prescription, err := fx.service.CreatePrescription(ctx, principal, &usecase.CreatePrescriptionInput{
		PatientID: patientID,
		Drug:      "Amoxicillin",
		Dosage:    "500mg three times daily",
	})

	require.NoError(t, err)
	require.NotNil(t, prescription)
	assert.Equal(t, principal.ID, prescription.DoctorID)
	assert.Equal(t, patientID, prescription.PatientID)
}

func TestRecordService_CreatePrescription_DenialIsTracked(t *testing.T) {
	fx := createTestRecordService(t)

	ctx := context.Background()
	patientID := uuid.New()
	principal := newApprovedPrincipal(entity.RolePatient)

	fx.authorizer.EXPECT().
		Authorize(ctx, principal, mock.AnythingOfType("*usecase.AccessCheck")).
		Return(domainerrors.ErrForbiddenRole)
	fx.activity.EXPECT().
		Track(ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(_ context.Context, event *service.ActivityEvent) {
			assert.Equal(t, entity.ActionForbiddenAccess, event.Action)
		}).
		Return()

	prescription, err := fx.service.CreatePrescription(ctx, principal, &usecase.CreatePrescriptionInput{
		PatientID: patientID,
		Drug:      "Amoxicillin",
		Dosage:    "500mg",
	})

	require.Error(t, err)
	assert.Nil(t, prescription)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenRole))
}
