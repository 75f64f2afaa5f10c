package impl

import (
	"context"
	"testing"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	mockRepo "caregate/internal/mocks/repository"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authzServiceFixtures struct {
	service        usecase.Authorizer
	assignmentRepo *mockRepo.MockAssignmentRepository
}

func createTestAuthzService(t *testing.T) authzServiceFixtures {
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)

	service := NewAuthzService(AuthzServiceParams{
		AssignmentRepo: assignmentRepo,
		Logger:         newDiscardLogger(),
	})

	return authzServiceFixtures{
		service:        service,
		assignmentRepo: assignmentRepo,
	}
}

func newApprovedPrincipal(role entity.Role) *entity.Principal {
	return entity.NewUserPrincipal(&entity.User{
		ID:     uuid.New(),
		Email:  "someone@example.com",
		Role:   role,
		Status: entity.StatusApproved,
	})
}

func TestAuthzService_Authorize_NilPrincipal(t *testing.T) {
	fx := createTestAuthzService(t)

	err := fx.service.Authorize(context.Background(), nil, &usecase.AccessCheck{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

// A suspended doctor hitting a patient-scoped route must be told about the
// suspension: the approval gate runs first and the remaining gates are never
// consulted. The assignment repository mock carries no expectations, so any
// call into it fails the test.
func TestAuthzService_Authorize_ApprovalGateRunsFirst(t *testing.T) {
	fx := createTestAuthzService(t)

	patientID := uuid.New()
	principal := entity.NewUserPrincipal(&entity.User{
		ID:     uuid.New(),
		Role:   entity.RoleDoctor,
		Status: entity.StatusSuspended,
	})

	err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{
		AllowedRoles: entity.Roles{entity.RolePatient},
		Permission:   entity.PermissionRecordsRead,
		PatientID:    &patientID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotApproved))
	assert.False(t, errors.Is(err, domainerrors.ErrForbiddenRole))
}

func TestAuthzService_Authorize_PendingAccountDenied(t *testing.T) {
	fx := createTestAuthzService(t)

	principal := entity.NewUserPrincipal(&entity.User{
		ID:     uuid.New(),
		Role:   entity.RolePatient,
		Status: entity.StatusPending,
	})

	err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotApproved))
}

func TestAuthzService_Authorize_RoleGateBeforePermissionGate(t *testing.T) {
	fx := createTestAuthzService(t)

	principal := newApprovedPrincipal(entity.RolePatient)

	err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{
		AllowedRoles: entity.Roles{entity.RoleAdmin},
		Permission:   entity.PermissionUsersManage,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenRole))
	assert.False(t, errors.Is(err, domainerrors.ErrMissingPermission))
}

func TestAuthzService_Authorize_MissingPermission(t *testing.T) {
	fx := createTestAuthzService(t)

	principal := newApprovedPrincipal(entity.RolePatient)

	err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{
		AllowedRoles: entity.Roles{entity.RolePatient},
		Permission:   entity.PermissionUsersManage,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingPermission))
}

func TestAuthzService_Authorize_NoConstraintsAllows(t *testing.T) {
	fx := createTestAuthzService(t)

	principal := newApprovedPrincipal(entity.RolePatient)

	err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{})

	require.NoError(t, err)
}

func TestAuthzService_Authorize_AttributeGate(t *testing.T) {
	patientID := uuid.New()

	t.Run("patient reads own records", func(t *testing.T) {
		fx := createTestAuthzService(t)

		principal := entity.NewUserPrincipal(&entity.User{
			ID:     patientID,
			Role:   entity.RolePatient,
			Status: entity.StatusApproved,
		})

		err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{
			Permission: entity.PermissionRecordsRead,
			PatientID:  &patientID,
		})

		require.NoError(t, err)
	})

	t.Run("patient denied on another patient", func(t *testing.T) {
		fx := createTestAuthzService(t)

		principal := newApprovedPrincipal(entity.RolePatient)

		err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{
			Permission: entity.PermissionRecordsRead,
			PatientID:  &patientID,
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrABACDenied))
	})

	t.Run("assigned doctor allowed", func(t *testing.T) {
		fx := createTestAuthzService(t)

		ctx := context.Background()
		principal := newApprovedPrincipal(entity.RoleDoctor)

		fx.assignmentRepo.EXPECT().
			AssignmentExists(ctx, principal.ID, patientID).
			Return(true, nil)

		err := fx.service.Authorize(ctx, principal, &usecase.AccessCheck{
			Permission: entity.PermissionRecordsRead,
			PatientID:  &patientID,
		})

		require.NoError(t, err)
	})

	t.Run("unassigned doctor denied", func(t *testing.T) {
		fx := createTestAuthzService(t)

		ctx := context.Background()
		principal := newApprovedPrincipal(entity.RoleDoctor)

		fx.assignmentRepo.EXPECT().
			AssignmentExists(ctx, principal.ID, patientID).
			Return(false, nil)

		err := fx.service.Authorize(ctx, principal, &usecase.AccessCheck{
			Permission: entity.PermissionRecordsRead,
			PatientID:  &patientID,
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrABACDenied))
	})

	t.Run("admin bypasses attribute gate", func(t *testing.T) {
		fx := createTestAuthzService(t)

		principal := entity.NewAdminPrincipal(&entity.Admin{
			ID:    uuid.New(),
			Email: "admin@example.com",
		})

		err := fx.service.Authorize(context.Background(), principal, &usecase.AccessCheck{
			Permission: entity.PermissionRecordsRead,
			PatientID:  &patientID,
		})

		require.NoError(t, err)
	})

	t.Run("assignment lookup failure is not a policy denial", func(t *testing.T) {
		fx := createTestAuthzService(t)

		ctx := context.Background()
		principal := newApprovedPrincipal(entity.RoleDoctor)

		fx.assignmentRepo.EXPECT().
			AssignmentExists(ctx, principal.ID, patientID).
			Return(false, errors.New("connection reset"))

		err := fx.service.Authorize(ctx, principal, &usecase.AccessCheck{
			Permission: entity.PermissionRecordsRead,
			PatientID:  &patientID,
		})

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrABACDenied))
	})
}
