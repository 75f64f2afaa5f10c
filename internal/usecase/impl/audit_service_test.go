package impl

import (
	"context"
	"testing"

	"caregate/internal/domain/entity"
	mockRepo "caregate/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditService_Log_Success(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewAuditService(AuditServiceParams{
		AuditRepo: auditRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	auditRepo.EXPECT().
		CreateAuditLogEntry(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, entry *entity.AuditLog) error {
			assert.Equal(t, entity.AuditUserApproved, entry.Action)
			assert.Equal(t, "user/"+userID.String(), entry.Resource)
			assert.Equal(t, &userID, entry.UserID)
			assert.Equal(t, "203.0.113.7", entry.IP)

			return nil
		})

	service.Log(ctx, entity.AuditUserApproved, "user/"+userID.String(), &userID, "203.0.113.7")
}

func TestAuditService_Log_SystemActionWithoutUser(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewAuditService(AuditServiceParams{
		AuditRepo: auditRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()

	auditRepo.EXPECT().
		CreateAuditLogEntry(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, entry *entity.AuditLog) error {
			assert.Nil(t, entry.UserID)
			assert.Empty(t, entry.IP)

			return nil
		})

	service.Log(ctx, entity.AuditAccountAutoSuspended, "user/some-user", nil, "")
}

// The audit sink is best-effort: a failing write is logged and swallowed, it
// never propagates to the caller.
func TestAuditService_Log_WriteFailureIsSwallowed(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewAuditService(AuditServiceParams{
		AuditRepo: auditRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	auditRepo.EXPECT().
		CreateAuditLogEntry(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(errors.New("audit table unavailable"))

	service.Log(ctx, entity.AuditUserDeleted, "user/"+userID.String(), &userID, "203.0.113.7")
}
