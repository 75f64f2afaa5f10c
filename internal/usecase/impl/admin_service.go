package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "caregate/internal/delivery/context"
	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager        repository.TransactionManager
	adminRepo        repository.AdminRepository
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	assignmentRepo   repository.AssignmentRepository
	alertRepo        repository.SecurityAlertRepository
	auditRepo        repository.AuditLogRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	audit            usecase.AuditUsecase
	logger           *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AdminRepo        repository.AdminRepository
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	AssignmentRepo   repository.AssignmentRepository
	AlertRepo        repository.SecurityAlertRepository
	AuditRepo        repository.AuditLogRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Audit            usecase.AuditUsecase
	Logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:        params.TxManager,
		adminRepo:        params.AdminRepo,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		assignmentRepo:   params.AssignmentRepo,
		alertRepo:        params.AlertRepo,
		auditRepo:        params.AuditRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		audit:            params.Audit,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an administrator and issues admin-audience tokens.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("email", input.Email))

	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(admin.ID, entity.RoleAdmin, entity.AudienceAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin tokens")
	}

	session := &entity.RefreshToken{
		PrincipalID: admin.ID,
		Audience:    entity.AudienceAdmin,
		TokenHash:   srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt:   time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store admin refresh token")
	}

	srv.log(ctx).Debug("Admin logged in successfully", slog.Any("adminID", admin.ID))

	return &usecase.AdminLoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Admin:        admin,
	}, nil
}

// ListUsers lists user accounts, optionally filtered by approval status.
func (srv *adminService) ListUsers(ctx context.Context, status *entity.ApprovalStatus) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ApproveUser moves a user to APPROVED.
func (srv *adminService) ApproveUser(ctx context.Context, userID uuid.UUID) error {
	return srv.setUserStatus(ctx, userID, entity.StatusApproved, entity.AuditUserApproved)
}

// RejectUser moves a user to REJECTED.
func (srv *adminService) RejectUser(ctx context.Context, userID uuid.UUID) error {
	return srv.setUserStatus(ctx, userID, entity.StatusRejected, entity.AuditUserRejected)
}

// SuspendUser moves a user to SUSPENDED and ends their active sessions.
func (srv *adminService) SuspendUser(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if setErr := repoFactory.UserRepo().SetStatus(ctx, userID, entity.StatusSuspended); setErr != nil {
			if errors.Is(setErr, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(setErr, "failed to suspend user")
		}

		if delErr := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByPrincipalID(ctx, userID); delErr != nil {
			return errors.Wrap(delErr, "failed to revoke user sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to suspend user", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute suspend transaction")
	}

	srv.audit.Log(ctx, entity.AuditUserSuspended, "user/"+userID.String(), &userID, deliverycontext.GetClientIP(ctx))
	srv.log(ctx).Info("User suspended", slog.Any("userID", userID))

	return nil
}

// DeleteUser removes a user account. Dependent rows fall to the schema's
// cascades; this is an explicit, audited admin action.
func (srv *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.audit.Log(ctx, entity.AuditUserDeleted, "user/"+userID.String(), &userID, deliverycontext.GetClientIP(ctx))
	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}

func (srv *adminService) setUserStatus(ctx context.Context, userID uuid.UUID, status entity.ApprovalStatus, auditAction string) error {
	if err := srv.userRepo.SetStatus(ctx, userID, status); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update user status")
	}

	srv.audit.Log(ctx, auditAction, "user/"+userID.String(), &userID, deliverycontext.GetClientIP(ctx))
	srv.log(ctx).Info("User status updated", slog.Any("userID", userID), slog.Any("status", status))

	return nil
}

// AssignDoctor creates the doctor-patient edge that grants the doctor
// access to the patient's records.
func (srv *adminService) AssignDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		doctor, findErr := userRepo.FindByID(ctx, doctorID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("doctor not found")
			}

			return errors.Wrap(findErr, "failed to find doctor")
		}
		if doctor.Role != entity.RoleDoctor {
			return domainerrors.ErrValidationFailed.WrapMessage("assignee is not a doctor")
		}

		patient, findErr := userRepo.FindByID(ctx, patientID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("patient not found")
			}

			return errors.Wrap(findErr, "failed to find patient")
		}
		if patient.Role != entity.RolePatient {
			return domainerrors.ErrValidationFailed.WrapMessage("assignment target is not a patient")
		}

		assignment := &entity.DoctorPatientAssignment{DoctorID: doctorID, PatientID: patientID}
		if createErr := repoFactory.AssignmentRepo().CreateAssignment(ctx, assignment); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateAssignment) {
				return domainerrors.ErrAssignmentAlreadyExists
			}

			return errors.Wrap(createErr, "failed to create assignment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to assign doctor", slog.Any("doctorID", doctorID), slog.Any("patientID", patientID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute assignment transaction")
	}

	srv.audit.Log(ctx, entity.AuditAssignmentCreated, "assignment/"+doctorID.String()+"/"+patientID.String(), &doctorID, deliverycontext.GetClientIP(ctx))
	srv.log(ctx).Info("Doctor assigned", slog.Any("doctorID", doctorID), slog.Any("patientID", patientID))

	return nil
}

// UnassignDoctor removes the doctor-patient edge.
func (srv *adminService) UnassignDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error {
	if err := srv.assignmentRepo.DeleteAssignment(ctx, doctorID, patientID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete assignment")
	}

	srv.audit.Log(ctx, entity.AuditAssignmentDeleted, "assignment/"+doctorID.String()+"/"+patientID.String(), &doctorID, deliverycontext.GetClientIP(ctx))
	srv.log(ctx).Info("Doctor unassigned", slog.Any("doctorID", doctorID), slog.Any("patientID", patientID))

	return nil
}

// ListAlerts lists security alerts, optionally only unresolved ones.
func (srv *adminService) ListAlerts(ctx context.Context, unresolvedOnly bool) ([]*entity.SecurityAlert, error) {
	alerts, err := srv.alertRepo.ListSecurityAlerts(ctx, unresolvedOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list security alerts")
	}

	return alerts, nil
}

// ResolveAlert marks an alert as resolved. Resolution is terminal; resolving
// an already-resolved alert fails with a conflict.
func (srv *adminService) ResolveAlert(ctx context.Context, alertID uuid.UUID) error {
	alert, err := srv.alertRepo.FindSecurityAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrSecurityAlertNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find security alert")
	}
	if alert.Resolved {
		return domainerrors.ErrAlertAlreadyResolved
	}

	if err := srv.alertRepo.ResolveSecurityAlert(ctx, alertID); err != nil {
		if errors.Is(err, repository.ErrSecurityAlertNotFound) {
			// Lost the race against another resolver.
			return domainerrors.ErrAlertAlreadyResolved
		}

		return errors.Wrap(err, "failed to resolve security alert")
	}

	srv.audit.Log(ctx, entity.AuditAlertResolved, "alert/"+alertID.String(), &alert.UserID, deliverycontext.GetClientIP(ctx))
	srv.log(ctx).Info("Security alert resolved", slog.Any("alertID", alertID))

	return nil
}

// ListAuditLog lists the most recent audit entries, newest first.
func (srv *adminService) ListAuditLog(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	entries, err := srv.auditRepo.ListAuditLogEntries(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit log entries")
	}

	return entries, nil
}
