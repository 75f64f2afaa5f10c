package impl

import (
	"context"
	"log/slog"

	deliverycontext "caregate/internal/delivery/context"
	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authzService implements the Authorizer interface as an ordered gate
// pipeline: approval, role, permission, attribute. The first denial wins and
// later gates are never evaluated, so a suspended doctor is told about the
// suspension, not about a missing assignment.
type authzService struct {
	assignmentRepo repository.AssignmentRepository
	logger         *slog.Logger
}

// AuthzServiceParams holds dependencies for AuthzService, injected by Fx.
type AuthzServiceParams struct {
	fx.In

	AssignmentRepo repository.AssignmentRepository
	Logger         *slog.Logger
}

// NewAuthzService is the constructor for authzService.
func NewAuthzService(params AuthzServiceParams) usecase.Authorizer {
	return &authzService{
		assignmentRepo: params.AssignmentRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authzService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize evaluates the gates in their fixed order.
func (srv *authzService) Authorize(ctx context.Context, principal *entity.Principal, check *usecase.AccessCheck) error {
	if principal == nil {
		return domainerrors.ErrInvalidToken
	}

	// Gate 1: approval. Admins carry StatusApproved by construction.
	if principal.Status != entity.StatusApproved {
		srv.log(ctx).Debug("Access denied by approval gate",
			slog.Any("principalID", principal.ID),
			slog.Any("status", principal.Status),
		)

		return domainerrors.ErrAccountNotApproved
	}

	// Gate 2: role.
	if len(check.AllowedRoles) > 0 && !check.AllowedRoles.Contains(principal.Role) {
		srv.log(ctx).Debug("Access denied by role gate",
			slog.Any("principalID", principal.ID),
			slog.Any("role", principal.Role),
		)

		return domainerrors.ErrForbiddenRole
	}

	// Gate 3: permission.
	if check.Permission != "" && !principal.HasPermission(check.Permission) {
		srv.log(ctx).Debug("Access denied by permission gate",
			slog.Any("principalID", principal.ID),
			slog.Any("permission", check.Permission),
		)

		return domainerrors.ErrMissingPermission
	}

	// Gate 4: attribute, only for patient-scoped resources.
	if check.PatientID != nil {
		if err := srv.checkPatientAttribute(ctx, principal, check); err != nil {
			return err
		}
	}

	return nil
}

func (srv *authzService) checkPatientAttribute(ctx context.Context, principal *entity.Principal, check *usecase.AccessCheck) error {
	switch principal.Role {
	case entity.RoleAdmin:
		// Admins bypass the attribute gate.
		return nil

	case entity.RolePatient:
		if principal.ID == *check.PatientID {
			return nil
		}

	case entity.RoleDoctor:
		assigned, err := srv.assignmentRepo.AssignmentExists(ctx, principal.ID, *check.PatientID)
		if err != nil {
			return errors.Wrap(err, "failed to check doctor-patient assignment")
		}
		if assigned {
			return nil
		}
	}

	srv.log(ctx).Debug("Access denied by attribute gate",
		slog.Any("principalID", principal.ID),
		slog.Any("patientID", *check.PatientID),
	)

	return domainerrors.ErrABACDenied
}
