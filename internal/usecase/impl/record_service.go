package impl

import (
	"context"
	"log/slog"

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

// recordUserRoles are the end-user roles admitted to patient record routes.
// Admins reach the same data through the attribute-gate bypass.
var recordUserRoles = entity.Roles{entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient}

// recordService implements the RecordUsecase interface. Every operation
// first runs the authorization pipeline; denials emit a FORBIDDEN_ACCESS
// activity event, successful reads emit VIEW_RECORD.
type recordService struct {
	txManager  repository.TransactionManager
	recordRepo repository.RecordRepository
	authorizer usecase.Authorizer
	activity   usecase.ActivityUsecase
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for RecordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecordRepo repository.RecordRepository
	Authorizer usecase.Authorizer
	Activity   usecase.ActivityUsecase
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		txManager:  params.TxManager,
		recordRepo: params.RecordRepo,
		authorizer: params.Authorizer,
		activity:   params.Activity,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPatientProfile returns the patient's medical profile.
func (srv *recordService) GetPatientProfile(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) (*entity.PatientProfile, error) {
	resource := "patient/" + patientID.String() + "/profile"

	if err := srv.authorizeRead(ctx, principal, patientID, resource); err != nil {
		return nil, err
	}

	profile, err := srv.recordRepo.FindPatientProfile(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient profile")
	}

	srv.track(ctx, principal, entity.ActionViewRecord, resource)

	return profile, nil
}

// ListLabResults returns the patient's lab results, newest first.
func (srv *recordService) ListLabResults(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) ([]*entity.LabResult, error) {
	resource := "patient/" + patientID.String() + "/labs"

	if err := srv.authorizeRead(ctx, principal, patientID, resource); err != nil {
		return nil, err
	}

	results, err := srv.recordRepo.ListLabResults(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lab results")
	}

	srv.track(ctx, principal, entity.ActionViewRecord, resource)

	return results, nil
}

// ListPrescriptions returns the patient's prescriptions, newest first.
func (srv *recordService) ListPrescriptions(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) ([]*entity.Prescription, error) {
	resource := "patient/" + patientID.String() + "/prescriptions"

	if err := srv.authorizeRead(ctx, principal, patientID, resource); err != nil {
		return nil, err
	}

	prescriptions, err := srv.recordRepo.ListPrescriptions(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	srv.track(ctx, principal, entity.ActionViewRecord, resource)

	return prescriptions, nil
}

// CreatePrescription writes a prescription for an assigned patient. The
// prescribing doctor is taken from the principal, never from the input.
func (srv *recordService) CreatePrescription(ctx context.Context, principal *entity.Principal, input *usecase.CreatePrescriptionInput) (*entity.Prescription, error) {
	resource := "patient/" + input.PatientID.String() + "/prescriptions"

	check := &usecase.AccessCheck{
		AllowedRoles: entity.Roles{entity.RoleDoctor},
		Permission:   entity.PermissionPrescriptionsWrite,
		PatientID:    &input.PatientID,
	}
	if err := srv.authorizer.Authorize(ctx, principal, check); err != nil {
		srv.trackDenied(ctx, principal, resource, err)

		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID: input.PatientID,
		DoctorID:  principal.ID,
		Drug:      input.Drug,
		Dosage:    input.Dosage,
		Notes:     input.Notes,
	}

	if err := srv.recordRepo.CreatePrescription(ctx, prescription); err != nil {
		return nil, errors.Wrap(err, "failed to create prescription")
	}

	srv.log(ctx).Info("Prescription created",
		slog.Any("doctorID", principal.ID),
		slog.Any("patientID", input.PatientID),
	)

	return prescription, nil
}

func (srv *recordService) authorizeRead(ctx context.Context, principal *entity.Principal, patientID uuid.UUID, resource string) error {
	check := &usecase.AccessCheck{
		AllowedRoles: recordUserRoles,
		Permission:   entity.PermissionRecordsRead,
		PatientID:    &patientID,
	}

	if err := srv.authorizer.Authorize(ctx, principal, check); err != nil {
		srv.trackDenied(ctx, principal, resource, err)

		return err
	}

	return nil
}

// trackDenied records a FORBIDDEN_ACCESS event for authorization denials.
// Infrastructure failures from the attribute gate are not user behavior and
// are not tracked.
func (srv *recordService) trackDenied(ctx context.Context, principal *entity.Principal, resource string, denial error) {
	var appErr domainerrors.AppError
	if !errors.As(denial, &appErr) {
		return
	}

	srv.track(ctx, principal, entity.ActionForbiddenAccess, resource)
}

func (srv *recordService) track(ctx context.Context, principal *entity.Principal, action, resource string) {
	srv.activity.Track(ctx, &service.ActivityEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    principal.ID.String(),
		Action:    action,
		Resource:  resource,
		IP:        deliverycontext.GetClientIP(ctx),
		Device:    deliverycontext.GetDevice(ctx),
	})
}
