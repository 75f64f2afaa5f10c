package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"caregate/config"
	deliverycontext "caregate/internal/delivery/context"
	"caregate/internal/domain/constants"
	"caregate/internal/domain/entity"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Default anomaly policy, applied when no configuration is present.
const (
	defaultAnomalyWindow       = 5 * time.Minute
	defaultNewDeviceScore      = 20
	defaultForbiddenThreshold  = 3
	defaultForbiddenScore      = 25
	defaultMassAccessThreshold = 50
	defaultMassAccessScore     = 40
	defaultSuspendThreshold    = 150
)

// anomalyService implements the ActivityUsecase interface: the rule-based
// anomaly detection engine. Evaluation is strictly out-of-band; nothing in
// here may fail the request that produced the event.
type anomalyService struct {
	txManager        repository.TransactionManager
	activityRepo     repository.ActivityLogRepository
	alertRepo        repository.SecurityAlertRepository
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	audit            usecase.AuditUsecase
	publisher        service.EventPublisher
	policy           config.AnomalyConfig
	logger           *slog.Logger
}

// AnomalyServiceParams holds dependencies for AnomalyService, injected by Fx.
type AnomalyServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ActivityRepo     repository.ActivityLogRepository
	AlertRepo        repository.SecurityAlertRepository
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Audit            usecase.AuditUsecase
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAnomalyService is the constructor for anomalyService.
func NewAnomalyService(params AnomalyServiceParams) usecase.ActivityUsecase {
	policy := config.AnomalyConfig{
		Window:              defaultAnomalyWindow,
		NewDeviceScore:      defaultNewDeviceScore,
		ForbiddenThreshold:  defaultForbiddenThreshold,
		ForbiddenScore:      defaultForbiddenScore,
		MassAccessThreshold: defaultMassAccessThreshold,
		MassAccessScore:     defaultMassAccessScore,
		SuspendThreshold:    defaultSuspendThreshold,
	}
	if params.Config != nil && params.Config.Anomaly != nil {
		policy = *params.Config.Anomaly
	}

	return &anomalyService{
		txManager:        params.TxManager,
		activityRepo:     params.ActivityRepo,
		alertRepo:        params.AlertRepo,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		audit:            params.Audit,
		publisher:        params.Publisher,
		policy:           policy,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *anomalyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Track publishes the event for downstream consumers and runs the local
// evaluation on a detached goroutine. The caller's request completes
// independently of everything that happens here.
func (srv *anomalyService) Track(ctx context.Context, event *service.ActivityEvent) {
	if event == nil {
		return
	}

	// The evaluation must survive the end of the originating request.
	detached := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				srv.logger.Error("Panic during activity evaluation", slog.Any("panic", r))
			}
		}()

		if err := srv.publisher.PublishActivityEvent(detached, event); err != nil {
			srv.logger.Warn("Failed to publish activity event", slog.Any("error", err))
		}

		if err := srv.TrackAndEvaluate(detached, event); err != nil {
			srv.logger.Error("Activity evaluation failed",
				slog.String("user_id", event.UserID),
				slog.String("action", event.Action),
				slog.Any("error", err),
			)
		}
	}()
}

// TrackAndEvaluate appends the event to the activity log and scores it
// against the detection rules. Rule scores are additive within a single
// evaluation; a positive aggregate raises an alert and an aggregate above
// the suspension threshold suspends the account on the spot.
func (srv *anomalyService) TrackAndEvaluate(ctx context.Context, event *service.ActivityEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user ID in activity event")
	}

	entry := &entity.ActivityLog{
		UserID:   userID,
		Action:   event.Action,
		Resource: event.Resource,
		IP:       event.IP,
		Device:   normalizeDevice(event.Device),
	}

	// Append first: the rolling-window counts below must include the
	// current event. A failed append is logged and evaluation continues on
	// whatever window state exists.
	if appendErr := srv.activityRepo.AppendActivityLog(ctx, entry); appendErr != nil {
		srv.log(ctx).Error("Failed to append activity log entry", slog.Any("error", appendErr))
	}

	score, reasons := srv.evaluateRules(ctx, entry)
	if score <= 0 {
		return nil
	}

	reason := strings.Join(reasons, "; ")
	srv.log(ctx).Warn("Suspicious activity detected",
		slog.Any("userID", userID),
		slog.Int("risk_score", score),
		slog.String("reason", reason),
	)

	alert := &entity.SecurityAlert{
		UserID:    userID,
		RiskScore: score,
		Reason:    reason,
	}
	if alertErr := srv.alertRepo.CreateSecurityAlert(ctx, alert); alertErr != nil {
		srv.log(ctx).Error("Failed to create security alert", slog.Any("error", alertErr))
	} else {
		srv.audit.Log(ctx, entity.AuditSecurityAlertGenerated, "alert/"+alert.ID.String(), &userID, event.IP)
	}

	if score > srv.policy.SuspendThreshold {
		srv.suspend(ctx, userID, event.IP)
	}

	return nil
}

// evaluateRules scores a single observation. Each rule contributes
// independently; the aggregate is the sum of all triggered rules.
func (srv *anomalyService) evaluateRules(ctx context.Context, entry *entity.ActivityLog) (int, []string) {
	score := 0
	var reasons []string

	since := time.Now().Add(-srv.policy.Window)

	if srv.isNewDevice(ctx, entry) {
		score += srv.policy.NewDeviceScore
		reasons = append(reasons, "activity from a previously unseen device")
	}

	// The windowed rules only fire on an event of their own kind; the
	// current event is part of the window it is judged against.
	if entry.Action == entity.ActionForbiddenAccess {
		if count, err := srv.activityRepo.CountActivityLogSince(ctx, entry.UserID, entity.ActionForbiddenAccess, since); err != nil {
			srv.log(ctx).Error("Failed to count forbidden-access events", slog.Any("error", err))
		} else if count > srv.policy.ForbiddenThreshold {
			score += srv.policy.ForbiddenScore
			reasons = append(reasons, "repeated forbidden access attempts")
		}
	}

	if entry.Action == entity.ActionViewRecord {
		if count, err := srv.activityRepo.CountActivityLogSince(ctx, entry.UserID, entity.ActionViewRecord, since); err != nil {
			srv.log(ctx).Error("Failed to count record-view events", slog.Any("error", err))
		} else if count > srv.policy.MassAccessThreshold {
			score += srv.policy.MassAccessScore
			reasons = append(reasons, "mass record access")
		}
	}

	return score, reasons
}

// isNewDevice reports whether the entry's device has never been seen for
// this user before this evaluation. The unknown placeholder never counts as
// a device.
func (srv *anomalyService) isNewDevice(ctx context.Context, entry *entity.ActivityLog) bool {
	if entry.Device == constants.UnknownDevice {
		return false
	}

	first, err := srv.activityRepo.FindFirstActivityLogByDevice(ctx, entry.UserID, entry.Device)
	if err != nil {
		if errors.Is(err, repository.ErrActivityLogNotFound) {
			// No row at all: the append above failed, so there is no prior
			// sighting either.
			return true
		}
		srv.log(ctx).Error("Failed to look up device history", slog.Any("error", err))

		return false
	}

	// The earliest sighting being the entry we just appended means no prior
	// activity from this device existed.
	return first.ID == entry.ID
}

// suspend sets the account to SUSPENDED, revokes its sessions and writes the
// auto-suspension audit entry. Only an administrator can restore access.
func (srv *anomalyService) suspend(ctx context.Context, userID uuid.UUID, ip string) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if setErr := repoFactory.UserRepo().SetStatus(ctx, userID, entity.StatusSuspended); setErr != nil {
			return errors.Wrap(setErr, "failed to set suspended status")
		}

		if delErr := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByPrincipalID(ctx, userID); delErr != nil {
			return errors.Wrap(delErr, "failed to revoke sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to auto-suspend account", slog.Any("userID", userID), slog.Any("error", err))

		return
	}

	srv.audit.Log(ctx, entity.AuditAccountAutoSuspended, "user/"+userID.String(), &userID, ip)
	srv.log(ctx).Warn("Account auto-suspended", slog.Any("userID", userID))
}

func normalizeDevice(device string) string {
	if device == "" {
		return constants.UnknownDevice
	}

	return device
}
