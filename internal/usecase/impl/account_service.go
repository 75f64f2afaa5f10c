// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"caregate/config"
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

const defaultVerificationTokenTTL = 24 * time.Hour

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.Mailer
	activity         usecase.ActivityUsecase
	verificationTTL  time.Duration
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Activity         usecase.ActivityUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	verificationTTL := defaultVerificationTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerificationTokenTTL > 0 {
		verificationTTL = params.Config.Auth.VerificationTokenTTL
	}

	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		activity:         params.Activity,
		verificationTTL:  verificationTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPatient registers a new patient account. The account starts
// pending and unverified; a patient profile shell is created alongside it.
func (srv *accountService) RegisterPatient(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RolePatient)
}

// RegisterDoctor registers a new doctor account. The account starts pending
// and unverified; becoming usable requires email verification and an
// administrator's approval.
func (srv *accountService) RegisterDoctor(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleDoctor)
}

func (srv *accountService) register(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	// 1. Hash password outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	rawToken, err := generateOpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       entity.StatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 2. Reject duplicate emails. The unique constraint backs this up
		// against races; the explicit lookup gives the clean error path.
		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		// 3. Patients get an empty medical profile shell up front.
		if role == entity.RolePatient {
			profile := &entity.PatientProfile{PatientID: newUser.ID}
			if profileErr := repoFactory.RecordRepo().UpsertPatientProfile(ctx, profile); profileErr != nil {
				return errors.Wrap(profileErr, "failed to create patient profile")
			}
		}

		// 4. Issue the verification token, replacing any prior ones.
		return srv.issueVerificationToken(ctx, repoFactory.VerificationTokenRepo(), newUser.ID, rawToken)
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// 5. Hand the raw token to the mailer outside the transaction. Delivery
	// failure does not undo the registration; the user can request a resend.
	if mailErr := srv.mailer.SendVerificationEmail(ctx, newUser.Email, rawToken); mailErr != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.String("email", newUser.Email), slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func (srv *accountService) issueVerificationToken(ctx context.Context, tokenRepo repository.VerificationTokenRepository, userID uuid.UUID, rawToken string) error {
	if err := tokenRepo.DeleteVerificationTokensByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete prior verification tokens")
	}

	verificationToken := &entity.VerificationToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(rawToken),
		ExpiresAt: time.Now().Add(srv.verificationTTL),
	}
	if err := tokenRepo.CreateVerificationToken(ctx, verificationToken); err != nil {
		return errors.Wrap(err, "failed to create verification token")
	}

	return nil
}

// VerifyEmail redeems a one-time verification token and marks the account's
// email as verified. The token is deleted whether it verifies or turns out
// to be expired.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) error {
	srv.log(ctx).Debug("Verifying email")

	tokenHash := srv.tokenService.HashToken(token)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.VerificationTokenRepo()
		userRepo := repoFactory.UserRepo()

		record, findErr := tokenRepo.FindVerificationTokenByHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrVerificationTokenNotFound) {
				return domainerrors.ErrVerificationTokenInvalid
			}

			return errors.Wrap(findErr, "failed to find verification token")
		}

		if record.Expired(time.Now()) {
			if delErr := tokenRepo.DeleteVerificationToken(ctx, record.ID); delErr != nil {
				return errors.Wrap(delErr, "failed to delete expired verification token")
			}

			return domainerrors.ErrVerificationTokenInvalid
		}

		user, userErr := userRepo.FindByID(ctx, record.UserID)
		if userErr != nil {
			return errors.Wrap(userErr, "failed to find user for verification token")
		}
		if user.EmailVerified {
			return domainerrors.ErrAlreadyVerified
		}

		if setErr := userRepo.SetEmailVerified(ctx, user.ID); setErr != nil {
			return errors.Wrap(setErr, "failed to mark email verified")
		}

		if delErr := tokenRepo.DeleteVerificationToken(ctx, record.ID); delErr != nil {
			return errors.Wrap(delErr, "failed to delete redeemed verification token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	srv.log(ctx).Info("Email verified")

	return nil
}

// Login orchestrates the user login process. Pending, rejected and suspended
// accounts may still log in: the tokens they receive carry no usable access
// because every protected route re-checks approval.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Role, entity.AudienceUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, user.ID, entity.AudienceUser, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.activity.Track(ctx, &service.ActivityEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Action:    entity.ActionLogin,
		Resource:  "auth/login",
		IP:        input.IP,
		Device:    input.Device,
	})

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// RefreshToken rotates a session: the presented refresh token is consumed
// exactly once and a fresh token pair is issued. A second redemption of the
// same token, concurrent or later, fails with ErrTokenConsumed.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to rotate refresh token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken, entity.AudienceUser)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.RefreshTokenOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		// 1. Consume the presented token. The delete is the atomic claim:
		// whichever concurrent redemption deletes the row wins, every other
		// one sees no row and fails here.
		consumed, consumeErr := refreshRepo.ConsumeRefreshTokenByHash(ctx, tokenHash)
		if consumeErr != nil {
			if errors.Is(consumeErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrTokenConsumed
			}

			return errors.Wrap(consumeErr, "failed to consume refresh token")
		}

		// 2. A consumed-but-expired token grants nothing; the row is already
		// gone, which is the desired end state for expired sessions anyway.
		if consumed.ExpiresAt.Before(time.Now()) {
			return domainerrors.ErrExpiredToken
		}

		user, userErr := userRepo.FindByID(ctx, claims.PrincipalID)
		if userErr != nil {
			if errors.Is(userErr, repository.ErrUserNotFound) {
				return domainerrors.ErrPrincipalNotFound
			}

			return errors.Wrap(userErr, "failed to find user")
		}

		// 3. Issue the replacement pair and persist the new session row in
		// the same transaction as the delete.
		newAccessToken, newRefreshToken, genErr := srv.tokenService.GenerateTokens(user.ID, user.Role, entity.AudienceUser)
		if genErr != nil {
			return errors.Wrap(genErr, "failed to generate new tokens")
		}

		newSession := &entity.RefreshToken{
			PrincipalID: user.ID,
			Audience:    entity.AudienceUser,
			TokenHash:   srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt:   time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}
		if createErr := refreshRepo.CreateRefreshToken(ctx, newSession); createErr != nil {
			return errors.Wrap(createErr, "failed to store rotated refresh token")
		}

		output = &usecase.RefreshTokenOutput{
			AccessToken:  newAccessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Refresh token rotation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	srv.activity.Track(ctx, &service.ActivityEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    claims.PrincipalID.String(),
		Action:    entity.ActionTokenRefresh,
		Resource:  "auth/refresh",
		IP:        input.IP,
		Device:    input.Device,
	})

	return output, nil
}

// Logout invalidates a session by deleting its refresh token row. Unknown
// tokens are treated as already logged out.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken, entity.AudienceUser); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout for unknown session, treating as success")

			return nil
		}

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetAccount returns the account of the given user. Available to the
// account holder regardless of approval status.
func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *accountService) storeRefreshToken(ctx context.Context, principalID uuid.UUID, audience entity.Audience, rawToken string) error {
	session := &entity.RefreshToken{
		PrincipalID: principalID,
		Audience:    audience,
		TokenHash:   srv.tokenService.HashToken(rawToken),
		ExpiresAt:   time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// generateOpaqueToken returns a 256-bit random token in hex form, used for
// email verification links.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}
