package middleware

import (
	"net/http"
	"strings"

	deliverycontext "caregate/internal/delivery/context"
	"caregate/internal/delivery/http/response"
	"caregate/internal/domain/entity"
	"caregate/internal/domain/repository"
	"caregate/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderXDeviceID carries the client's self-reported device identifier.
const HeaderXDeviceID = "X-Device-Id"

// AuthMiddleware authenticates requests against one of the two token
// audiences and resolves the caller into a Principal. The principal is
// rebuilt from the database on every request so that approval-status changes
// take effect immediately regardless of what the token claims.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc  service.TokenService
	UserRepo  repository.UserRepository
	AdminRepo repository.AdminRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:  params.TokenSvc,
		userRepo:  params.UserRepo,
		adminRepo: params.AdminRepo,
	}
}

// AuthenticateUser validates a user-audience access token and attaches the
// resolved Principal to the request context.
func (m *AuthMiddleware) AuthenticateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.validateBearer(c, entity.AudienceUser)
		if err != nil {
			return err
		}

		user, findErr := m.userRepo.FindByID(c.Request().Context(), claims.PrincipalID)
		if findErr != nil {
			return response.Unauthorized(c, "PRINCIPAL_NOT_FOUND", "Account no longer exists")
		}

		attachPrincipal(c, entity.NewUserPrincipal(user))

		return next(c)
	}
}

// AuthenticateAdmin validates an admin-audience access token. A user token,
// whatever its role claim says, never passes here: it is signed with a
// different secret.
func (m *AuthMiddleware) AuthenticateAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.validateBearer(c, entity.AudienceAdmin)
		if err != nil {
			return err
		}

		admin, findErr := m.adminRepo.FindByID(c.Request().Context(), claims.PrincipalID)
		if findErr != nil {
			return response.Unauthorized(c, "PRINCIPAL_NOT_FOUND", "Account no longer exists")
		}

		attachPrincipal(c, entity.NewAdminPrincipal(admin))

		return next(c)
	}
}

func (m *AuthMiddleware) validateBearer(c echo.Context, audience entity.Audience) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString, audience)
	if err != nil {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	return claims, nil
}

// attachPrincipal stores the principal and the request's client attributes on
// the request context for the usecase layer.
func attachPrincipal(c echo.Context, principal *entity.Principal) {
	ctx := c.Request().Context()
	ctx = deliverycontext.WithPrincipal(ctx, principal)
	ctx = deliverycontext.WithClientIP(ctx, c.RealIP())
	ctx = deliverycontext.WithDevice(ctx, c.Request().Header.Get(HeaderXDeviceID))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetPrincipal returns the principal attached by the authenticate middleware.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal := deliverycontext.GetPrincipal(c.Request().Context())
	if principal == nil {
		return nil, false
	}

	return principal, true
}

// RequireAdmin rejects non-admin principals. It must be used AFTER
// AuthenticateAdmin; it exists as a second line for routes mounted under the
// admin group.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsAdmin() {
			return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied", "")
		}

		return next(c)
	}
}
