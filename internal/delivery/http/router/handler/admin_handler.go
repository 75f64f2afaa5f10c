package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"caregate/internal/delivery/http/response"
	"caregate/internal/domain/entity"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultAuditLogLimit caps an audit listing when the client gives no limit.
const defaultAuditLogLimit = 100

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for administrator handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// AssignDoctorRequest represents the request body for creating a
// doctor-patient assignment.
type AssignDoctorRequest struct {
	DoctorID  string `json:"doctor_id" validate:"required,uuid"`
	PatientID string `json:"patient_id" validate:"required,uuid"`
}

// AdminResponse is the serialized form of an administrator account.
type AdminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminLoginResponse carries the admin token pair and account.
type AdminLoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Admin        AdminResponse `json:"admin"`
}

// SecurityAlertResponse is the serialized form of a security alert.
type SecurityAlertResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RiskScore int       `json:"risk_score"`
	Reason    string    `json:"reason"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLogResponse is the serialized form of an audit entry.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	UserID    *string   `json:"user_id,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toSecurityAlertResponse(alert *entity.SecurityAlert) SecurityAlertResponse {
	return SecurityAlertResponse{
		ID:        alert.ID.String(),
		UserID:    alert.UserID.String(),
		RiskScore: alert.RiskScore,
		Reason:    alert.Reason,
		Resolved:  alert.Resolved,
		CreatedAt: alert.CreatedAt,
	}
}

func toAuditLogResponse(entry *entity.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:        entry.ID.String(),
		Action:    entry.Action,
		Resource:  entry.Resource,
		IP:        entry.IP,
		CreatedAt: entry.CreatedAt,
	}
	if entry.UserID != nil {
		userID := entry.UserID.String()
		resp.UserID = &userID
	}

	return resp
}

// Login authenticates an administrator and issues admin-audience tokens.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.adminUC.Login(c.Request().Context(), &usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AdminLoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Admin: AdminResponse{
			ID:    output.Admin.ID.String(),
			Name:  output.Admin.Name,
			Email: output.Admin.Email,
		},
	}, "Login successful")
}

// ListUsers lists user accounts, optionally filtered by ?status=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var status *entity.ApprovalStatus
	if raw := c.QueryParam("status"); raw != "" {
		candidate := entity.ApprovalStatus(raw)
		if !candidate.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown approval status")
		}
		status = &candidate
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ApproveUser moves a user to APPROVED.
func (h *AdminHandler) ApproveUser(c echo.Context) error {
	return h.userAction(c, h.adminUC.ApproveUser, "User approved")
}

// RejectUser moves a user to REJECTED.
func (h *AdminHandler) RejectUser(c echo.Context) error {
	return h.userAction(c, h.adminUC.RejectUser, "User rejected")
}

// SuspendUser moves a user to SUSPENDED and revokes their sessions.
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	return h.userAction(c, h.adminUC.SuspendUser, "User suspended")
}

// DeleteUser removes a user account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	return h.userAction(c, h.adminUC.DeleteUser, "User deleted")
}

func (h *AdminHandler) userAction(c echo.Context, action func(ctx context.Context, userID uuid.UUID) error, message string) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := action(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// AssignDoctor creates a doctor-patient assignment.
func (h *AdminHandler) AssignDoctor(c echo.Context) error {
	var req AssignDoctorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid doctor ID")
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	if err := h.adminUC.AssignDoctor(c.Request().Context(), doctorID, patientID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Doctor assigned")
}

// UnassignDoctor removes a doctor-patient assignment.
func (h *AdminHandler) UnassignDoctor(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("doctorID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid doctor ID")
	}
	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	if err := h.adminUC.UnassignDoctor(c.Request().Context(), doctorID, patientID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Doctor unassigned")
}

// ListAlerts lists security alerts; ?unresolved=true narrows to open ones.
func (h *AdminHandler) ListAlerts(c echo.Context) error {
	unresolvedOnly := c.QueryParam("unresolved") == "true"

	alerts, err := h.adminUC.ListAlerts(c.Request().Context(), unresolvedOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]SecurityAlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		items = append(items, toSecurityAlertResponse(alert))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ResolveAlert marks an alert as resolved.
func (h *AdminHandler) ResolveAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	if err := h.adminUC.ResolveAlert(c.Request().Context(), alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Alert resolved")
}

// ListAuditLog returns the most recent audit entries, newest first.
func (h *AdminHandler) ListAuditLog(c echo.Context) error {
	limit := defaultAuditLogLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
		}
		limit = parsed
	}

	entries, err := h.adminUC.ListAuditLog(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toAuditLogResponse(entry))
	}

	return response.Success(c, http.StatusOK, items, "")
}
