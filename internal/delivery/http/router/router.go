// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"caregate/internal/delivery/http/middleware"
	"caregate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the router, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	RecordHandler  *handler.RecordHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	recordHandler  *handler.RecordHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		recordHandler:  params.RecordHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes (user audience)
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/patient", r.authHandler.RegisterPatient)
		authGroup.POST("/register/doctor", r.authHandler.RegisterDoctor)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// The caller's own account; reachable regardless of approval status.
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.AuthenticateUser)
	{
		meGroup.GET("", r.authHandler.GetMe)
	}

	// Patient record routes. Authentication here only proves identity; the
	// usecase layer runs the full authorization pipeline per request.
	patientGroup := e.Group("/patients")
	patientGroup.Use(r.authMiddleware.AuthenticateUser)
	{
		patientGroup.GET("/:id/profile", r.recordHandler.GetProfile)
		patientGroup.GET("/:id/labs", r.recordHandler.ListLabResults)
		patientGroup.GET("/:id/prescriptions", r.recordHandler.ListPrescriptions)
		patientGroup.POST("/:id/prescriptions", r.recordHandler.CreatePrescription)
	}

	// Admin routes live in their own token audience.
	e.POST("/admin/login", r.adminHandler.Login)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.AuthenticateAdmin)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/approve", r.adminHandler.ApproveUser)
		adminGroup.POST("/users/:id/reject", r.adminHandler.RejectUser)
		adminGroup.POST("/users/:id/suspend", r.adminHandler.SuspendUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.POST("/assignments", r.adminHandler.AssignDoctor)
		adminGroup.DELETE("/assignments/:doctorID/:patientID", r.adminHandler.UnassignDoctor)

		adminGroup.GET("/alerts", r.adminHandler.ListAlerts)
		adminGroup.POST("/alerts/:id/resolve", r.adminHandler.ResolveAlert)

		adminGroup.GET("/audit", r.adminHandler.ListAuditLog)
	}
}
