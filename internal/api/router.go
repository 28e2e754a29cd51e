/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/router.go
==============================================================================

DESCRIPTION:
    Central routing configuration for the roster optimizer API. Sets up all
    endpoints, middleware chains, and service dependencies.

USER PERSPECTIVE:
    - This file defines all available API endpoints
    - Determines which routes require authentication
    - Sets up role-based access control for admin/hr features

DEVELOPER GUIDELINES:
    OK to modify: Add new route groups, new handlers
    CAUTION: Changing existing route paths (breaks frontend)
    DO NOT modify: Authentication middleware order

ROUTE STRUCTURE:
    /api/v1
    ├── /health (no auth)
    ├── /auth/* (mixed auth)
    ├── /employees/* (auth required)
    ├── /calendar/* (auth required)
    ├── /shifts/* (auth required)
    ├── /absence-requests/* (auth required, some HR-only)
    ├── /rosters/* (auth required, generate needs admin or hr role)
    ├── /reports/* (auth required)
    ├── /excel-export/* (auth required)
    ├── /users/* (admin only)
    └── /audit/* (auth required)

==============================================================================
*/
package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dienstplan/internal/config"
	"dienstplan/internal/middleware"
	"dienstplan/internal/repositories"
	"dienstplan/internal/services"
)

// Router sets up all API routes
type Router struct {
	db          *gorm.DB
	appConfig   *config.AppConfig
	authService *services.AuthService
}

// NewRouter creates a new router
func NewRouter(db *gorm.DB, appConfig *config.AppConfig) *Router {
	authService := services.NewAuthService(db, appConfig)
	return &Router{
		db:          db,
		appConfig:   appConfig,
		authService: authService,
	}
}

// Setup configures all routes
func (r *Router) Setup(routerGroup *gin.RouterGroup) {
	if r.appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	securityMiddleware := middleware.NewSecurityMiddleware(r.appConfig)
	routerGroup.Use(securityMiddleware.Headers())

	csrfMiddleware := middleware.NewCSRFMiddleware(r.appConfig)
	routerGroup.Use(csrfMiddleware.Protect())

	routerGroup.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "dienstplan-backend",
		})
	})

	authMiddleware := middleware.NewAuthMiddleware(r.authService)

	api := routerGroup.Group("")
	{
		auditService := services.NewAuditService(r.db)

		// Authentication routes (mixed auth)
		authHandler := NewAuthHandler(r.authService, auditService, r.appConfig)
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			// Employee Routes
			employeeService := services.NewEmployeeService(
				repositories.NewEmployeeRepository(r.db),
				repositories.NewAbsenceRepository(r.db),
			)
			employeeHandler := NewEmployeeHandler(employeeService)
			employeeHandler.RegisterRoutes(protected)

			// Calendar Routes (holidays, month overview)
			calendarService := services.NewCalendarService(repositories.NewHolidayRepository(r.db))
			calendarHandler := NewCalendarHandler(calendarService)
			calendarHandler.RegisterRoutes(protected)

			// Shift Routes (shift catalog / definitions)
			shiftService := services.NewShiftService(r.db)
			shiftHandler := NewShiftHandler(shiftService)
			shiftHandler.RegisterRoutes(protected, authMiddleware)

			// Absence Request Routes (request/approve/reject absences)
			absenceRequestService := services.NewAbsenceRequestService(r.db)
			absenceRequestHandler := NewAbsenceRequestHandler(absenceRequestService)
			absenceRequestHandler.RegisterRoutes(protected, authMiddleware)

			// Roster Routes (generate and retrieve monthly rosters)
			rosterService := services.NewRosterService(r.db)
			rosterHandler := NewRosterHandler(rosterService)
			rosterHandler.RegisterRoutes(protected, authMiddleware)

			// Report Routes (export a roster run as JSON/CSV/PDF)
			reportService := services.NewReportService(r.db)
			reportHandler := NewReportHandler(reportService)
			reportHandler.RegisterRoutes(protected)

			// Excel Export Routes (export a roster run as .xlsx)
			excelExportService := services.NewExcelExportService(r.db)
			excelExportHandler := NewExcelExportHandler(excelExportService)
			excelExportHandler.RegisterRoutes(protected)

			// Audit Log Routes (Admin can see all, users can see their own)
			auditHandler := NewAuditHandler(auditService, r.authService)
			auditHandler.RegisterRoutes(protected)

			// Admin only routes - User Management
			userService := services.NewUserService(r.db)
			userHandler := NewUserHandler(userService, r.authService)
			userHandler.RegisterRoutes(protected, authMiddleware)
		}
	}
}
