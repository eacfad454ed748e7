// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/smart-paisa/backend/internal/integration/entrypoint/controller"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	loanController        *controller.LoanController
	insuranceController   *controller.InsuranceController
	calculatorController  *controller.CalculatorController
	retirementController  *controller.RetirementController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	loanController *controller.LoanController,
	insuranceController *controller.InsuranceController,
	calculatorController *controller.CalculatorController,
	retirementController *controller.RetirementController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		accountController:     accountController,
		transactionController: transactionController,
		loanController:        loanController,
		insuranceController:   insuranceController,
		calculatorController:  calculatorController,
		retirementController:  retirementController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Loan routes (require authentication)
		if r.loanController != nil && r.authMiddleware != nil {
			loans := v1.Group("/loans")
			loans.Use(r.authMiddleware.Authenticate())
			{
				loans.GET("", r.loanController.List)
				loans.POST("", r.loanController.Create)
				loans.GET("/:id/schedule", r.loanController.Schedule)
				loans.DELETE("/:id", r.loanController.Delete)
			}
		}

		// Insurance routes (require authentication)
		if r.insuranceController != nil && r.authMiddleware != nil {
			insurance := v1.Group("/insurance")
			insurance.Use(r.authMiddleware.Authenticate())
			{
				insurance.GET("", r.insuranceController.List)
				insurance.POST("", r.insuranceController.Create)
				insurance.DELETE("/:id", r.insuranceController.Delete)
			}
		}

		// Calculator routes (stateless, no authentication required)
		if r.calculatorController != nil {
			calculators := v1.Group("/calculators")
			{
				calculators.POST("/emi", r.calculatorController.CalculateEMI)
				calculators.POST("/sip", r.calculatorController.CalculateSIP)
				calculators.POST("/share", r.calculatorController.CalculateShare)
			}
		}

		// Retirement planner routes (require authentication)
		if r.retirementController != nil && r.authMiddleware != nil {
			retirement := v1.Group("/retirement")
			retirement.Use(r.authMiddleware.Authenticate())
			{
				retirement.PUT("/plan", r.retirementController.SavePlan)
				retirement.GET("/plan", r.retirementController.GetPlan)
				retirement.GET("/projection", r.retirementController.Project)
				retirement.GET("/report", r.retirementController.Report)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/overview", r.dashboardController.Overview)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
