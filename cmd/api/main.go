// Package main is the entry point for the Smart Paisa API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/smart-paisa/backend/config"
	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/application/usecase/account"
	"github.com/smart-paisa/backend/internal/application/usecase/auth"
	"github.com/smart-paisa/backend/internal/application/usecase/calculator"
	"github.com/smart-paisa/backend/internal/application/usecase/dashboard"
	"github.com/smart-paisa/backend/internal/application/usecase/insurance"
	"github.com/smart-paisa/backend/internal/application/usecase/loan"
	"github.com/smart-paisa/backend/internal/application/usecase/retirement"
	"github.com/smart-paisa/backend/internal/application/usecase/transaction"
	"github.com/smart-paisa/backend/internal/infra/db"
	"github.com/smart-paisa/backend/internal/infra/server/router"
	"github.com/smart-paisa/backend/internal/integration/adapters"
	"github.com/smart-paisa/backend/internal/integration/cache"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/controller"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/middleware"
	"github.com/smart-paisa/backend/internal/integration/persistence"
	"github.com/smart-paisa/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Smart Paisa API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.LoanModel{},
		&model.InsurancePolicyModel{},
		&model.RetirementPlanModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis for the calculator result cache. The calculators
	// degrade gracefully without it.
	var calcCache adapter.CalculationCache
	if redisClient, err := db.NewRedisConnection(&cfg.Redis); err != nil {
		slog.Warn("Redis connection failed, calculators run uncached", "error", err)
	} else {
		calcCache = cache.NewRedisCache(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	accountRepo := persistence.NewAccountRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	loanRepo := persistence.NewLoanRepository(database.DB())
	insuranceRepo := persistence.NewInsuranceRepository(database.DB())
	planRepo := persistence.NewRetirementPlanRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create account and transaction use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, transactionRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create instrument use cases
	createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo)
	listLoansUseCase := loan.NewListLoansUseCase(loanRepo)
	loanScheduleUseCase := loan.NewGetScheduleUseCase(loanRepo)
	deleteLoanUseCase := loan.NewDeleteLoanUseCase(loanRepo)
	createPolicyUseCase := insurance.NewCreatePolicyUseCase(insuranceRepo)
	listPoliciesUseCase := insurance.NewListPoliciesUseCase(insuranceRepo)
	deletePolicyUseCase := insurance.NewDeletePolicyUseCase(insuranceRepo)

	// Create calculator use cases
	emiUseCase := calculator.NewCalculateEMIUseCase(calcCache)
	sipUseCase := calculator.NewCalculateSIPUseCase(calcCache)
	shareUseCase := calculator.NewCalculateShareUseCase(calcCache)

	// Create retirement and dashboard use cases
	savePlanUseCase := retirement.NewSavePlanUseCase(planRepo)
	getPlanUseCase := retirement.NewGetPlanUseCase(planRepo)
	projectPlanUseCase := retirement.NewProjectPlanUseCase(planRepo)
	overviewUseCase := dashboard.NewGetOverviewUseCase(accountRepo, transactionRepo)

	// Create controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)
	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)
	loanController := controller.NewLoanController(
		createLoanUseCase,
		listLoansUseCase,
		loanScheduleUseCase,
		deleteLoanUseCase,
	)
	insuranceController := controller.NewInsuranceController(
		createPolicyUseCase,
		listPoliciesUseCase,
		deletePolicyUseCase,
	)
	calculatorController := controller.NewCalculatorController(emiUseCase, sipUseCase, shareUseCase)
	retirementController := controller.NewRetirementController(savePlanUseCase, getPlanUseCase, projectPlanUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		transactionController,
		loanController,
		insuranceController,
		calculatorController,
		retirementController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
