// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/application/usecase/account"
	"github.com/smart-paisa/backend/internal/application/usecase/auth"
	"github.com/smart-paisa/backend/internal/application/usecase/calculator"
	"github.com/smart-paisa/backend/internal/application/usecase/dashboard"
	"github.com/smart-paisa/backend/internal/application/usecase/insurance"
	"github.com/smart-paisa/backend/internal/application/usecase/loan"
	"github.com/smart-paisa/backend/internal/application/usecase/retirement"
	"github.com/smart-paisa/backend/internal/application/usecase/transaction"
	"github.com/smart-paisa/backend/internal/infra/server/router"
	"github.com/smart-paisa/backend/internal/integration/adapters"
	"github.com/smart-paisa/backend/internal/integration/cache"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/controller"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/middleware"
	"github.com/smart-paisa/backend/internal/integration/persistence"
	"github.com/smart-paisa/backend/internal/integration/persistence/model"
	"github.com/smart-paisa/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverInit sync.Once
var testServer *httptest.Server
var testTokenService adapter.TokenService

type testContext struct {
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db

	accessToken  string
	refreshToken string

	currentUserID     uuid.UUID
	currentAccountID  uuid.UUID
	currentLoanID     uuid.UUID
	currentPolicyID   uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":              &model.UserModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"accounts":           &model.AccountModel{},
			"transactions":       &model.TransactionModel{},
			"loans":              &model.LoanModel{},
			"insurance_policies": &model.InsurancePolicyModel{},
			"retirement_plans":   &model.RetirementPlanModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^an account "([^"]*)" of kind "([^"]*)" with opening balance "([^"]*)" exists$`, test.anAccountExists)
	ctx.Given(`^the account has card expiry "([^"]*)"$`, test.theAccountHasCardExpiry)
	ctx.Given(`^an? "([^"]*)" transaction of "([^"]*)" exists on the account$`, test.aTransactionExistsOnTheAccount)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.currentLoanID = uuid.Nil
	t.currentPolicyID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.response = nil

	if t.db != nil {
		_ = t.db.Reset()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		dbConn := t.db.DbConn

		userRepo := persistence.NewUserRepository(dbConn)
		tokenRepo := persistence.NewTokenRepository(dbConn)
		accountRepo := persistence.NewAccountRepository(dbConn)
		transactionRepo := persistence.NewTransactionRepository(dbConn)
		loanRepo := persistence.NewLoanRepository(dbConn)
		insuranceRepo := persistence.NewInsuranceRepository(dbConn)
		planRepo := persistence.NewRetirementPlanRepository(dbConn)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
		testTokenService = tokenService

		calcCache := cache.NewRedisCache(mock.NewRedis())

		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
		listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, transactionRepo)
		updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
		deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo)
		listLoansUseCase := loan.NewListLoansUseCase(loanRepo)
		loanScheduleUseCase := loan.NewGetScheduleUseCase(loanRepo)
		deleteLoanUseCase := loan.NewDeleteLoanUseCase(loanRepo)

		createPolicyUseCase := insurance.NewCreatePolicyUseCase(insuranceRepo)
		listPoliciesUseCase := insurance.NewListPoliciesUseCase(insuranceRepo)
		deletePolicyUseCase := insurance.NewDeletePolicyUseCase(insuranceRepo)

		emiUseCase := calculator.NewCalculateEMIUseCase(calcCache)
		sipUseCase := calculator.NewCalculateSIPUseCase(calcCache)
		shareUseCase := calculator.NewCalculateShareUseCase(calcCache)

		savePlanUseCase := retirement.NewSavePlanUseCase(planRepo)
		getPlanUseCase := retirement.NewGetPlanUseCase(planRepo)
		projectPlanUseCase := retirement.NewProjectPlanUseCase(planRepo)
		overviewUseCase := dashboard.NewGetOverviewUseCase(accountRepo, transactionRepo)

		healthController := controller.NewHealthController(func() bool {
			return t.db != nil && t.db.DbConn != nil
		})
		authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
		accountController := controller.NewAccountController(createAccountUseCase, listAccountsUseCase, updateAccountUseCase, deleteAccountUseCase)
		transactionController := controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase, deleteTransactionUseCase)
		loanController := controller.NewLoanController(createLoanUseCase, listLoansUseCase, loanScheduleUseCase, deleteLoanUseCase)
		insuranceController := controller.NewInsuranceController(createPolicyUseCase, listPoliciesUseCase, deletePolicyUseCase)
		calculatorController := controller.NewCalculatorController(emiUseCase, sipUseCase, shareUseCase)
		retirementController := controller.NewRetirementController(savePlanUseCase, getPlanUseCase, projectPlanUseCase)
		dashboardController := controller.NewDashboardController(overviewUseCase)

		loginRateLimiter := middleware.NewRateLimiter()
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
		engine := r.Setup("test")

		testServer = httptest.NewServer(engine)
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	if testServer == nil {
		return errors.New("test server failed to start")
	}
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	userID := uuid.New()
	t.currentUserID = userID

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: string(hashedBytes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.aUserExistsWithEmailAndPassword(email, "SecurePass123!"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
	}

	t.currentUserID = userModel.ID

	pair, err := testTokenService.GenerateTokenPair(context.Background(), userModel.ID, userModel.Email)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}
	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) anAccountExists(name, kind, openingBalance string) error {
	opening, err := decimal.NewFromString(openingBalance)
	if err != nil {
		return fmt.Errorf("invalid opening balance '%s': %w", openingBalance, err)
	}

	accountID := uuid.New()
	t.currentAccountID = accountID

	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:             accountID,
		UserID:         t.currentUserID,
		Name:           name,
		Kind:           kind,
		OpeningBalance: opening,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(accountModel).Error
}

func (t *testContext) theAccountHasCardExpiry(expiry string) error {
	return t.db.DbConn.Model(&model.AccountModel{}).
		Where("id = ?", t.currentAccountID).
		Update("card_expiry", expiry).Error
}

func (t *testContext) aTransactionExistsOnTheAccount(kind, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	var accountModel model.AccountModel
	if err := t.db.DbConn.Where("id = ?", t.currentAccountID).First(&accountModel).Error; err != nil {
		return fmt.Errorf("account not found: %w", err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		AccountID:   t.currentAccountID,
		AccountKind: accountModel.Kind,
		Kind:        kind,
		Amount:      value,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{loan_id}}", t.currentLoanID.String())
	content = strings.ReplaceAll(content, "{{policy_id}}", t.currentPolicyID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{now}}", time.Now().UTC().Format(time.RFC3339))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := testServer.URL + path

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs pulls resource identifiers out of create responses so later
// steps can reference them via placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "result"):
		t.currentLoanID = id
	case hasKey(body, "maturity_value"):
		t.currentPolicyID = id
	case hasKey(body, "opening_balance"):
		t.currentAccountID = id
	case hasKey(body, "account_id"):
		t.lastTransactionID = id
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

// getFieldValue resolves a dot separated path within a decoded JSON body.
// Numeric path segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
