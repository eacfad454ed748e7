package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/usecase/insurance"
	"github.com/smart-paisa/backend/internal/application/usecase/loan"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/dto"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/middleware"
)

// LoanController handles registered loan endpoints.
type LoanController struct {
	createUseCase   *loan.CreateLoanUseCase
	listUseCase     *loan.ListLoansUseCase
	scheduleUseCase *loan.GetScheduleUseCase
	deleteUseCase   *loan.DeleteLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	createUseCase *loan.CreateLoanUseCase,
	listUseCase *loan.ListLoansUseCase,
	scheduleUseCase *loan.GetScheduleUseCase,
	deleteUseCase *loan.DeleteLoanUseCase,
) *LoanController {
	return &LoanController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		scheduleUseCase: scheduleUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	principal, err := parseAmount(req.Principal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid principal",
			Code:  string(domainerror.ErrCodeLoanInvalidTerms),
		})
		return
	}

	input := loan.CreateLoanInput{
		UserID:        userID,
		Name:          req.Name,
		Principal:     principal,
		AnnualRatePct: req.AnnualRatePct,
		TermMonths:    req.TermMonths,
		StartDate:     req.StartDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan, output.Result))
}

// List handles GET /loans requests.
func (c *LoanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), loan.ListLoansInput{UserID: userID})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	loans := make([]dto.LoanResponse, 0, len(output.Loans))
	for _, item := range output.Loans {
		loans = append(loans, dto.ToLoanResponse(item.Loan, item.Result))
	}

	ctx.JSON(http.StatusOK, dto.ListLoansResponse{Loans: loans})
}

// Schedule handles GET /loans/:id/schedule requests.
func (c *LoanController) Schedule(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.scheduleUseCase.Execute(ctx.Request.Context(), loan.GetScheduleInput{
		UserID: userID,
		LoanID: loanID,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoanScheduleResponse{
		Loan:     dto.ToLoanResponse(output.Loan, output.Result),
		Schedule: dto.ToScheduleResponse(output.Schedule),
	})
}

// Delete handles DELETE /loans/:id requests.
func (c *LoanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), loan.DeleteLoanInput{
		UserID: userID,
		LoanID: loanID,
	}); err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Loan deleted"})
}

// handleLoanError maps loan errors to HTTP responses.
func (c *LoanController) handleLoanError(ctx *gin.Context, err error) {
	var loanErr *domainerror.LoanError
	if errors.As(err, &loanErr) {
		status := http.StatusInternalServerError
		switch loanErr.Code {
		case domainerror.ErrCodeLoanInvalidTerms:
			status = http.StatusBadRequest
		case domainerror.ErrCodeLoanNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeLoanNotAuthorized:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: loanErr.Message,
			Code:  string(loanErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// InsuranceController handles insurance policy endpoints.
type InsuranceController struct {
	createUseCase *insurance.CreatePolicyUseCase
	listUseCase   *insurance.ListPoliciesUseCase
	deleteUseCase *insurance.DeletePolicyUseCase
}

// NewInsuranceController creates a new insurance controller instance.
func NewInsuranceController(
	createUseCase *insurance.CreatePolicyUseCase,
	listUseCase *insurance.ListPoliciesUseCase,
	deleteUseCase *insurance.DeletePolicyUseCase,
) *InsuranceController {
	return &InsuranceController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /insurance requests.
func (c *InsuranceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreatePolicyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	premium, err := parseAmount(req.AnnualPremium)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid annual premium",
			Code:  string(domainerror.ErrCodePolicyInvalidTerms),
		})
		return
	}

	input := insurance.CreatePolicyInput{
		UserID:        userID,
		Name:          req.Name,
		Provider:      req.Provider,
		AnnualPremium: premium,
		TermYears:     req.TermYears,
		AnnualRatePct: req.AnnualRatePct,
		NextDueDate:   req.NextDueDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsuranceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPolicyResponse(output.Policy, output.MaturityValue))
}

// List handles GET /insurance requests.
func (c *InsuranceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insurance.ListPoliciesInput{UserID: userID})
	if err != nil {
		c.handleInsuranceError(ctx, err)
		return
	}

	policies := make([]dto.PolicyResponse, 0, len(output.Policies))
	for _, item := range output.Policies {
		policies = append(policies, dto.ToPolicyResponse(item.Policy, item.MaturityValue))
	}

	ctx.JSON(http.StatusOK, dto.ListPoliciesResponse{
		Policies:     policies,
		TotalPremium: output.TotalPremium.StringFixed(2),
	})
}

// Delete handles DELETE /insurance/:id requests.
func (c *InsuranceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	policyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), insurance.DeletePolicyInput{
		UserID:   userID,
		PolicyID: policyID,
	}); err != nil {
		c.handleInsuranceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Policy deleted"})
}

// handleInsuranceError maps insurance errors to HTTP responses.
func (c *InsuranceController) handleInsuranceError(ctx *gin.Context, err error) {
	var insErr *domainerror.InsuranceError
	if errors.As(err, &insErr) {
		status := http.StatusInternalServerError
		switch insErr.Code {
		case domainerror.ErrCodePolicyInvalidTerms:
			status = http.StatusBadRequest
		case domainerror.ErrCodePolicyNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodePolicyNotAuthorized:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
