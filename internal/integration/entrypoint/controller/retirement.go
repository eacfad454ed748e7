package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-paisa/backend/internal/application/usecase/retirement"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/domain/finance"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/dto"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/middleware"
	"github.com/smart-paisa/backend/internal/integration/report"
)

// RetirementController handles retirement planner endpoints.
type RetirementController struct {
	saveUseCase    *retirement.SavePlanUseCase
	getUseCase     *retirement.GetPlanUseCase
	projectUseCase *retirement.ProjectPlanUseCase
}

// NewRetirementController creates a new retirement controller instance.
func NewRetirementController(
	saveUseCase *retirement.SavePlanUseCase,
	getUseCase *retirement.GetPlanUseCase,
	projectUseCase *retirement.ProjectPlanUseCase,
) *RetirementController {
	return &RetirementController{
		saveUseCase:    saveUseCase,
		getUseCase:     getUseCase,
		projectUseCase: projectUseCase,
	}
}

// SavePlan handles PUT /retirement/plan requests.
func (c *RetirementController) SavePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.SavePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	contribution, err := parseAmount(req.MonthlyContribution)
	if err != nil {
		c.respondInvalidAmount(ctx, "Invalid monthly contribution")
		return
	}
	savings, err := parseAmount(req.CurrentSavings)
	if err != nil {
		c.respondInvalidAmount(ctx, "Invalid current savings")
		return
	}
	desired, err := parseAmount(req.DesiredMonthlyIncome)
	if err != nil {
		c.respondInvalidAmount(ctx, "Invalid desired monthly income")
		return
	}

	input := retirement.SavePlanInput{
		UserID:               userID,
		CurrentAge:           req.CurrentAge,
		RetirementAge:        req.RetirementAge,
		MonthlyContribution:  contribution,
		CurrentSavings:       savings,
		ExpectedReturnPct:    req.ExpectedReturnPct,
		InflationRatePct:     req.InflationRatePct,
		DesiredMonthlyIncome: desired,
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRetirementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRetirementPlanResponse(output.Plan))
}

// GetPlan handles GET /retirement/plan requests.
func (c *RetirementController) GetPlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), retirement.GetPlanInput{UserID: userID})
	if err != nil {
		c.handleRetirementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRetirementPlanResponse(output.Plan))
}

// Project handles GET /retirement/projection requests.
func (c *RetirementController) Project(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), retirement.ProjectPlanInput{UserID: userID})
	if err != nil {
		c.handleRetirementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProjectionResponse{
		Plan:                  dto.ToRetirementPlanResponse(output.Plan),
		Points:                dto.ToProjectionPoints(output.Projection.Points),
		FinalBalance:          finance.Round2(output.Projection.FinalBalance),
		AdjustedFinalBalance:  finance.Round2(output.Projection.AdjustedFinalBalance),
		MonthlyIncome:         finance.Round2(output.MonthlyIncome),
		AdjustedMonthlyIncome: finance.Round2(output.AdjustedMonthlyIncome),
		MeetsDesiredIncome:    output.MeetsDesiredIncome,
	})
}

// Report handles GET /retirement/report requests. It renders the projection
// as plain-text lines plus a year-by-year balance table.
func (c *RetirementController) Report(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), retirement.ProjectPlanInput{UserID: userID})
	if err != nil {
		c.handleRetirementError(ctx, err)
		return
	}

	rendered := report.RenderRetirement(output)
	ctx.JSON(http.StatusOK, dto.RetirementReportResponse{
		Lines: rendered.Lines,
		Table: rendered.Table,
	})
}

func (c *RetirementController) respondInvalidAmount(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidPlanInput),
	})
}

// handleRetirementError maps retirement errors to HTTP responses.
func (c *RetirementController) handleRetirementError(ctx *gin.Context, err error) {
	var retErr *domainerror.RetirementError
	if errors.As(err, &retErr) {
		status := http.StatusInternalServerError
		switch retErr.Code {
		case domainerror.ErrCodeInvalidAgeRange, domainerror.ErrCodeInvalidPlanInput:
			status = http.StatusBadRequest
		case domainerror.ErrCodeRetirementPlanMissing:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: retErr.Message,
			Code:  string(retErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
