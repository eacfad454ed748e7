package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-paisa/backend/internal/application/usecase/calculator"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/dto"
)

// CalculatorController handles the standalone financial calculators.
type CalculatorController struct {
	emiUseCase   *calculator.CalculateEMIUseCase
	sipUseCase   *calculator.CalculateSIPUseCase
	shareUseCase *calculator.CalculateShareUseCase
}

// NewCalculatorController creates a new calculator controller instance.
func NewCalculatorController(
	emiUseCase *calculator.CalculateEMIUseCase,
	sipUseCase *calculator.CalculateSIPUseCase,
	shareUseCase *calculator.CalculateShareUseCase,
) *CalculatorController {
	return &CalculatorController{
		emiUseCase:   emiUseCase,
		sipUseCase:   sipUseCase,
		shareUseCase: shareUseCase,
	}
}

// CalculateEMI handles POST /calculators/emi requests.
func (c *CalculatorController) CalculateEMI(ctx *gin.Context) {
	var req dto.CalculateEMIRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.emiUseCase.Execute(ctx.Request.Context(), calculator.CalculateEMIInput{
		Principal:     req.Principal,
		AnnualRatePct: req.AnnualRatePct,
		TermMonths:    req.TermMonths,
	})
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CalculateSIP handles POST /calculators/sip requests.
func (c *CalculatorController) CalculateSIP(ctx *gin.Context) {
	var req dto.CalculateSIPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.sipUseCase.Execute(ctx.Request.Context(), calculator.CalculateSIPInput{
		MonthlyAmount:   req.MonthlyAmount,
		AnnualReturnPct: req.AnnualReturnPct,
		Years:           req.Years,
	})
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CalculateShare handles POST /calculators/share requests.
func (c *CalculatorController) CalculateShare(ctx *gin.Context) {
	var req dto.CalculateShareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.shareUseCase.Execute(ctx.Request.Context(), calculator.CalculateShareInput{
		Side:          req.Side,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		RegulatoryFee: req.RegulatoryFee,
		DepositoryFee: req.DepositoryFee,
		BrokerageFee:  req.BrokerageFee,
	})
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleCalculatorError maps calculator errors to HTTP responses.
func (c *CalculatorController) handleCalculatorError(ctx *gin.Context, err error) {
	var calcErr *domainerror.CalculatorError
	if errors.As(err, &calcErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: calcErr.Message,
			Code:  string(calcErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
