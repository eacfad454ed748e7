package dto

import (
	"github.com/smart-paisa/backend/internal/domain/entity"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// SavePlanRequest represents the request body for saving a retirement plan.
type SavePlanRequest struct {
	CurrentAge           int     `json:"current_age" binding:"required,min=1"`
	RetirementAge        int     `json:"retirement_age" binding:"required,min=1"`
	MonthlyContribution  string  `json:"monthly_contribution" binding:"required"`
	CurrentSavings       string  `json:"current_savings"`
	ExpectedReturnPct    float64 `json:"expected_return_pct"`
	InflationRatePct     float64 `json:"inflation_rate_pct"`
	DesiredMonthlyIncome string  `json:"desired_monthly_income"`
}

// RetirementPlanResponse represents a saved retirement plan.
type RetirementPlanResponse struct {
	CurrentAge           int     `json:"current_age"`
	RetirementAge        int     `json:"retirement_age"`
	MonthlyContribution  string  `json:"monthly_contribution"`
	CurrentSavings       string  `json:"current_savings"`
	ExpectedReturnPct    float64 `json:"expected_return_pct"`
	InflationRatePct     float64 `json:"inflation_rate_pct"`
	DesiredMonthlyIncome string  `json:"desired_monthly_income"`
}

// ProjectionPointResponse represents one month of the projection trajectory.
type ProjectionPointResponse struct {
	Month             int     `json:"month"`
	Balance           float64 `json:"balance"`
	InflationAdjusted float64 `json:"inflation_adjusted"`
}

// ProjectionResponse represents the full retirement projection.
type ProjectionResponse struct {
	Plan                  RetirementPlanResponse    `json:"plan"`
	Points                []ProjectionPointResponse `json:"points"`
	FinalBalance          float64                   `json:"final_balance"`
	AdjustedFinalBalance  float64                   `json:"adjusted_final_balance"`
	MonthlyIncome         float64                   `json:"monthly_income"`
	AdjustedMonthlyIncome float64                   `json:"adjusted_monthly_income"`
	MeetsDesiredIncome    bool                      `json:"meets_desired_income"`
}

// RetirementReportResponse represents the plain-text report for the export
// sink: ordered lines plus a year/balance table.
type RetirementReportResponse struct {
	Lines []string   `json:"lines"`
	Table [][]string `json:"table"`
}

// ToRetirementPlanResponse converts a domain RetirementPlan entity to a DTO.
func ToRetirementPlanResponse(plan *entity.RetirementPlan) RetirementPlanResponse {
	return RetirementPlanResponse{
		CurrentAge:           plan.CurrentAge,
		RetirementAge:        plan.RetirementAge,
		MonthlyContribution:  plan.MonthlyContribution.StringFixed(2),
		CurrentSavings:       plan.CurrentSavings.StringFixed(2),
		ExpectedReturnPct:    plan.ExpectedReturnPct,
		InflationRatePct:     plan.InflationRatePct,
		DesiredMonthlyIncome: plan.DesiredMonthlyIncome.StringFixed(2),
	}
}

// ToProjectionPoints converts a projection trajectory to DTOs, rounding at
// the presentation boundary.
func ToProjectionPoints(points []finance.ProjectionPoint) []ProjectionPointResponse {
	out := make([]ProjectionPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ProjectionPointResponse{
			Month:             p.Month,
			Balance:           finance.Round2(p.Balance),
			InflationAdjusted: finance.Round2(p.InflationAdjusted),
		})
	}
	return out
}
