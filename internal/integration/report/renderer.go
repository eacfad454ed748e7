// Package report renders derived projections into plain text for the
// document export sink. Formatting lives here; the calculation layer returns
// raw numbers only.
package report

import (
	"fmt"
	"strconv"

	"github.com/smart-paisa/backend/internal/application/usecase/retirement"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// RetirementReport is the rendered retirement projection: ordered summary
// lines plus a year-by-year balance table (header row first).
type RetirementReport struct {
	Lines []string
	Table [][]string
}

// currency formats an amount with two decimal places.
func currency(v float64) string {
	return fmt.Sprintf("%.2f", finance.Round2(v))
}

// RenderRetirement renders the projection output into the export format. The
// table samples the monthly trajectory at year boundaries.
func RenderRetirement(output *retirement.ProjectPlanOutput) *RetirementReport {
	plan := output.Plan

	lines := []string{
		"Retirement Plan Report",
		fmt.Sprintf("Current Age: %d", plan.CurrentAge),
		fmt.Sprintf("Retirement Age: %d", plan.RetirementAge),
		fmt.Sprintf("Monthly Contribution: %s", plan.MonthlyContribution.StringFixed(2)),
		fmt.Sprintf("Current Savings: %s", plan.CurrentSavings.StringFixed(2)),
		fmt.Sprintf("Expected Annual Return: %v%%", plan.ExpectedReturnPct),
		fmt.Sprintf("Inflation Rate: %v%%", plan.InflationRatePct),
		fmt.Sprintf("Desired Monthly Income: %s", plan.DesiredMonthlyIncome.StringFixed(2)),
		fmt.Sprintf("Projected Final Balance: %s", currency(output.Projection.FinalBalance)),
		fmt.Sprintf("Inflation-Adjusted Final Balance: %s", currency(output.Projection.AdjustedFinalBalance)),
		fmt.Sprintf("Estimated Monthly Income: %s", currency(output.MonthlyIncome)),
		fmt.Sprintf("Inflation-Adjusted Monthly Income: %s", currency(output.AdjustedMonthlyIncome)),
	}

	table := [][]string{{"Year", "Projected Balance", "Inflation-Adjusted Balance"}}
	for _, point := range output.Projection.Points {
		if point.Month%12 != 0 {
			continue
		}
		year := plan.CurrentAge + point.Month/12
		table = append(table, []string{
			strconv.Itoa(year),
			currency(point.Balance),
			currency(point.InflationAdjusted),
		})
	}

	return &RetirementReport{Lines: lines, Table: table}
}
