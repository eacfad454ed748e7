package report

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/usecase/retirement"
	"github.com/smart-paisa/backend/internal/domain/entity"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

func TestRenderRetirement(t *testing.T) {
	plan := &entity.RetirementPlan{
		CurrentAge:           30,
		RetirementAge:        32,
		MonthlyContribution:  decimal.NewFromInt(1000),
		CurrentSavings:       decimal.NewFromInt(5000),
		ExpectedReturnPct:    6,
		InflationRatePct:     2,
		DesiredMonthlyIncome: decimal.NewFromInt(2000),
	}
	projection, err := finance.Project(5000, 1000, 6, 2, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := &retirement.ProjectPlanOutput{
		Plan:          plan,
		Projection:    projection,
		MonthlyIncome: 123.456,
	}

	report := RenderRetirement(output)

	t.Run("summary lines carry plan and results", func(t *testing.T) {
		joined := strings.Join(report.Lines, "\n")
		for _, want := range []string{
			"Retirement Plan Report",
			"Current Age: 30",
			"Retirement Age: 32",
			"Monthly Contribution: 1000.00",
			"Estimated Monthly Income: 123.46",
		} {
			if !strings.Contains(joined, want) {
				t.Errorf("report lines missing %q", want)
			}
		}
	})

	t.Run("table has header plus one row per year", func(t *testing.T) {
		if len(report.Table) != 3 {
			t.Fatalf("expected header and 2 year rows, got %d rows", len(report.Table))
		}
		if report.Table[0][0] != "Year" {
			t.Errorf("expected header row first, got %v", report.Table[0])
		}
		if report.Table[1][0] != "31" || report.Table[2][0] != "32" {
			t.Errorf("expected years 31 and 32, got %v %v", report.Table[1][0], report.Table[2][0])
		}
	})

	t.Run("currency cells are fixed to two decimals", func(t *testing.T) {
		for _, row := range report.Table[1:] {
			for _, cell := range row[1:] {
				parts := strings.Split(cell, ".")
				if len(parts) != 2 || len(parts[1]) != 2 {
					t.Errorf("cell %q is not a two-decimal amount", cell)
				}
				if _, err := strconv.ParseFloat(cell, 64); err != nil {
					t.Errorf("cell %q is not numeric", cell)
				}
			}
		}
	})
}
