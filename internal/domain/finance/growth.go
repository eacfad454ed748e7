package finance

import "math"

// ProjectionPoint is one period of a contribution growth trajectory.
type ProjectionPoint struct {
	Month             int
	Balance           float64
	InflationAdjusted float64
}

// GrowthProjection is the full balance trajectory of a periodic-contribution
// plan. FinalBalance equals the balance of the last point, or the opening
// balance when the trajectory is empty.
type GrowthProjection struct {
	Points               []ProjectionPoint
	FinalBalance         float64
	AdjustedFinalBalance float64
}

// Project iterates the contribution recurrence B_k = B_{k-1}*(1+i) + C for
// months periods starting from the opening balance, where i is the monthly
// rate derived from annualRatePct. Each point also carries the balance
// discounted by the compounding monthly inflation rate. A zero-month horizon
// returns the opening balance with an empty trajectory.
func Project(opening, monthly, annualRatePct, annualInflationPct float64, months int) (GrowthProjection, error) {
	if monthly < 0 {
		return GrowthProjection{}, invalidInputf("monthly contribution must not be negative, got %v", monthly)
	}
	if annualRatePct < 0 {
		return GrowthProjection{}, invalidInputf("annual rate must not be negative, got %v", annualRatePct)
	}
	if annualInflationPct < 0 {
		return GrowthProjection{}, invalidInputf("inflation rate must not be negative, got %v", annualInflationPct)
	}
	if months < 0 {
		return GrowthProjection{}, invalidInputf("months must not be negative, got %d", months)
	}

	rate := annualRatePct / 100 / 12
	inflation := annualInflationPct / 100 / 12

	balance := opening
	points := make([]ProjectionPoint, 0, months)
	for month := 1; month <= months; month++ {
		balance = balance*(1+rate) + monthly
		adjusted := balance / math.Pow(1+inflation, float64(month))
		points = append(points, ProjectionPoint{
			Month:             month,
			Balance:           balance,
			InflationAdjusted: adjusted,
		})
	}

	projection := GrowthProjection{
		Points:               points,
		FinalBalance:         balance,
		AdjustedFinalBalance: balance,
	}
	if len(points) > 0 {
		projection.AdjustedFinalBalance = points[len(points)-1].InflationAdjusted
	}
	return projection, nil
}

// FutureValue computes the final value of a systematic investment plan: the
// special case of Project with a zero opening balance, reporting only the
// final balance.
func FutureValue(monthly, annualRatePct float64, years int) (float64, error) {
	if monthly <= 0 {
		return 0, invalidInputf("monthly investment must be positive, got %v", monthly)
	}
	if years <= 0 {
		return 0, invalidInputf("investment period must be at least one year, got %d", years)
	}

	projection, err := Project(0, monthly, annualRatePct, 0, years*12)
	if err != nil {
		return 0, err
	}
	return projection.FinalBalance, nil
}

// AnnuityIncome annuitizes a balance over the given number of months at the
// given annual rate, yielding the sustainable monthly drawdown. It is the
// amortization payment formula applied with the balance as present value.
func AnnuityIncome(balance, annualRatePct float64, months int) (float64, error) {
	if balance < 0 {
		return 0, invalidInputf("balance must not be negative, got %v", balance)
	}
	if annualRatePct < 0 {
		return 0, invalidInputf("annual rate must not be negative, got %v", annualRatePct)
	}
	if months <= 0 {
		return 0, invalidInputf("months must be at least one, got %d", months)
	}

	i := annualRatePct / 100 / 12
	if i == 0 {
		return balance / float64(months), nil
	}
	return balance * i / (1 - math.Pow(1+i, -float64(months))), nil
}
