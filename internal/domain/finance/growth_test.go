package finance

import (
	"errors"
	"testing"
)

func TestProject(t *testing.T) {
	t.Run("trajectory is non-decreasing for non-negative contribution and rate", func(t *testing.T) {
		projection, err := Project(500, 100, 8, 2, 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(projection.Points) != 120 {
			t.Fatalf("expected 120 points, got %d", len(projection.Points))
		}

		previous := 500.0
		for _, point := range projection.Points {
			if point.Balance < previous {
				t.Fatalf("balance decreased at month %d: %v < %v", point.Month, point.Balance, previous)
			}
			previous = point.Balance
		}
	})

	t.Run("zero months returns opening balance with empty trajectory", func(t *testing.T) {
		projection, err := Project(1234.56, 100, 8, 2, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(projection.Points) != 0 {
			t.Errorf("expected empty trajectory, got %d points", len(projection.Points))
		}
		if projection.FinalBalance != 1234.56 {
			t.Errorf("expected final balance 1234.56, got %v", projection.FinalBalance)
		}
	})

	t.Run("zero rate accumulates contributions without compounding", func(t *testing.T) {
		projection, err := Project(0, 250, 0, 0, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if projection.FinalBalance != 3000 {
			t.Errorf("expected final balance 3000, got %v", projection.FinalBalance)
		}
	})

	t.Run("inflation discount compounds per month", func(t *testing.T) {
		projection, err := Project(0, 1000, 0, 12, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Monthly inflation is exactly 1%: month one discounts by 1.01,
		// month two by 1.01^2.
		if !almostEqual(projection.Points[0].InflationAdjusted, 1000/1.01, 1e-9) {
			t.Errorf("month 1 adjusted balance mismatch: %v", projection.Points[0].InflationAdjusted)
		}
		if !almostEqual(projection.Points[1].InflationAdjusted, 2010/(1.01*1.01), 1e-9) {
			t.Errorf("month 2 adjusted balance mismatch: %v", projection.Points[1].InflationAdjusted)
		}
	})

	t.Run("rejects negative arguments", func(t *testing.T) {
		cases := []struct {
			name                              string
			opening, monthly, rate, inflation float64
			months                            int
		}{
			{"negative contribution", 0, -1, 8, 2, 12},
			{"negative rate", 0, 100, -8, 2, 12},
			{"negative inflation", 0, 100, 8, -2, 12},
			{"negative months", 0, 100, 8, 2, -1},
		}

		for _, tt := range cases {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := Project(tt.opening, tt.monthly, tt.rate, tt.inflation, tt.months); !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			})
		}
	})
}

func TestFutureValue(t *testing.T) {
	t.Run("matches the iterated recurrence", func(t *testing.T) {
		// 1000 monthly at 12% annual over one year: twelve iterations of
		// fv = fv*1.01 + 1000 from zero.
		expected := 0.0
		for i := 0; i < 12; i++ {
			expected = expected*1.01 + 1000
		}

		got, err := FutureValue(1000, 12, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, expected, 1e-9) {
			t.Errorf("expected %v, got %v", expected, got)
		}
		if !almostEqual(Round2(got), 12682.50, 0.01) {
			t.Errorf("expected ~12682.50, got %v", Round2(got))
		}
	})

	t.Run("rejects non-positive period", func(t *testing.T) {
		if _, err := FutureValue(1000, 12, 0); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects non-positive monthly investment", func(t *testing.T) {
		for _, monthly := range []float64{0, -100} {
			if _, err := FutureValue(monthly, 12, 1); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput for monthly %v, got %v", monthly, err)
			}
		}
	})
}

func TestAnnuityIncome(t *testing.T) {
	t.Run("zero rate spreads the balance evenly", func(t *testing.T) {
		income, err := AnnuityIncome(12000, 0, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if income != 1000 {
			t.Errorf("expected 1000, got %v", income)
		}
	})

	t.Run("is the inverse of amortization", func(t *testing.T) {
		// Annuitizing a balance must equal the payment on a loan of the
		// same present value, rate and term.
		result, err := Amortize(LoanTerms{Principal: 100000, AnnualRatePct: 12, TermMonths: 12})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		income, err := AnnuityIncome(100000, 12, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !almostEqual(income, result.MonthlyPayment, 1e-6) {
			t.Errorf("expected %v, got %v", result.MonthlyPayment, income)
		}
	})
}
