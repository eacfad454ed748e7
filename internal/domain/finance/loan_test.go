package finance

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestAmortize(t *testing.T) {
	t.Run("standard loan matches the annuity formula", func(t *testing.T) {
		result, err := Amortize(LoanTerms{Principal: 100000, AnnualRatePct: 12, TermMonths: 12})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 100000 at 12% over 12 months has a monthly rate of exactly 0.01.
		if !almostEqual(result.MonthlyPayment, 8884.88, 0.01) {
			t.Errorf("expected monthly payment ~8884.88, got %v", result.MonthlyPayment)
		}
	})

	t.Run("zero rate degenerates to principal over term", func(t *testing.T) {
		result, err := Amortize(LoanTerms{Principal: 1200, AnnualRatePct: 0, TermMonths: 12})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.MonthlyPayment != 100 {
			t.Errorf("expected monthly payment 100, got %v", result.MonthlyPayment)
		}
		if result.TotalInterest != 0 {
			t.Errorf("expected zero interest, got %v", result.TotalInterest)
		}
	})

	t.Run("totals are internally consistent", func(t *testing.T) {
		terms := []LoanTerms{
			{Principal: 50000, AnnualRatePct: 8.5, TermMonths: 60},
			{Principal: 250000, AnnualRatePct: 6, TermMonths: 240},
			{Principal: 999.99, AnnualRatePct: 0, TermMonths: 3},
			{Principal: 1, AnnualRatePct: 100, TermMonths: 1},
		}

		for _, tt := range terms {
			result, err := Amortize(tt)
			if err != nil {
				t.Fatalf("unexpected error for %+v: %v", tt, err)
			}
			if result.MonthlyPayment <= 0 {
				t.Errorf("payment must be positive for %+v, got %v", tt, result.MonthlyPayment)
			}
			expectedInterest := result.MonthlyPayment*float64(tt.TermMonths) - tt.Principal
			if !almostEqual(result.TotalInterest, expectedInterest, 1e-9) {
				t.Errorf("interest mismatch for %+v: got %v, want %v", tt, result.TotalInterest, expectedInterest)
			}
			if result.TotalInterest < -1e-9 {
				t.Errorf("interest must not be negative for %+v, got %v", tt, result.TotalInterest)
			}
		}
	})

	t.Run("rejects out-of-domain terms", func(t *testing.T) {
		invalid := []LoanTerms{
			{Principal: 0, AnnualRatePct: 12, TermMonths: 12},
			{Principal: -100, AnnualRatePct: 12, TermMonths: 12},
			{Principal: 100, AnnualRatePct: -1, TermMonths: 12},
			{Principal: 100, AnnualRatePct: 12, TermMonths: 0},
			{Principal: 100, AnnualRatePct: 12, TermMonths: -5},
		}

		for _, tt := range invalid {
			if _, err := Amortize(tt); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput for %+v, got %v", tt, err)
			}
		}
	})
}

func TestAmortizationSchedule(t *testing.T) {
	terms := LoanTerms{Principal: 100000, AnnualRatePct: 12, TermMonths: 12}

	schedule, err := AmortizationSchedule(terms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != terms.TermMonths {
		t.Fatalf("expected %d entries, got %d", terms.TermMonths, len(schedule))
	}

	if schedule[len(schedule)-1].Remaining != 0 {
		t.Errorf("expected final remaining balance 0, got %v", schedule[len(schedule)-1].Remaining)
	}

	var principalSum float64
	previousRemaining := terms.Principal
	for _, entry := range schedule {
		principalSum += entry.Principal
		if entry.Remaining > previousRemaining {
			t.Errorf("remaining balance increased at month %d", entry.Month)
		}
		previousRemaining = entry.Remaining
	}

	if !almostEqual(principalSum, terms.Principal, 1e-6) {
		t.Errorf("schedule principal sums to %v, want %v", principalSum, terms.Principal)
	}
}
