package finance

import (
	"errors"
	"testing"
)

func TestSettle(t *testing.T) {
	t.Run("buy adds fees to gross value", func(t *testing.T) {
		settlement := Settle(ShareOrder{Side: TradeSideBuy, Quantity: 10, UnitPrice: 100})

		if settlement.GrossValue != 1000 {
			t.Errorf("expected gross 1000, got %v", settlement.GrossValue)
		}
		if !almostEqual(settlement.TotalFees, 0.5, 1e-9) {
			t.Errorf("expected fees 0.5, got %v", settlement.TotalFees)
		}
		if !almostEqual(settlement.NetAmount, 1000.5, 1e-9) {
			t.Errorf("expected net 1000.5, got %v", settlement.NetAmount)
		}
	})

	t.Run("sell subtracts fees from gross value", func(t *testing.T) {
		settlement := Settle(ShareOrder{Side: TradeSideSell, Quantity: 10, UnitPrice: 100})

		if !almostEqual(settlement.NetAmount, 999.5, 1e-9) {
			t.Errorf("expected net 999.5, got %v", settlement.NetAmount)
		}
	})

	t.Run("degenerate input settles to exactly zero", func(t *testing.T) {
		orders := []ShareOrder{
			{Side: TradeSideBuy, Quantity: 0, UnitPrice: 100},
			{Side: TradeSideBuy, Quantity: -5, UnitPrice: 100},
			{Side: TradeSideSell, Quantity: 10, UnitPrice: 0},
			{Side: TradeSideSell, Quantity: 10, UnitPrice: -1},
		}

		for _, order := range orders {
			settlement := Settle(order)
			if settlement != (ShareSettlement{}) {
				t.Errorf("expected zero settlement for %+v, got %+v", order, settlement)
			}
		}
	})

	t.Run("fee schedule is overridable", func(t *testing.T) {
		settlement := Settle(ShareOrder{
			Side:      TradeSideBuy,
			Quantity:  10,
			UnitPrice: 100,
			Fees:      &FeeSchedule{Regulatory: 0.01, Depository: 0.01, Brokerage: 0.03},
		})

		if !almostEqual(settlement.TotalFees, 50, 1e-9) {
			t.Errorf("expected fees 50, got %v", settlement.TotalFees)
		}
	})

	t.Run("explicit zero schedule settles fee-free", func(t *testing.T) {
		settlement := Settle(ShareOrder{
			Side:      TradeSideBuy,
			Quantity:  10,
			UnitPrice: 100,
			Fees:      &FeeSchedule{},
		})

		if settlement.TotalFees != 0 {
			t.Errorf("expected zero fees, got %v", settlement.TotalFees)
		}
		if settlement.NetAmount != 1000 {
			t.Errorf("expected net 1000, got %v", settlement.NetAmount)
		}
	})
}

func TestMaturityValue(t *testing.T) {
	t.Run("grows total premiums by the flat rate", func(t *testing.T) {
		value, err := MaturityValue(1000, 10, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(value, 10500, 1e-9) {
			t.Errorf("expected 10500, got %v", value)
		}
	})

	t.Run("rejects non-positive premium", func(t *testing.T) {
		if _, err := MaturityValue(0, 10, 5); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
