package calculator

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/smart-paisa/backend/internal/application/adapter"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

type memoryCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return nil, adapter.ErrCacheMiss
	}
	return raw, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func TestCalculateEMI(t *testing.T) {
	uc := NewCalculateEMIUseCase(newMemoryCache())

	t.Run("standard loan", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateEMIInput{
			Principal:     100000,
			AnnualRatePct: 12,
			TermMonths:    12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.MonthlyPayment != 8884.88 {
			t.Errorf("expected monthly payment 8884.88, got %v", output.MonthlyPayment)
		}
		if math.Abs(output.TotalPaid-output.MonthlyPayment*12) > 0.01 {
			t.Errorf("total paid %v inconsistent with payment %v", output.TotalPaid, output.MonthlyPayment)
		}
	})

	t.Run("invalid input maps to calculator error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateEMIInput{
			Principal:     0,
			AnnualRatePct: 12,
			TermMonths:    12,
		})
		var calcErr *domainerror.CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatalf("expected CalculatorError, got %v", err)
		}
		if calcErr.Code != domainerror.ErrCodeCalcInvalidInput {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCalcInvalidInput, calcErr.Code)
		}
	})

	t.Run("repeated call served from cache", func(t *testing.T) {
		cache := newMemoryCache()
		cached := NewCalculateEMIUseCase(cache)
		input := CalculateEMIInput{Principal: 50000, AnnualRatePct: 10, TermMonths: 24}

		first, err := cached.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := cached.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *first != *second {
			t.Errorf("cached result %+v differs from original %+v", second, first)
		}
		if cache.sets != 1 {
			t.Errorf("expected a single cache write, got %d", cache.sets)
		}
	})
}

func TestCalculateSIP(t *testing.T) {
	uc := NewCalculateSIPUseCase(newMemoryCache())

	t.Run("one year at twelve percent", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateSIPInput{
			MonthlyAmount:   1000,
			AnnualReturnPct: 12,
			Years:           1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(output.FutureValue-12682.50) > 0.02 {
			t.Errorf("expected future value near 12682.50, got %v", output.FutureValue)
		}
		if output.TotalInvested != 12000 {
			t.Errorf("expected invested 12000, got %v", output.TotalInvested)
		}
		if math.Abs(output.TotalGains-(output.FutureValue-output.TotalInvested)) > 0.01 {
			t.Errorf("gains %v inconsistent", output.TotalGains)
		}
	})

	t.Run("zero years rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateSIPInput{
			MonthlyAmount:   1000,
			AnnualReturnPct: 12,
			Years:           0,
		})
		var calcErr *domainerror.CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatalf("expected CalculatorError, got %v", err)
		}
	})

	t.Run("zero monthly amount rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateSIPInput{
			MonthlyAmount:   0,
			AnnualReturnPct: 12,
			Years:           1,
		})
		var calcErr *domainerror.CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatalf("expected CalculatorError, got %v", err)
		}
	})
}

func TestCalculateShare(t *testing.T) {
	uc := NewCalculateShareUseCase(newMemoryCache())

	t.Run("buy includes fees", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:      "buy",
			Quantity:  10,
			UnitPrice: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.GrossValue != 1000 {
			t.Errorf("expected gross 1000, got %v", output.GrossValue)
		}
		if output.TotalFees != 0.5 {
			t.Errorf("expected total fees 0.5, got %v", output.TotalFees)
		}
		if output.NetAmount != 1000.5 {
			t.Errorf("expected net 1000.5, got %v", output.NetAmount)
		}
	})

	t.Run("sell deducts fees", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:      "sell",
			Quantity:  10,
			UnitPrice: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NetAmount != 999.5 {
			t.Errorf("expected net 999.5, got %v", output.NetAmount)
		}
	})

	t.Run("all fees overridden to zero settles fee-free", func(t *testing.T) {
		zero := 0.0
		output, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:          "buy",
			Quantity:      10,
			UnitPrice:     100,
			RegulatoryFee: &zero,
			DepositoryFee: &zero,
			BrokerageFee:  &zero,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TotalFees != 0 {
			t.Errorf("expected total fees 0, got %v", output.TotalFees)
		}
		if output.NetAmount != 1000 {
			t.Errorf("expected net 1000, got %v", output.NetAmount)
		}
	})

	t.Run("negative fee override rejected", func(t *testing.T) {
		negative := -0.0001
		_, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:          "buy",
			Quantity:      10,
			UnitPrice:     100,
			RegulatoryFee: &negative,
		})
		var calcErr *domainerror.CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatalf("expected CalculatorError, got %v", err)
		}
		if calcErr.Code != domainerror.ErrCodeCalcInvalidInput {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCalcInvalidInput, calcErr.Code)
		}
	})

	t.Run("invalid side rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:      "short",
			Quantity:  10,
			UnitPrice: 100,
		})
		var calcErr *domainerror.CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatalf("expected CalculatorError, got %v", err)
		}
	})

	t.Run("degenerate order settles to zero", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:      "buy",
			Quantity:  0,
			UnitPrice: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NetAmount != 0 || output.GrossValue != 0 {
			t.Errorf("expected zero settlement, got %+v", output)
		}
	})

	t.Run("fee override applies", func(t *testing.T) {
		brokerage := 0.001
		output, err := uc.Execute(context.Background(), CalculateShareInput{
			Side:         "buy",
			Quantity:     10,
			UnitPrice:    100,
			BrokerageFee: &brokerage,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.BrokerageFee != 1 {
			t.Errorf("expected brokerage fee 1, got %v", output.BrokerageFee)
		}
		if output.NetAmount != 1001.2 {
			t.Errorf("expected net 1001.2, got %v", output.NetAmount)
		}
	})
}
