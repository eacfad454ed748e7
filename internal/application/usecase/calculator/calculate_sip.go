package calculator

import (
	"context"
	"fmt"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// CalculateSIPInput represents the input for the SIP calculator.
type CalculateSIPInput struct {
	MonthlyAmount   float64
	AnnualReturnPct float64
	Years           int
}

// CalculateSIPOutput represents the output of the SIP calculator.
type CalculateSIPOutput struct {
	FutureValue   float64 `json:"future_value"`
	TotalInvested float64 `json:"total_invested"`
	TotalGains    float64 `json:"total_gains"`
}

// CalculateSIPUseCase handles SIP future-value calculation with result caching.
type CalculateSIPUseCase struct {
	cache adapter.CalculationCache
}

// NewCalculateSIPUseCase creates a new CalculateSIPUseCase instance.
func NewCalculateSIPUseCase(cache adapter.CalculationCache) *CalculateSIPUseCase {
	return &CalculateSIPUseCase{cache: cache}
}

// Execute performs the SIP calculation.
func (uc *CalculateSIPUseCase) Execute(ctx context.Context, input CalculateSIPInput) (*CalculateSIPOutput, error) {
	key := fmt.Sprintf("calc:sip:%v:%v:%d", input.MonthlyAmount, input.AnnualReturnPct, input.Years)
	if cached, ok := lookup[CalculateSIPOutput](ctx, uc.cache, key); ok {
		return cached, nil
	}

	futureValue, err := finance.FutureValue(input.MonthlyAmount, input.AnnualReturnPct, input.Years)
	if err != nil {
		return nil, wrapInvalidInput(err)
	}

	invested := input.MonthlyAmount * float64(input.Years) * 12
	output := &CalculateSIPOutput{
		FutureValue:   finance.Round2(futureValue),
		TotalInvested: finance.Round2(invested),
		TotalGains:    finance.Round2(futureValue - invested),
	}
	store(ctx, uc.cache, key, output)
	return output, nil
}
