// Package calculator contains the stateless calculator use cases. Each one
// wraps a pure function from the finance package with a cache-aside result
// cache; cache failures are logged and the calculation proceeds without it.
package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/smart-paisa/backend/internal/application/adapter"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// resultTTL is how long calculator results stay cached. The functions are
// deterministic, so the TTL only bounds cache growth.
const resultTTL = time.Hour

// CalculateEMIInput represents the input for the EMI calculator.
type CalculateEMIInput struct {
	Principal     float64
	AnnualRatePct float64
	TermMonths    int
}

// CalculateEMIOutput represents the output of the EMI calculator, rounded to
// two decimal places.
type CalculateEMIOutput struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// CalculateEMIUseCase handles EMI calculation with result caching.
type CalculateEMIUseCase struct {
	cache adapter.CalculationCache
}

// NewCalculateEMIUseCase creates a new CalculateEMIUseCase instance.
func NewCalculateEMIUseCase(cache adapter.CalculationCache) *CalculateEMIUseCase {
	return &CalculateEMIUseCase{cache: cache}
}

// Execute performs the EMI calculation.
func (uc *CalculateEMIUseCase) Execute(ctx context.Context, input CalculateEMIInput) (*CalculateEMIOutput, error) {
	key := fmt.Sprintf("calc:emi:%v:%v:%d", input.Principal, input.AnnualRatePct, input.TermMonths)
	if cached, ok := lookup[CalculateEMIOutput](ctx, uc.cache, key); ok {
		return cached, nil
	}

	result, err := finance.Amortize(finance.LoanTerms{
		Principal:     input.Principal,
		AnnualRatePct: input.AnnualRatePct,
		TermMonths:    input.TermMonths,
	})
	if err != nil {
		return nil, wrapInvalidInput(err)
	}

	output := &CalculateEMIOutput{
		MonthlyPayment: finance.Round2(result.MonthlyPayment),
		TotalPaid:      finance.Round2(result.TotalPaid),
		TotalInterest:  finance.Round2(result.TotalInterest),
	}
	store(ctx, uc.cache, key, output)
	return output, nil
}

// wrapInvalidInput maps the core's invalid-input failure to the coded
// calculator error; anything else passes through untouched.
func wrapInvalidInput(err error) error {
	if errors.Is(err, finance.ErrInvalidInput) {
		return domainerror.NewCalculatorError(
			domainerror.ErrCodeCalcInvalidInput,
			"invalid calculator input",
			err,
		)
	}
	return err
}

// lookup fetches and decodes a cached result, reporting whether it was found.
func lookup[T any](ctx context.Context, cache adapter.CalculationCache, key string) (*T, bool) {
	if cache == nil {
		return nil, false
	}

	raw, err := cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, adapter.ErrCacheMiss) {
			slog.Warn("calculation cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("calculation cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &value, true
}

// store serializes and caches a result, logging failures.
func store(ctx context.Context, cache adapter.CalculationCache, key string, value any) {
	if cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("calculation cache encode failed", "key", key, "error", err)
		return
	}
	if err := cache.Set(ctx, key, raw, resultTTL); err != nil {
		slog.Warn("calculation cache write failed", "key", key, "error", err)
	}
}
