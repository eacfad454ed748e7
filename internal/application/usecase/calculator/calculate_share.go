package calculator

import (
	"context"
	"fmt"

	"github.com/smart-paisa/backend/internal/application/adapter"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// CalculateShareInput represents the input for the share settlement
// calculator. Fee overrides are optional; nil fields fall back to the
// default schedule.
type CalculateShareInput struct {
	Side          string
	Quantity      int
	UnitPrice     float64
	RegulatoryFee *float64
	DepositoryFee *float64
	BrokerageFee  *float64
}

// CalculateShareOutput represents the output of the share settlement
// calculator.
type CalculateShareOutput struct {
	GrossValue    float64 `json:"gross_value"`
	RegulatoryFee float64 `json:"regulatory_fee"`
	DepositoryFee float64 `json:"depository_fee"`
	BrokerageFee  float64 `json:"brokerage_fee"`
	TotalFees     float64 `json:"total_fees"`
	NetAmount     float64 `json:"net_amount"`
}

// CalculateShareUseCase handles share buy/sell settlement with result caching.
type CalculateShareUseCase struct {
	cache adapter.CalculationCache
}

// NewCalculateShareUseCase creates a new CalculateShareUseCase instance.
func NewCalculateShareUseCase(cache adapter.CalculationCache) *CalculateShareUseCase {
	return &CalculateShareUseCase{cache: cache}
}

// Execute performs the share settlement calculation.
func (uc *CalculateShareUseCase) Execute(ctx context.Context, input CalculateShareInput) (*CalculateShareOutput, error) {
	side := finance.TradeSide(input.Side)
	if side != finance.TradeSideBuy && side != finance.TradeSideSell {
		return nil, domainerror.NewCalculatorError(
			domainerror.ErrCodeCalcInvalidInput,
			fmt.Sprintf("invalid trade side: %s", input.Side),
			nil,
		)
	}

	fees := finance.DefaultFeeSchedule
	if input.RegulatoryFee != nil {
		fees.Regulatory = *input.RegulatoryFee
	}
	if input.DepositoryFee != nil {
		fees.Depository = *input.DepositoryFee
	}
	if input.BrokerageFee != nil {
		fees.Brokerage = *input.BrokerageFee
	}
	if fees.Regulatory < 0 || fees.Depository < 0 || fees.Brokerage < 0 {
		return nil, domainerror.NewCalculatorError(
			domainerror.ErrCodeCalcInvalidInput,
			"fee rates must not be negative",
			nil,
		)
	}

	key := fmt.Sprintf("calc:share:%s:%d:%v:%v:%v:%v",
		side, input.Quantity, input.UnitPrice, fees.Regulatory, fees.Depository, fees.Brokerage)
	if cached, ok := lookup[CalculateShareOutput](ctx, uc.cache, key); ok {
		return cached, nil
	}

	settlement := finance.Settle(finance.ShareOrder{
		Side:      side,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Fees:      &fees,
	})

	output := &CalculateShareOutput{
		GrossValue:    finance.Round2(settlement.GrossValue),
		RegulatoryFee: finance.Round2(settlement.GrossValue * fees.Regulatory),
		DepositoryFee: finance.Round2(settlement.GrossValue * fees.Depository),
		BrokerageFee:  finance.Round2(settlement.GrossValue * fees.Brokerage),
		TotalFees:     finance.Round2(settlement.TotalFees),
		NetAmount:     finance.Round2(settlement.NetAmount),
	}
	store(ctx, uc.cache, key, output)
	return output, nil
}
