package finance

// TradeSide is the direction of a share order.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// FeeSchedule holds the named fee rates applied to the gross trade value,
// each expressed as a fraction.
type FeeSchedule struct {
	Regulatory float64
	Depository float64
	Brokerage  float64
}

// DefaultFeeSchedule is the standard regulatory fee schedule: 0.01%
// regulatory levy, 0.01% depository charge, 0.03% brokerage commission.
var DefaultFeeSchedule = FeeSchedule{
	Regulatory: 0.0001,
	Depository: 0.0001,
	Brokerage:  0.0003,
}

func (f FeeSchedule) total() float64 {
	return f.Regulatory + f.Depository + f.Brokerage
}

// ShareOrder describes a share buy or sell order. A nil Fees field means the
// default schedule applies; an explicit schedule is used as given, zero rates
// included.
type ShareOrder struct {
	Side      TradeSide
	Quantity  int
	UnitPrice float64
	Fees      *FeeSchedule
}

// ShareSettlement is the cost breakdown of a settled order. For a buy,
// NetAmount is the total cost including fees; for a sell, the proceeds after
// fees.
type ShareSettlement struct {
	GrossValue float64
	TotalFees  float64
	NetAmount  float64
}

// Settle computes the settlement for a share order. Non-positive quantity or
// unit price yields an all-zero settlement rather than an error; degenerate
// trades are worth nothing, never negative.
func Settle(order ShareOrder) ShareSettlement {
	if order.Quantity <= 0 || order.UnitPrice <= 0 {
		return ShareSettlement{}
	}

	fees := DefaultFeeSchedule
	if order.Fees != nil {
		fees = *order.Fees
	}

	gross := float64(order.Quantity) * order.UnitPrice
	totalFees := gross * fees.total()

	net := gross + totalFees
	if order.Side == TradeSideSell {
		net = gross - totalFees
	}

	return ShareSettlement{
		GrossValue: gross,
		TotalFees:  totalFees,
		NetAmount:  net,
	}
}
