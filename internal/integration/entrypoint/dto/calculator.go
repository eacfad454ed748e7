package dto

// CalculateEMIRequest represents the request body for the EMI calculator.
type CalculateEMIRequest struct {
	Principal     float64 `json:"principal" binding:"required"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	TermMonths    int     `json:"term_months" binding:"required"`
}

// CalculateSIPRequest represents the request body for the SIP calculator.
type CalculateSIPRequest struct {
	MonthlyAmount   float64 `json:"monthly_amount" binding:"required"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
	Years           int     `json:"years" binding:"required"`
}

// CalculateShareRequest represents the request body for the share settlement
// calculator. Fee overrides are optional.
type CalculateShareRequest struct {
	Side          string   `json:"side" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	UnitPrice     float64  `json:"unit_price" binding:"required"`
	RegulatoryFee *float64 `json:"regulatory_fee"`
	DepositoryFee *float64 `json:"depository_fee"`
	BrokerageFee  *float64 `json:"brokerage_fee"`
}
