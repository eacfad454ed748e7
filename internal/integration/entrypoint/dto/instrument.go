package dto

import (
	"time"

	"github.com/smart-paisa/backend/internal/domain/entity"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// CreateLoanRequest represents the request body for registering a loan.
type CreateLoanRequest struct {
	Name          string    `json:"name" binding:"required,min=1,max=100"`
	Principal     string    `json:"principal" binding:"required"`
	AnnualRatePct float64   `json:"annual_rate_pct"`
	TermMonths    int       `json:"term_months" binding:"required,min=1"`
	StartDate     time.Time `json:"start_date"`
}

// AmortizationResultResponse represents the derived repayment figures of a loan.
type AmortizationResultResponse struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// ScheduleEntryResponse represents one month of an amortization schedule.
type ScheduleEntryResponse struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Remaining float64 `json:"remaining"`
}

// LoanResponse represents a loan with its derived repayment figures.
type LoanResponse struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	Principal     string                     `json:"principal"`
	AnnualRatePct float64                    `json:"annual_rate_pct"`
	TermMonths    int                        `json:"term_months"`
	StartDate     time.Time                  `json:"start_date"`
	Result        AmortizationResultResponse `json:"result"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// LoanScheduleResponse represents the response for a loan's schedule.
type LoanScheduleResponse struct {
	Loan     LoanResponse            `json:"loan"`
	Schedule []ScheduleEntryResponse `json:"schedule"`
}

// ListLoansResponse represents the response for listing loans.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// ToLoanResponse converts a loan and its derived figures to a DTO. The
// repayment figures are rounded at the presentation boundary.
func ToLoanResponse(loan *entity.Loan, result finance.AmortizationResult) LoanResponse {
	return LoanResponse{
		ID:            loan.ID.String(),
		Name:          loan.Name,
		Principal:     loan.Principal.StringFixed(2),
		AnnualRatePct: loan.AnnualRatePct,
		TermMonths:    loan.TermMonths,
		StartDate:     loan.StartDate,
		Result: AmortizationResultResponse{
			MonthlyPayment: finance.Round2(result.MonthlyPayment),
			TotalPaid:      finance.Round2(result.TotalPaid),
			TotalInterest:  finance.Round2(result.TotalInterest),
		},
		CreatedAt: loan.CreatedAt,
	}
}

// ToScheduleResponse converts an amortization schedule to DTOs.
func ToScheduleResponse(schedule []finance.ScheduleEntry) []ScheduleEntryResponse {
	entries := make([]ScheduleEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, ScheduleEntryResponse{
			Month:     e.Month,
			Payment:   finance.Round2(e.Payment),
			Interest:  finance.Round2(e.Interest),
			Principal: finance.Round2(e.Principal),
			Remaining: finance.Round2(e.Remaining),
		})
	}
	return entries
}

// CreatePolicyRequest represents the request body for registering an
// insurance policy.
type CreatePolicyRequest struct {
	Name          string    `json:"name" binding:"required,min=1,max=100"`
	Provider      string    `json:"provider" binding:"max=100"`
	AnnualPremium string    `json:"annual_premium" binding:"required"`
	TermYears     int       `json:"term_years" binding:"required,min=1"`
	AnnualRatePct float64   `json:"annual_rate_pct"`
	NextDueDate   time.Time `json:"next_due_date"`
}

// PolicyResponse represents an insurance policy with its derived maturity value.
type PolicyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Provider      string    `json:"provider,omitempty"`
	AnnualPremium string    `json:"annual_premium"`
	TermYears     int       `json:"term_years"`
	AnnualRatePct float64   `json:"annual_rate_pct"`
	NextDueDate   time.Time `json:"next_due_date"`
	MaturityValue float64   `json:"maturity_value"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListPoliciesResponse represents the response for listing policies.
type ListPoliciesResponse struct {
	Policies     []PolicyResponse `json:"policies"`
	TotalPremium string           `json:"total_premium"`
}

// ToPolicyResponse converts a policy and its derived maturity value to a DTO.
func ToPolicyResponse(policy *entity.InsurancePolicy, maturityValue float64) PolicyResponse {
	return PolicyResponse{
		ID:            policy.ID.String(),
		Name:          policy.Name,
		Provider:      policy.Provider,
		AnnualPremium: policy.AnnualPremium.StringFixed(2),
		TermYears:     policy.TermYears,
		AnnualRatePct: policy.AnnualRatePct,
		NextDueDate:   policy.NextDueDate,
		MaturityValue: maturityValue,
		CreatedAt:     policy.CreatedAt,
	}
}
