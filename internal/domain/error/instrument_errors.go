// Package error defines domain-specific errors for the Smart Paisa application.
package error

import "errors"

// Loan and insurance domain errors.
var (
	// ErrLoanNotFound is returned when a loan is not found in the system.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrNotAuthorizedToModifyLoan is returned when user is not authorized to modify a loan.
	ErrNotAuthorizedToModifyLoan = errors.New("not authorized to modify loan")

	// ErrPolicyNotFound is returned when an insurance policy is not found in the system.
	ErrPolicyNotFound = errors.New("insurance policy not found")

	// ErrNotAuthorizedToModifyPolicy is returned when user is not authorized to modify a policy.
	ErrNotAuthorizedToModifyPolicy = errors.New("not authorized to modify policy")
)

// LoanErrorCode defines error codes for loan errors.
// Format: LOAN-XXYYYY where XX is category and YYYY is specific error.
type LoanErrorCode string

const (
	ErrCodeLoanInvalidTerms  LoanErrorCode = "LOAN-010001"
	ErrCodeLoanNotFound      LoanErrorCode = "LOAN-020001"
	ErrCodeLoanNotAuthorized LoanErrorCode = "LOAN-020002"
)

// InsuranceErrorCode defines error codes for insurance errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsuranceErrorCode string

const (
	ErrCodePolicyInvalidTerms  InsuranceErrorCode = "INS-010001"
	ErrCodePolicyNotFound      InsuranceErrorCode = "INS-020001"
	ErrCodePolicyNotAuthorized InsuranceErrorCode = "INS-020002"
)

// LoanError represents a loan error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{Code: code, Message: message, Err: err}
}

// InsuranceError represents an insurance error with code and message.
type InsuranceError struct {
	Code    InsuranceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsuranceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsuranceError) Unwrap() error {
	return e.Err
}

// NewInsuranceError creates a new InsuranceError with the given code and message.
func NewInsuranceError(code InsuranceErrorCode, message string, err error) *InsuranceError {
	return &InsuranceError{Code: code, Message: message, Err: err}
}
