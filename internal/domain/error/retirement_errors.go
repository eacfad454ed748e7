// Package error defines domain-specific errors for the Smart Paisa application.
package error

import "errors"

// Retirement planner domain errors.
var (
	// ErrRetirementPlanNotFound is returned when the user has no saved plan.
	ErrRetirementPlanNotFound = errors.New("retirement plan not found")

	// ErrInvalidAgeRange is returned when retirement age does not exceed current age.
	ErrInvalidAgeRange = errors.New("retirement age must be greater than current age")
)

// RetirementErrorCode defines error codes for retirement planner errors.
// Format: RET-XXYYYY where XX is category and YYYY is specific error.
type RetirementErrorCode string

const (
	ErrCodeInvalidAgeRange       RetirementErrorCode = "RET-010001"
	ErrCodeInvalidPlanInput      RetirementErrorCode = "RET-010002"
	ErrCodeRetirementPlanMissing RetirementErrorCode = "RET-020001"
)

// RetirementError represents a retirement planner error with code and message.
type RetirementError struct {
	Code    RetirementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RetirementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RetirementError) Unwrap() error {
	return e.Err
}

// NewRetirementError creates a new RetirementError with the given code and message.
func NewRetirementError(code RetirementErrorCode, message string, err error) *RetirementError {
	return &RetirementError{Code: code, Message: message, Err: err}
}
