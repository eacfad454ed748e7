// Package error defines domain-specific errors for the Smart Paisa application.
package error

// CalculatorErrorCode defines error codes for calculator errors.
// Format: CALC-XXYYYY where XX is category and YYYY is specific error.
type CalculatorErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeCalcInvalidInput CalculatorErrorCode = "CALC-010001"
)

// CalculatorError represents a calculator error with code and message. The
// calculation core only ever raises invalid-input failures; this wrapper
// carries them across the use-case boundary with a stable code.
type CalculatorError struct {
	Code    CalculatorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalculatorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalculatorError) Unwrap() error {
	return e.Err
}

// NewCalculatorError creates a new CalculatorError with the given code and message.
func NewCalculatorError(code CalculatorErrorCode, message string, err error) *CalculatorError {
	return &CalculatorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
