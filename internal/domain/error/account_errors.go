// Package error defines domain-specific errors for the Smart Paisa application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthorizedToModifyAccount is returned when user is not authorized to modify an account.
	ErrNotAuthorizedToModifyAccount = errors.New("not authorized to modify account")

	// ErrInvalidAccountKind is returned when the account kind is invalid.
	ErrInvalidAccountKind = errors.New("invalid account kind")

	// ErrInvalidAccountName is returned when the account name is empty or too long.
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrInvalidCardExpiry is returned when a card expiry date is not in MM/YY form.
	ErrInvalidCardExpiry = errors.New("invalid card expiry date")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountKind AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountName AccountErrorCode = "ACC-010002"
	ErrCodeInvalidCardExpiry  AccountErrorCode = "ACC-010003"

	// Access errors (02XXXX)
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-020001"
	ErrCodeAccountNotAuthorized AccountErrorCode = "ACC-020002"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
