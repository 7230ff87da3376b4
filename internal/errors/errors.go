package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InvalidTransaction ErrorCode = "invalid_transaction"
	InvalidInput       ErrorCode = "invalid_input"
	MethodNotAllowed   ErrorCode = "method_not_allowed"
	InternalError      ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetails returns a copy carrying details, leaving predefined errors untouched.
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case InvalidTransaction:
		return http.StatusUnprocessableEntity
	case InvalidInput:
		return http.StatusBadRequest
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsInvalidTransaction reports whether err is a rejected construction,
// deposit or withdrawal, whatever the variant.
func IsInvalidTransaction(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == InvalidTransaction
}

// Predefined errors for rejected account operations
var (
	ErrInvalidOpeningBalance = NewAppError(InvalidTransaction, "Invalid transaction: Creating Account with Invalid Balance not permitted.")
	ErrInvalidDepositAmount  = NewAppError(InvalidTransaction, "Invalid transaction: Deposit in Account with Invalid money amount not permitted.")
	ErrInvalidWithdrawAmount = NewAppError(InvalidTransaction, "Invalid transaction: Withdraw from Account with Invalid money amount not permitted.")
	ErrInsufficientBalance   = NewAppError(InvalidTransaction, "Invalid transaction: Withdraw amount more than of the available balance not permitted.")
)
