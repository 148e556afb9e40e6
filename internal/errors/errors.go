// Package errors provides custom error types for the kaslele API.
// All service- and store-layer errors use AppError so callers always see a
// distinct, reportable condition and never raw driver details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation errors. These are raised before any store mutation is attempted.
var (
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidKind     = &AppError{Code: "INVALID_KIND", Message: "Kind must be Pemasukan or Pengeluaran", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidCategory = &AppError{Code: "INVALID_CATEGORY", Message: "Category must be Harian, Mingguan, Bulanan or Tahunan", StatusCode: http.StatusUnprocessableEntity}
)

// Store errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrStoreUnavailable    = &AppError{Code: "STORE_UNAVAILABLE", Message: "Transaction store is unavailable", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
