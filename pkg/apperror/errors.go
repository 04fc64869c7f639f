package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to callers. They are part of the wire contract.
const (
	CodeMissingBody     = "missing-body"
	CodeExpired         = "expired"
	CodeReplay          = "replay"
	CodeBadWalletProof  = "bad-wallet-proof"
	CodeBadSig          = "bad-sig"
	CodeWrongFeature    = "wrong-feature"
	CodeBadReceiptJSON  = "bad-receipt-json"
	CodePaymentRequired = "payment-required"
	CodeInvalidRequest  = "invalid-request"
	CodeUnauthorized    = "unauthorized"
	CodeServerError     = "server-error"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the error code carried by err, or CodeServerError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeServerError
}

// ---- Settlement ----

func ErrMissingBody() *AppError {
	return New(CodeMissingBody, "Invoice and wallet proof are required", http.StatusBadRequest)
}

func ErrExpired() *AppError {
	return New(CodeExpired, "Invoice or receipt has expired", http.StatusBadRequest)
}

func ErrReplay() *AppError {
	return New(CodeReplay, "Invoice nonce has already been settled", http.StatusConflict)
}

func ErrBadWalletProof() *AppError {
	return New(CodeBadWalletProof, "Wallet proof failed verification", http.StatusUnauthorized)
}

// ---- Receipts ----

func ErrBadSig() *AppError {
	return New(CodeBadSig, "Receipt signature is invalid", http.StatusUnauthorized)
}

// ErrReceiptExpired is the resource-guard variant of ErrExpired: an expired receipt
// no longer authorizes access.
func ErrReceiptExpired() *AppError {
	return New(CodeExpired, "Receipt has expired", http.StatusUnauthorized)
}

func ErrWrongFeature(required string) *AppError {
	return New(CodeWrongFeature, fmt.Sprintf("Receipt does not grant feature %q", required), http.StatusForbidden)
}

func ErrBadReceiptJSON() *AppError {
	return New(CodeBadReceiptJSON, "Receipt is not valid JSON", http.StatusBadRequest)
}

func ErrPaymentRequired() *AppError {
	return New(CodePaymentRequired, "Payment receipt required", http.StatusPaymentRequired)
}

// ---- Requests & access ----

// Validation returns an invalid-request error with a caller-facing message.
func Validation(message string) *AppError {
	return New(CodeInvalidRequest, message, http.StatusBadRequest)
}

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System ----

// InternalError wraps an unexpected failure. The wrapped error is logged, never returned to callers.
func InternalError(err error) *AppError {
	return Wrap(CodeServerError, "Internal server error", http.StatusInternalServerError, err)
}
