package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Retryable  bool   `json:"-"`
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

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsRetryable reports whether err is a transient failure worth retrying.
func IsRetryable(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Retryable
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidAccessKey() *AppError {
	return New("SEC_001", "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

func ErrAdminUnauthorized() *AppError {
	return New("SEC_005", "Invalid admin token", http.StatusUnauthorized)
}

func ErrObserverUnauthorized() *AppError {
	return New("SEC_006", "Invalid observer token", http.StatusUnauthorized)
}

// ---- Payment Business Logic (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrDuplicateTransaction() *AppError {
	return New("PAY_003", "Duplicate request", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidRefund() *AppError {
	return New("PAY_006", "Payment not eligible for refund", http.StatusBadRequest)
}

func ErrRefundAmountExceedsOriginal() *AppError {
	return New("PAY_007", "Refund amount exceeds original payment amount", http.StatusBadRequest)
}

func ErrInvalidCryptoType(value string) *AppError {
	return New("PAY_008", fmt.Sprintf("unsupported crypto type: %s", value), http.StatusBadRequest)
}

func ErrInvalidAddress(network string) *AppError {
	return New("PAY_009", fmt.Sprintf("invalid %s address", network), http.StatusBadRequest)
}

func ErrDailyVolumeLimitExceeded() *AppError {
	return New("PAY_005", "Daily volume limit exceeded for unverified merchant", http.StatusUnprocessableEntity)
}

func ErrInsufficientGas() *AppError {
	return New("PAY_010", "Insufficient native balance to cover network fee", http.StatusPaymentRequired)
}

// ErrStateConflict reports a lifecycle transition that is not allowed.
func ErrStateConflict(message string) *AppError {
	return New("PAY_011", message, http.StatusConflict)
}

func ErrApprovalRequired() *AppError {
	return New("PAY_012", "Withdrawal awaits administrative approval", http.StatusConflict)
}

func ErrPayloadTooLarge() *AppError {
	return New("PAY_013", "Request body too large", http.StatusRequestEntityTooLarge)
}

func ErrSandboxOnly() *AppError {
	return New("PAY_014", "Simulation is only available in sandbox mode", http.StatusForbidden)
}

// ErrSandboxFunds refuses to move funds credited by a simulation.
func ErrSandboxFunds() *AppError {
	return New("PAY_015", "Sandbox funds cannot be moved on chain", http.StatusForbidden)
}

// ---- Key management (KEY) ----

// ErrInvalidPassword never distinguishes a wrong password from corrupted key material.
func ErrInvalidPassword() *AppError {
	return New("KEY_001", "Invalid encryption password", http.StatusUnauthorized)
}

func ErrInvalidPrivateKey() *AppError {
	return New("KEY_002", "Invalid private key", http.StatusBadRequest)
}

func ErrKeyUnavailable() *AppError {
	return New("KEY_003", "Wallet has no signing key", http.StatusConflict)
}

// ---- Chain (CHAIN) ----

// ErrUpstreamChain wraps a transient RPC or node failure.
func ErrUpstreamChain(err error) *AppError {
	e := Wrap("CHAIN_001", "Blockchain node unavailable", http.StatusServiceUnavailable, err)
	e.Retryable = true
	return e
}

// ErrChainRejected wraps a definitive rejection by the network.
func ErrChainRejected(err error) *AppError {
	return Wrap("CHAIN_002", "Transaction rejected by network", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New("AUTH_004", "Merchant account is suspended", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	e := Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
	e.Retryable = true
	return e
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}
