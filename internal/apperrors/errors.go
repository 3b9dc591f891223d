package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrForbidden          = errors.New("operation not permitted")

	ErrServerNotFound       = errors.New("mining server not found")
	ErrServerExists         = errors.New("mining server with this name already exists")
	ErrContractNotFound     = errors.New("mining contract not found")
	ErrInvalidPeriod        = errors.New("invalid contract period")
	ErrInvalidPeriodReturn  = errors.New("period return must not be negative")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")

	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrInvalidStatus      = errors.New("invalid withdrawal status transition")

	ErrBankNotFound   = errors.New("bank account not found")
	ErrBankExists     = errors.New("bank account with this number already exists")
	ErrWalletNotFound = errors.New("wallet not found")
	ErrWalletExists   = errors.New("wallet with this address already exists")

	ErrKYCNotFound         = errors.New("kyc record not found")
	ErrKYCAlreadySubmitted = errors.New("kyc record already submitted")
)
