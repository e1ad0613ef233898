package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidKind          = errors.New("invalid transaction type")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrCategoryKindMismatch = errors.New("category is not valid for transaction type")
	ErrInvalidPeriod        = errors.New("period end must not precede start")
	ErrInvalidSavingsRate   = errors.New("savings rate must be below 100 percent")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidIncomeType  = errors.New("invalid income type")

	// Authentication errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
