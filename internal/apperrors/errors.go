package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCurrencyMismatch indicates that a money operation mixed two different currencies.
var ErrCurrencyMismatch = errors.New("currencies do not match")

// ErrInsufficientBalance indicates a debit whose fee-adjusted total exceeds the available balance.
var ErrInsufficientBalance = errors.New("insufficient balance for payment")

// ErrTransactionLimitExceeded indicates the daily debit cap has already been reached.
var ErrTransactionLimitExceeded = errors.New("daily debit limit exceeded")
