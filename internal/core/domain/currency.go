package domain

import (
	"fmt"

	"github.com/mzalewski/bank_payments_app/internal/apperrors"
)

// Currency is an ISO 4217 style currency code (e.g. "PLN").
// Two currencies are equal exactly when their codes are equal.
type Currency string

// NewCurrency validates and returns a currency code.
func NewCurrency(code string) (Currency, error) {
	if len(code) != 3 {
		return "", fmt.Errorf("currency code must be 3 uppercase letters, got %q: %w", code, apperrors.ErrValidation)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", fmt.Errorf("currency code must be 3 uppercase letters, got %q: %w", code, apperrors.ErrValidation)
		}
	}
	return Currency(code), nil
}

// Code returns the currency code as a plain string.
func (c Currency) Code() string {
	return string(c)
}

// Equals reports whether both currencies share the same code.
func (c Currency) Equals(other Currency) bool {
	return c == other
}

func (c Currency) String() string {
	return string(c)
}
