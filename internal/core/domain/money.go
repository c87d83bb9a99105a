package domain

import (
	"fmt"

	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an immutable amount of a single currency, held in minor units
// (e.g. grosze for PLN). Arithmetic between two Money values requires
// matching currencies; every operation returns a new value and never
// mutates its receiver.
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney creates a monetary value of amount minor units in the given currency.
func NewMoney(amount int64, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// Amount returns the value in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency of this value.
func (m Money) Currency() Currency {
	return m.currency
}

// Equals reports whether both values have the same amount and currency.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency.Equals(other.currency)
}

// Add returns the sum of both values.
func (m Money) Add(other Money) (Money, error) {
	if !m.currency.Equals(other.currency) {
		return Money{}, fmt.Errorf("cannot add %s to %s: %w", other.currency, m.currency, apperrors.ErrCurrencyMismatch)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns this value minus the other. The result may be negative;
// balance checks are the caller's responsibility.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.currency.Equals(other.currency) {
		return Money{}, fmt.Errorf("cannot subtract %s from %s: %w", other.currency, m.currency, apperrors.ErrCurrencyMismatch)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// CalculateFee returns the fee due on this value at the given percentage.
// The minor-unit result is truncated toward zero, matching integer
// division semantics rather than any rounding mode.
func (m Money) CalculateFee(percent decimal.Decimal) Money {
	fee := decimal.NewFromInt(m.amount).Mul(percent).Div(decimal.NewFromInt(100)).IntPart()
	return Money{amount: fee, currency: m.currency}
}

// GreaterThanOrEqual reports whether this value is at least the other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if !m.currency.Equals(other.currency) {
		return false, fmt.Errorf("cannot compare %s with %s: %w", m.currency, other.currency, apperrors.ErrCurrencyMismatch)
	}
	return m.amount >= other.amount, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
