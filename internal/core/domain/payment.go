package domain

import (
	"fmt"
	"time"

	"github.com/mzalewski/bank_payments_app/internal/apperrors"
)

// PaymentType is the closed set of directions a posted payment can take.
type PaymentType string

const (
	PaymentTypeCredit PaymentType = "credit"
	PaymentTypeDebit  PaymentType = "debit"
)

// ParsePaymentType validates s against the closed set. Matching is exact;
// no case normalisation is applied.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentTypeCredit, PaymentTypeDebit:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("invalid payment type %q: %w", s, apperrors.ErrValidation)
}

func (t PaymentType) String() string {
	return string(t)
}

// Payment is a single posted transaction in an account's history. It is
// created by the Account aggregate (or rebuilt by a repository from
// persisted state) and never changes afterwards. For debits the amount is
// the posted total, principal plus fee.
type Payment struct {
	id          string
	amount      Money
	paymentType PaymentType
	date        time.Time
}

// NewPayment builds a payment record. It performs no validation of its
// own: the aggregate has already checked the amount and currency.
func NewPayment(id string, amount Money, paymentType PaymentType, date time.Time) Payment {
	return Payment{
		id:          id,
		amount:      amount,
		paymentType: paymentType,
		date:        date,
	}
}

// ID returns the opaque payment identifier.
func (p Payment) ID() string {
	return p.id
}

// Amount returns the posted amount.
func (p Payment) Amount() Money {
	return p.amount
}

// Type returns whether the payment was a credit or a debit.
func (p Payment) Type() PaymentType {
	return p.paymentType
}

// Date returns when the payment was posted.
func (p Payment) Date() time.Time {
	return p.date
}
