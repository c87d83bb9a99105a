package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// maxDailyDebits is the maximum number of debit payments an account may
// post per calendar day.
const maxDailyDebits = 3

// debitFeePercent is the fixed fee charged on every debit, in percent.
var debitFeePercent = decimal.RequireFromString("0.5")

// Account is the aggregate root for a single bank account. It owns the
// balance and the ordered payment history, and every business rule is
// enforced here: all mutations go through Credit and Debit, and either
// apply completely or leave the account untouched. Repositories rebuild
// persisted state through RehydrateAccount.
//
// An Account is not safe for concurrent mutation; callers that share an
// instance across goroutines must serialize access themselves.
type Account struct {
	id       string
	currency Currency
	balance  Money
	payments []Payment
}

// NewAccount creates an account with the given id, currency and opening
// balance. The opening balance must be denominated in the account currency.
func NewAccount(id string, currency Currency, initialBalance Money) (*Account, error) {
	if !initialBalance.Currency().Equals(currency) {
		return nil, fmt.Errorf("initial balance currency %s does not match account currency %s: %w",
			initialBalance.Currency(), currency, apperrors.ErrCurrencyMismatch)
	}
	return &Account{
		id:       id,
		currency: currency,
		balance:  initialBalance,
	}, nil
}

// RehydrateAccount rebuilds an aggregate from persisted state. It is meant
// for repository implementations only and applies no business rules; the
// stored state is trusted to have been produced by Credit and Debit.
func RehydrateAccount(id string, currency Currency, balance Money, payments []Payment) *Account {
	return &Account{
		id:       id,
		currency: currency,
		balance:  balance,
		payments: append([]Payment(nil), payments...),
	}
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Currency returns the account currency.
func (a *Account) Currency() Currency {
	return a.currency
}

// Balance returns the current balance.
func (a *Account) Balance() Money {
	return a.balance
}

// Payments returns a copy of the payment history in posting order.
func (a *Account) Payments() []Payment {
	return append([]Payment(nil), a.payments...)
}

// Credit adds money to the account and records a credit payment. The only
// guard is the currency match; credits have no frequency or amount limit.
func (a *Account) Credit(money Money, date time.Time) error {
	if !a.currency.Equals(money.Currency()) {
		return fmt.Errorf("credit currency %s does not match account currency %s: %w",
			money.Currency(), a.currency, apperrors.ErrCurrencyMismatch)
	}
	balance, err := a.balance.Add(money)
	if err != nil {
		return err
	}
	a.balance = balance
	a.payments = append(a.payments, NewPayment(uuid.NewString(), money, PaymentTypeCredit, date))
	return nil
}

// Debit withdraws money plus the fixed fee and records a debit payment for
// the combined total. dailyDebitCount is the number of debit payments the
// account has already posted on the same calendar day; the aggregate holds
// no clock of its own, so the caller supplies the count.
//
// Guards run in a fixed order: currency match, daily cap, then balance
// against principal plus fee. Nothing is mutated unless every guard passes.
func (a *Account) Debit(money Money, date time.Time, dailyDebitCount int) error {
	if !a.currency.Equals(money.Currency()) {
		return fmt.Errorf("debit currency %s does not match account currency %s: %w",
			money.Currency(), a.currency, apperrors.ErrCurrencyMismatch)
	}
	if dailyDebitCount >= maxDailyDebits {
		return fmt.Errorf("account %s already posted %d debits today: %w",
			a.id, dailyDebitCount, apperrors.ErrTransactionLimitExceeded)
	}

	fee := money.CalculateFee(debitFeePercent)
	totalAmount, err := money.Add(fee)
	if err != nil {
		return err
	}

	covered, err := a.balance.GreaterThanOrEqual(totalAmount)
	if err != nil {
		return err
	}
	if !covered {
		return fmt.Errorf("balance %s cannot cover %s: %w", a.balance, totalAmount, apperrors.ErrInsufficientBalance)
	}

	balance, err := a.balance.Subtract(totalAmount)
	if err != nil {
		return err
	}
	a.balance = balance
	a.payments = append(a.payments, NewPayment(uuid.NewString(), totalAmount, PaymentTypeDebit, date))
	return nil
}
