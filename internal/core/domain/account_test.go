package domain_test

import (
	"testing"
	"time"

	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, balance int64) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount("acc-1", pln, domain.NewMoney(balance, pln))
	require.NoError(t, err)
	return account
}

func TestNewAccount_CurrencyMismatch(t *testing.T) {
	_, err := domain.NewAccount("acc-1", pln, domain.NewMoney(100, eur))
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}

func TestAccount_Credit(t *testing.T) {
	account := newTestAccount(t, 10000)
	posted := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	err := account.Credit(domain.NewMoney(3000, pln), posted)
	require.NoError(t, err)

	assert.Equal(t, int64(13000), account.Balance().Amount())
	payments := account.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, domain.PaymentTypeCredit, payments[0].Type())
	assert.Equal(t, int64(3000), payments[0].Amount().Amount())
	assert.Equal(t, pln, payments[0].Amount().Currency())
	assert.Equal(t, posted, payments[0].Date())
	assert.NotEmpty(t, payments[0].ID())
}

func TestAccount_Credit_CurrencyMismatch(t *testing.T) {
	account := newTestAccount(t, 10000)

	err := account.Credit(domain.NewMoney(3000, eur), time.Now())

	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
	assert.Equal(t, int64(10000), account.Balance().Amount())
	assert.Empty(t, account.Payments())
}

func TestAccount_Debit(t *testing.T) {
	account := newTestAccount(t, 20000)
	posted := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	err := account.Debit(domain.NewMoney(4000, pln), posted, 0)
	require.NoError(t, err)

	// fee = floor(4000 * 0.5 / 100) = 20, posted total = 4020
	assert.Equal(t, int64(15980), account.Balance().Amount())
	payments := account.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, domain.PaymentTypeDebit, payments[0].Type())
	assert.Equal(t, int64(4020), payments[0].Amount().Amount())
	assert.Equal(t, posted, payments[0].Date())
}

func TestAccount_Debit_DailyLimit(t *testing.T) {
	for _, count := range []int{3, 4, 10} {
		account := newTestAccount(t, 20000)

		err := account.Debit(domain.NewMoney(100, pln), time.Now(), count)

		assert.ErrorIs(t, err, apperrors.ErrTransactionLimitExceeded)
		assert.Equal(t, int64(20000), account.Balance().Amount())
		assert.Empty(t, account.Payments())
	}
}

func TestAccount_Debit_InsufficientBalance(t *testing.T) {
	// Balance covers the principal but not principal plus fee.
	account := newTestAccount(t, 4019)

	err := account.Debit(domain.NewMoney(4000, pln), time.Now(), 0)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	assert.Equal(t, int64(4019), account.Balance().Amount())
	assert.Empty(t, account.Payments())
}

func TestAccount_Debit_ExactlyCoversTotal(t *testing.T) {
	account := newTestAccount(t, 4020)

	err := account.Debit(domain.NewMoney(4000, pln), time.Now(), 0)

	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance().Amount())
}

func TestAccount_Debit_GuardOrdering(t *testing.T) {
	// Currency mismatch wins over the daily cap and the balance check.
	account := newTestAccount(t, 0)
	err := account.Debit(domain.NewMoney(100, eur), time.Now(), 5)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	// The daily cap wins over insufficient balance.
	err = account.Debit(domain.NewMoney(1000000, pln), time.Now(), 3)
	assert.ErrorIs(t, err, apperrors.ErrTransactionLimitExceeded)

	assert.Equal(t, int64(0), account.Balance().Amount())
	assert.Empty(t, account.Payments())
}

func TestAccount_CreditDebitScenario(t *testing.T) {
	account := newTestAccount(t, 10000)
	day := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	require.NoError(t, account.Credit(domain.NewMoney(3000, pln), day))
	assert.Equal(t, int64(13000), account.Balance().Amount())
	assert.Len(t, account.Payments(), 1)

	require.NoError(t, account.Credit(domain.NewMoney(7000, pln), day))
	assert.Equal(t, int64(20000), account.Balance().Amount())
	assert.Len(t, account.Payments(), 2)

	require.NoError(t, account.Debit(domain.NewMoney(4000, pln), day, 0))
	assert.Equal(t, int64(15980), account.Balance().Amount())

	payments := account.Payments()
	require.Len(t, payments, 3)
	last := payments[2]
	assert.Equal(t, domain.PaymentTypeDebit, last.Type())
	assert.Equal(t, int64(4020), last.Amount().Amount())
}

func TestAccount_ThreeDebitsThenCap(t *testing.T) {
	account := newTestAccount(t, 100000)
	day := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	for count := 0; count < 3; count++ {
		require.NoError(t, account.Debit(domain.NewMoney(2000, pln), day, count))
	}
	// each debit posts 2000 + floor(2000*0.005) = 2010
	assert.Equal(t, int64(100000-3*2010), account.Balance().Amount())
	assert.Len(t, account.Payments(), 3)

	err := account.Debit(domain.NewMoney(2000, pln), day, 3)
	assert.ErrorIs(t, err, apperrors.ErrTransactionLimitExceeded)
	assert.Len(t, account.Payments(), 3)
}

func TestRehydrateAccount(t *testing.T) {
	posted := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	payments := []domain.Payment{
		domain.NewPayment("pay-1", domain.NewMoney(3000, pln), domain.PaymentTypeCredit, posted),
		domain.NewPayment("pay-2", domain.NewMoney(1005, pln), domain.PaymentTypeDebit, posted),
	}

	account := domain.RehydrateAccount("acc-9", pln, domain.NewMoney(11995, pln), payments)

	assert.Equal(t, "acc-9", account.ID())
	assert.Equal(t, int64(11995), account.Balance().Amount())
	got := account.Payments()
	require.Len(t, got, 2)
	assert.Equal(t, "pay-1", got[0].ID())
	assert.Equal(t, "pay-2", got[1].ID())

	// The rehydrated aggregate keeps its own copy of the slice.
	payments[0] = domain.NewPayment("pay-x", domain.NewMoney(1, pln), domain.PaymentTypeCredit, posted)
	assert.Equal(t, "pay-1", account.Payments()[0].ID())
}
