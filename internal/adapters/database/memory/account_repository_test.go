package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/mzalewski/bank_payments_app/internal/adapters/database/memory"
	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pln = domain.Currency("PLN")

func newTestAccount(t *testing.T, balance int64) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount("acc-1", pln, domain.NewMoney(balance, pln))
	require.NoError(t, err)
	return account
}

func TestSaveAndFindAccount(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	postedAt := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	account := newTestAccount(t, 10000)
	require.NoError(t, account.Credit(domain.NewMoney(3000, pln), postedAt))
	require.NoError(t, repo.SaveAccount(ctx, account))

	found, err := repo.FindAccountByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, account.ID(), found.ID())
	assert.Equal(t, pln, found.Currency())
	assert.Equal(t, int64(13000), found.Balance().Amount())
	require.Len(t, found.Payments(), 1)
	assert.Equal(t, domain.PaymentTypeCredit, found.Payments()[0].Type())
	assert.True(t, found.Payments()[0].Date().Equal(postedAt))
}

func TestFindAccountByID_NotFound(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, err := repo.FindAccountByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveAccount_StoresSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	account := newTestAccount(t, 10000)

	require.NoError(t, repo.SaveAccount(ctx, account))

	// Mutating the aggregate after saving must not leak into the store.
	require.NoError(t, account.Credit(domain.NewMoney(5000, pln), time.Now().UTC()))

	found, err := repo.FindAccountByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), found.Balance().Amount())
	assert.Empty(t, found.Payments())
}

func TestCountDebitsOnDate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	day := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	account := newTestAccount(t, 100000)
	require.NoError(t, account.Credit(domain.NewMoney(1000, pln), day.Add(8*time.Hour)))
	require.NoError(t, account.Debit(domain.NewMoney(1000, pln), day.Add(9*time.Hour), 0))
	require.NoError(t, account.Debit(domain.NewMoney(1000, pln), day.Add(10*time.Hour), 1))
	require.NoError(t, account.Debit(domain.NewMoney(1000, pln), day.Add(-2*time.Hour), 0)) // previous day
	require.NoError(t, repo.SaveAccount(ctx, account))

	count, err := repo.CountDebitsOnDate(ctx, "acc-1", day.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountDebitsOnDate(ctx, "acc-1", day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountDebitsOnDate(ctx, "acc-1", day.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountDebitsOnDate_ComparesUTCCalendarDay(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	// 23:30 UTC on June 12.
	postedAt := time.Date(2025, 6, 12, 23, 30, 0, 0, time.UTC)

	account := newTestAccount(t, 100000)
	require.NoError(t, account.Debit(domain.NewMoney(1000, pln), postedAt, 0))
	require.NoError(t, repo.SaveAccount(ctx, account))

	// 01:30 on June 13 in UTC+2 is still June 12 in UTC.
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	count, err := repo.CountDebitsOnDate(ctx, "acc-1", time.Date(2025, 6, 13, 1, 30, 0, 0, plus2))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountDebitsOnDate_NotFound(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, err := repo.CountDebitsOnDate(context.Background(), "missing", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
