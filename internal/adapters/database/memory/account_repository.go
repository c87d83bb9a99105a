// Package memory provides an in-memory AccountRepositoryFacade used by
// tests and local development. It stores model snapshots rather than live
// aggregates, so saved state is isolated from later mutations.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	portsrepo "github.com/mzalewski/bank_payments_app/internal/core/ports/repositories"
	"github.com/mzalewski/bank_payments_app/internal/models"
	"github.com/mzalewski/bank_payments_app/internal/utils/mapping"
)

type accountRecord struct {
	account  models.Account
	payments []models.Payment
}

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]accountRecord
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() portsrepo.AccountRepositoryFacade {
	return &accountRepository{
		accounts: make(map[string]accountRecord),
	}
}

// Ensure accountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) SaveAccount(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID()] = accountRecord{
		account:  mapping.ToModelAccount(account),
		payments: mapping.ToModelPayments(account),
	}
	return nil
}

func (r *accountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return mapping.ToDomainAccount(record.account, record.payments)
}

func (r *accountRepository) CountDebitsOnDate(_ context.Context, accountID string, date time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.accounts[accountID]
	if !ok {
		return 0, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	day := date.UTC().Format(time.DateOnly)
	count := 0
	for _, p := range record.payments {
		if p.PaymentType == domain.PaymentTypeDebit.String() && p.PostedAt.UTC().Format(time.DateOnly) == day {
			count++
		}
	}
	return count, nil
}
