package repositories

import (
	"context"
	"time"

	"github.com/mzalewski/bank_payments_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier,
	// including its full payment history.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// CountDebitsOnDate returns how many debit payments the account posted
	// on the calendar date of the given instant (UTC date component). The
	// result feeds the aggregate's daily debit cap.
	CountDebitsOnDate(ctx context.Context, accountID string, date time.Time) (int, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists the aggregate's full state: balance, currency
	// and the entire payment history.
	SaveAccount(ctx context.Context, account *domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
